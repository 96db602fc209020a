package engine

import "time"

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Params are the sampling parameters forwarded with one generation
// call. Temperature is a pass-through, including 0.0: whether zero
// means greedy decoding is the engine's business.
type Params struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	Seed        *int64
}

const (
	DefaultMaxTokens   = 2048
	DefaultTemperature = 0.0
	DefaultTopP        = 1.0
)
