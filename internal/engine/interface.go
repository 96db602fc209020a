package engine

import (
	"context"

	"github.com/eleven-am/vision-backend/internal/conversation"
)

// Generator is the narrow contract toward the inference engine. The
// engine owns batching, queueing, and sampling; this layer only hands
// over a conversation and reads back the raw generated text.
type Generator interface {
	Generate(ctx context.Context, messages []conversation.Message, params Params) (string, error)
	IsAvailable(ctx context.Context) bool
}
