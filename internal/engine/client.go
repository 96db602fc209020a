package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eleven-am/vision-backend/internal/conversation"
	"github.com/eleven-am/vision-backend/internal/shared"
)

// Client talks to the engine's OpenAI-compatible chat completions
// endpoint, with the Qwen-VL content-part extensions for pixel bounds
// and video sampling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	Seed        *int64        `json:"seed,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
	VideoURL *videoRef `json:"video_url,omitempty"`

	MinPixels   int64   `json:"min_pixels,omitempty"`
	MaxPixels   int64   `json:"max_pixels,omitempty"`
	TotalPixels int64   `json:"total_pixels,omitempty"`
	MaxFrames   int     `json:"max_frames,omitempty"`
	SampleFPS   float64 `json:"sample_fps,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type videoRef struct {
	URL    string   `json:"url,omitempty"`
	Frames []string `json:"frames,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Generate(ctx context.Context, messages []conversation.Message, params Params) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    wireMessages(messages),
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		Seed:        params.Seed,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, resp.Body)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", shared.Classify(shared.ErrEngineUnavailable, "engine returned an unreadable response")
	}
	if len(chat.Choices) == 0 {
		return "", shared.Classify(shared.ErrEngineUnavailable, "engine returned no completion choices")
	}

	return chat.Choices[0].Message.Content, nil
}

// IsAvailable probes the engine's model listing with a short deadline.
func (c *Client) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/models", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func wireMessages(messages []conversation.Message) []chatMessage {
	out := make([]chatMessage, len(messages))
	for i, msg := range messages {
		parts := make([]contentPart, 0, len(msg.Content))
		for _, block := range msg.Content {
			switch {
			case block.Image != nil:
				parts = append(parts, contentPart{
					Type:      "image_url",
					ImageURL:  &imageRef{URL: block.Image.URI},
					MinPixels: block.Image.MinPixels,
					MaxPixels: block.Image.MaxPixels,
				})
			case block.Video != nil:
				ref := &videoRef{URL: block.Video.URI, Frames: block.Video.Frames}
				if block.Video.Path != "" {
					ref.URL = "file://" + block.Video.Path
				}
				parts = append(parts, contentPart{
					Type:        "video_url",
					VideoURL:    ref,
					TotalPixels: block.Video.TotalPixels,
					MinPixels:   block.Video.MinPixels,
					MaxFrames:   block.Video.MaxFrames,
					SampleFPS:   block.Video.SampleFPS,
				})
			default:
				parts = append(parts, contentPart{Type: "text", Text: block.Text})
			}
		}
		out[i] = chatMessage{Role: string(msg.Role), Content: parts}
	}
	return out
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return shared.Classify(shared.ErrEngineTimeout, "engine did not respond before the deadline")
	}
	if errors.Is(err, context.Canceled) {
		return shared.Classify(shared.ErrTimeout, "request canceled while waiting on the engine")
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return shared.Classify(shared.ErrEngineTimeout, "engine did not respond before the deadline")
	}
	return shared.Classify(shared.ErrEngineUnavailable, "engine is unreachable")
}

func classifyStatus(status int, body io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(body, 8192))

	message := ""
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		message = parsed.Error.Message
		if message == "" {
			message = parsed.Message
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}

	switch {
	case status == http.StatusGatewayTimeout:
		return shared.Classify(shared.ErrEngineTimeout, "engine timed out")
	case status >= 500 && isOutOfMemory(message):
		return shared.Classify(shared.ErrEngineOOM, "engine ran out of memory")
	case status >= 500:
		return shared.Classify(shared.ErrEngineUnavailable, fmt.Sprintf("engine returned status %d", status))
	default:
		if message == "" {
			message = fmt.Sprintf("engine rejected the request with status %d", status)
		}
		return shared.InvalidInput(message)
	}
}

func isOutOfMemory(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "out of memory") ||
		strings.Contains(lower, "cuda") && strings.Contains(lower, "memory")
}
