package inference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/eleven-am/vision-backend/internal/conversation"
	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/engine"
	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/eleven-am/vision-backend/internal/shared"
)

// Service composes the media resolver, conversation builders, and the
// inference engine into the task operations exposed over HTTP. It holds
// no per-request state; every method is safe for concurrent use.
type Service struct {
	engine   engine.Generator
	resolver *media.Resolver
	logger   *slog.Logger
}

func NewService(gen engine.Generator, resolver *media.Resolver, logger *slog.Logger) *Service {
	return &Service{
		engine:   gen,
		resolver: resolver,
		logger:   logger.With("component", "inference"),
	}
}

// genParams merges request-level sampling knobs with the task defaults
// and validates their ranges. Temperature 0.0 is an explicit value, not
// an absent one.
func genParams(p dto.GenerationParams, d taskDefaults) (engine.Params, error) {
	params := engine.Params{
		MaxTokens:   d.MaxTokens,
		Temperature: engine.DefaultTemperature,
		TopP:        engine.DefaultTopP,
		Seed:        p.Seed,
	}

	if p.MaxTokens != nil {
		if *p.MaxTokens < 1 {
			return engine.Params{}, shared.InvalidInput("max_tokens must be at least 1")
		}
		params.MaxTokens = *p.MaxTokens
	}
	if p.Temperature != nil {
		if *p.Temperature < 0 || *p.Temperature > 2 {
			return engine.Params{}, shared.InvalidInput("temperature must be between 0 and 2")
		}
		params.Temperature = *p.Temperature
	}
	if p.TopP != nil {
		if *p.TopP <= 0 || *p.TopP > 1 {
			return engine.Params{}, shared.InvalidInput("top_p must be greater than 0 and at most 1")
		}
		params.TopP = *p.TopP
	}

	return params, nil
}

func imageBounds(in dto.ImageInput, d taskDefaults) media.Bounds {
	b := media.Bounds{MinPixels: d.MinPixels, MaxPixels: d.MaxPixels}
	if in.MinPixels != nil {
		b.MinPixels = *in.MinPixels
	}
	if in.MaxPixels != nil {
		b.MaxPixels = *in.MaxPixels
	}
	return b
}

func (s *Service) resolveImage(in dto.ImageInput, d taskDefaults) (*media.Resolved, error) {
	src := media.ImageSource{URL: in.ImageURL, Base64: in.ImageBase64}
	return s.resolver.ResolveImage(src, imageBounds(in, d))
}

// imageTask runs the shared single-image pipeline: resolve the image,
// assemble the conversation, and generate. Callers parse the raw text
// into their task-specific shape.
func (s *Service) imageTask(ctx context.Context, kind Kind, in dto.ImageInput, gp dto.GenerationParams, prompt string) (string, error) {
	d := defaultsByKind[kind]

	params, err := genParams(gp, d)
	if err != nil {
		return "", err
	}

	img, err := s.resolveImage(in, d)
	if err != nil {
		return "", err
	}

	msgs := conversation.Image(img, prompt)

	text, err := s.engine.Generate(ctx, msgs, params)
	if err != nil {
		s.logger.Error("generation failed", "task", string(kind), "error", err)
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func failure(err error, metadata map[string]any) (dto.InferenceResponse, error) {
	return dto.FailureResponse(err, metadata), err
}
