package inference

import (
	"context"
	"encoding/json"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
	"github.com/eleven-am/vision-backend/internal/shared"
)

// SpatialUnderstanding answers spatial questions about an image, such
// as object relationships, positions, and affordances. The query text
// drives the model directly; output_format json additionally extracts
// the first JSON value from the answer.
func (s *Service) SpatialUnderstanding(ctx context.Context, req dto.SpatialUnderstandingRequest) (dto.InferenceResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = req.Query
	}
	if prompt == "" {
		return failure(shared.InvalidInput("query is required"), nil)
	}

	text, err := s.imageTask(ctx, KindSpatial, req.ImageInput, req.GenerationParams, prompt)
	if err != nil {
		return failure(err, nil)
	}

	format := req.OutputFormat
	if format == "" {
		format = "text"
	}

	metadata := map[string]any{
		"task":          string(KindSpatial),
		"query":         req.Query,
		"output_format": format,
	}

	var result any = text
	if format == "json" {
		raw, err := extract.JSON(text)
		if err != nil {
			s.logger.Warn("spatial output not parseable", "error", err)
			metadata["raw_output"] = text
			return failure(err, metadata)
		}
		result = json.RawMessage(raw)
	}

	return dto.SuccessResponse(result, metadata), nil
}
