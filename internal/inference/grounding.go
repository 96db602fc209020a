package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
)

type GroundingResult struct {
	Objects []extract.Object `json:"objects"`
}

func groundingPrompt(categories []string, includeAttributes bool) string {
	var b strings.Builder

	if len(categories) > 0 {
		quoted := make([]string, len(categories))
		for i, cat := range categories {
			quoted[i] = fmt.Sprintf("%q", cat)
		}
		fmt.Fprintf(&b, "Locate every instance that belongs to the following categories: %s. ", strings.Join(quoted, ", "))
	} else {
		b.WriteString("Detect all objects in the image. ")
	}

	if includeAttributes {
		b.WriteString(`For each object, report bbox coordinates, label, and any relevant attributes (such as color, type, etc.) in JSON format like: {"bbox_2d": [x1, y1, x2, y2], "label": "object_name", "attributes": {...}}.`)
	} else {
		b.WriteString("Report bbox coordinates in JSON format.")
	}

	return b.String()
}

// Grounding2D detects and localizes objects, returning bounding boxes
// in the model's 0-1000 relative coordinate space.
func (s *Service) Grounding2D(ctx context.Context, req dto.Grounding2DRequest) (dto.InferenceResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = groundingPrompt(req.Categories, req.IncludeAttributes)
	}

	text, err := s.imageTask(ctx, KindGrounding2D, req.ImageInput, req.GenerationParams, prompt)
	if err != nil {
		return failure(err, nil)
	}

	objects, err := extract.Objects(text)
	if err != nil {
		s.logger.Warn("grounding output not parseable", "error", err)
		return failure(err, map[string]any{
			"task":       string(KindGrounding2D),
			"raw_output": text,
		})
	}

	return dto.SuccessResponse(GroundingResult{Objects: objects}, map[string]any{
		"task":               string(KindGrounding2D),
		"include_attributes": req.IncludeAttributes,
		"num_objects":        len(objects),
	}), nil
}
