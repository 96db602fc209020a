package inference

import (
	"context"

	"github.com/eleven-am/vision-backend/internal/dto"
)

const (
	DetailBasic         = "basic"
	DetailDetailed      = "detailed"
	DetailComprehensive = "comprehensive"
)

var descriptionPrompts = map[string]string{
	DetailBasic:    "Provide a brief description of the image.",
	DetailDetailed: "Provide a detailed description of the image, including objects, people, actions, and context.",
	DetailComprehensive: "Provide a comprehensive and thorough description of the image. " +
		"Include details about: objects and their attributes, people and their actions, " +
		"spatial relationships, colors, textures, background elements, mood, and any text visible in the image.",
}

func normalizeDetailLevel(level string) string {
	if _, ok := descriptionPrompts[level]; ok {
		return level
	}
	return DetailDetailed
}

// ImageDescription generates a free-text description at the requested
// level of detail.
func (s *Service) ImageDescription(ctx context.Context, req dto.ImageDescriptionRequest) (dto.InferenceResponse, error) {
	level := normalizeDetailLevel(req.DetailLevel)
	prompt := req.Prompt
	if prompt == "" {
		prompt = descriptionPrompts[level]
	}

	text, err := s.imageTask(ctx, KindDescription, req.ImageInput, req.GenerationParams, prompt)
	if err != nil {
		return failure(err, nil)
	}

	return dto.SuccessResponse(text, map[string]any{
		"task":         string(KindDescription),
		"detail_level": level,
	}), nil
}
