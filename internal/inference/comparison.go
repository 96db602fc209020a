package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/eleven-am/vision-backend/internal/conversation"
	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/eleven-am/vision-backend/internal/shared"
)

const (
	CompareDifferences  = "differences"
	CompareChanges      = "changes"
	CompareSimilarities = "similarities"
)

func comparisonPrompt(comparisonType, outputFormat string, numImages int) string {
	var b strings.Builder

	switch comparisonType {
	case CompareChanges:
		fmt.Fprintf(&b, "Analyze these %d images in sequence and describe what has changed from one image to the next. ", numImages)
		b.WriteString("Focus on temporal changes, movements, additions, or removals. ")
	case CompareSimilarities:
		fmt.Fprintf(&b, "Compare these %d images and identify common elements and similarities. ", numImages)
		b.WriteString("Focus on shared objects, patterns, themes, or visual characteristics. ")
	default:
		fmt.Fprintf(&b, "Compare these %d images and identify all differences between them. ", numImages)
		b.WriteString("Focus on changes in objects, positions, colors, text, or any visual elements. ")
	}

	if outputFormat == FormatJSON {
		b.WriteString(`Provide a detailed analysis in JSON format with the following structure: {"summary": "brief overview", "differences": [{"description": "...", "location": "...", "images_affected": [1, 2]}], "common_elements": ["..."]}`)
	} else {
		b.WriteString("Provide a detailed textual analysis of the comparison.")
	}

	return b.String()
}

func (s *Service) resolveComparisonImages(req dto.ImageComparisonRequest) ([]*media.Resolved, error) {
	d := defaultsByKind[KindComparison]
	bounds := media.Bounds{MinPixels: d.MinPixels, MaxPixels: d.MaxPixels}
	if req.MinPixels != nil {
		bounds.MinPixels = *req.MinPixels
	}
	if req.MaxPixels != nil {
		bounds.MaxPixels = *req.MaxPixels
	}

	var sources []media.ImageSource
	switch {
	case len(req.ImageURLs) > 0 && len(req.ImageBase64List) > 0:
		return nil, shared.InvalidInput("only one of image_urls or image_base64_list may be provided")
	case len(req.ImageURLs) > 0:
		for _, u := range req.ImageURLs {
			sources = append(sources, media.ImageSource{URL: u})
		}
	case len(req.ImageBase64List) > 0:
		for _, b64 := range req.ImageBase64List {
			sources = append(sources, media.ImageSource{Base64: b64})
		}
	default:
		return nil, shared.InvalidInput("Either image_urls or image_base64_list must be provided")
	}

	if len(sources) < 2 || len(sources) > 4 {
		return nil, shared.InvalidInput("Number of images must be between 2 and 4")
	}

	imgs := make([]*media.Resolved, len(sources))
	for i, src := range sources {
		img, err := s.resolver.ResolveImage(src, bounds)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i+1, err)
		}
		imgs[i] = img
	}

	return imgs, nil
}

// ImageComparison compares 2-4 images and reports differences, changes,
// or similarities between them.
func (s *Service) ImageComparison(ctx context.Context, req dto.ImageComparisonRequest) (dto.InferenceResponse, error) {
	imgs, err := s.resolveComparisonImages(req)
	if err != nil {
		return failure(err, nil)
	}

	comparisonType := req.ComparisonType
	switch comparisonType {
	case CompareDifferences, CompareChanges, CompareSimilarities:
	default:
		comparisonType = CompareDifferences
	}

	format := req.OutputFormat
	if format == "" {
		format = FormatJSON
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = comparisonPrompt(comparisonType, format, len(imgs))
	}

	params, err := genParams(req.GenerationParams, defaultsByKind[KindComparison])
	if err != nil {
		return failure(err, nil)
	}

	msgs, err := conversation.MultiImage(imgs, prompt)
	if err != nil {
		return failure(err, nil)
	}

	text, err := s.engine.Generate(ctx, msgs, params)
	if err != nil {
		s.logger.Error("generation failed", "task", string(KindComparison), "error", err)
		return failure(err, nil)
	}
	text = strings.TrimSpace(text)

	metadata := map[string]any{
		"task":            string(KindComparison),
		"num_images":      len(imgs),
		"comparison_type": comparisonType,
		"output_format":   format,
	}

	var result any = text
	if format == FormatJSON {
		parsed, err := extract.ComparisonResult(text)
		if err != nil {
			s.logger.Warn("comparison output not parseable", "error", err)
			metadata["raw_output"] = text
			return failure(err, metadata)
		}
		result = parsed
	}

	return dto.SuccessResponse(result, metadata), nil
}
