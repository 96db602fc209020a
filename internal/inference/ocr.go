package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
)

const (
	GranularityWord      = "word"
	GranularityLine      = "line"
	GranularityParagraph = "paragraph"
)

func ocrPrompt(granularity string, includeBbox bool, outputFormat string, wild bool) string {
	var b strings.Builder

	if wild {
		b.WriteString("Read and extract all visible text from the image, including text on signs, labels, and any other surfaces. ")
	} else {
		b.WriteString("Read all the text in the image. ")
	}

	if includeBbox {
		fmt.Fprintf(&b, "Spotting all the text in the image with %s-level, and output in JSON format as [{'bbox_2d': [x1, y1, x2, y2], 'text_content': 'text'}, ...].", granularity)
	} else if outputFormat == FormatJSON {
		b.WriteString("Output the text content in JSON format.")
	} else {
		b.WriteString("Please output only the text content from the image without any additional descriptions or formatting.")
	}

	return b.String()
}

func (s *Service) performOCR(ctx context.Context, req dto.OCRRequest, wild bool) (dto.InferenceResponse, error) {
	kind := KindDocumentOCR
	if wild {
		kind = KindWildOCR
	}

	granularity := req.Granularity
	switch granularity {
	case GranularityWord, GranularityLine, GranularityParagraph:
	default:
		granularity = GranularityLine
	}

	format := req.OutputFormat
	if format == "" {
		format = FormatText
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = ocrPrompt(granularity, req.IncludeBbox, format, wild)
	}

	text, err := s.imageTask(ctx, kind, req.ImageInput, req.GenerationParams, prompt)
	if err != nil {
		return failure(err, nil)
	}

	metadata := map[string]any{
		"task":          string(kind),
		"granularity":   granularity,
		"include_bbox":  req.IncludeBbox,
		"output_format": format,
	}

	var result any = text
	switch {
	case req.IncludeBbox:
		spans, err := extract.TextSpans(text)
		if err != nil {
			s.logger.Warn("ocr output not parseable", "error", err, "task", string(kind))
			metadata["raw_output"] = text
			return failure(err, metadata)
		}
		result = spans
	case format == FormatJSON:
		raw, err := extract.JSON(text)
		if err != nil {
			s.logger.Warn("ocr output not parseable", "error", err, "task", string(kind))
			metadata["raw_output"] = text
			return failure(err, metadata)
		}
		result = json.RawMessage(raw)
	}

	return dto.SuccessResponse(result, metadata), nil
}

// DocumentOCR extracts text from structured documents, optionally with
// per-span bounding boxes.
func (s *Service) DocumentOCR(ctx context.Context, req dto.OCRRequest) (dto.InferenceResponse, error) {
	return s.performOCR(ctx, req, false)
}

// WildOCR extracts text from natural scenes: signs, labels, storefronts.
func (s *Service) WildOCR(ctx context.Context, req dto.OCRRequest) (dto.InferenceResponse, error) {
	return s.performOCR(ctx, req, true)
}
