package inference

import (
	"context"

	"github.com/eleven-am/vision-backend/internal/dto"
)

const (
	FormatHTML           = "html"
	FormatMarkdown       = "markdown"
	FormatQwenVLHTML     = "qwenvl_html"
	FormatQwenVLMarkdown = "qwenvl_markdown"
	FormatJSON           = "json"
	FormatText           = "text"
)

// The qwenvl_* formats are recognized by the model as special parsing
// modes and need only the bare trigger phrase.
var parsingPrompts = map[string]string{
	FormatHTML:           "Convert the document to HTML format.",
	FormatMarkdown:       "Convert the document to Markdown format.",
	FormatQwenVLHTML:     "qwenvl html",
	FormatQwenVLMarkdown: "qwenvl markdown",
	FormatJSON:           "Parse the document and output structured information in JSON format.",
}

func normalizeParsingFormat(format string) string {
	if _, ok := parsingPrompts[format]; ok {
		return format
	}
	return FormatQwenVLHTML
}

// DocumentParsing converts a document image into the requested markup
// format, preserving layout through the model's document mode.
func (s *Service) DocumentParsing(ctx context.Context, req dto.DocumentParsingRequest) (dto.InferenceResponse, error) {
	format := normalizeParsingFormat(req.OutputFormat)
	prompt := req.Prompt
	if prompt == "" {
		prompt = parsingPrompts[format]
	}

	text, err := s.imageTask(ctx, KindDocumentParsing, req.ImageInput, req.GenerationParams, prompt)
	if err != nil {
		return failure(err, nil)
	}

	return dto.SuccessResponse(text, map[string]any{
		"task":          string(KindDocumentParsing),
		"output_format": format,
	}), nil
}
