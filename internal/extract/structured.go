package extract

import (
	"encoding/json"

	"github.com/eleven-am/vision-backend/internal/shared"
)

// Object is one grounded detection.
type Object struct {
	Label      string         `json:"label"`
	BBox       BBox           `json:"bbox"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// rawObject tolerates the label/bbox key variants the model emits.
type rawObject struct {
	Label       string         `json:"label"`
	Name        string         `json:"name"`
	TextContent string         `json:"text_content"`
	BBox2D      []float64      `json:"bbox_2d"`
	BBox        []float64      `json:"bbox"`
	Attributes  map[string]any `json:"attributes"`
}

// Objects parses grounding output: either a bare array of detections
// or an object wrapping one under "objects". Boxes are clipped into
// the relative coordinate space; a box that is degenerate after
// clipping fails the parse.
func Objects(text string) ([]Object, error) {
	raw, err := JSON(text)
	if err != nil {
		return nil, err
	}

	var entries []rawObject
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		var wrapped struct {
			Objects []rawObject `json:"objects"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapped); err != nil || wrapped.Objects == nil {
			return nil, shared.ParseError("grounding output is not a detection list")
		}
		entries = wrapped.Objects
	}

	objects := make([]Object, 0, len(entries))
	for i, e := range entries {
		label := e.Label
		if label == "" {
			label = e.Name
		}
		if label == "" {
			label = e.TextContent
		}
		if label == "" {
			return nil, shared.ParseErrorf("detection %d is missing a label", i)
		}

		coords := e.BBox2D
		if len(coords) == 0 {
			coords = e.BBox
		}
		if len(coords) != 4 {
			return nil, shared.ParseErrorf("detection %d has %d bbox coordinates, want 4", i, len(coords))
		}

		box := BBox{coords[0], coords[1], coords[2], coords[3]}.Clip(CoordinateSpace, CoordinateSpace)
		if !box.Valid() {
			return nil, shared.ParseErrorf("detection %d has a degenerate bounding box", i)
		}

		objects = append(objects, Object{Label: label, BBox: box, Attributes: e.Attributes})
	}
	return objects, nil
}

// TextSpan is one recognized text region from bbox-annotated OCR.
type TextSpan struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
}

type rawSpan struct {
	TextContent string    `json:"text_content"`
	Text        string    `json:"text"`
	BBox2D      []float64 `json:"bbox_2d"`
	BBox        []float64 `json:"bbox"`
}

// TextSpans parses spotting output: an array of
// {"bbox_2d": [x1,y1,x2,y2], "text_content": "..."} entries.
func TextSpans(text string) ([]TextSpan, error) {
	raw, err := JSON(text)
	if err != nil {
		return nil, err
	}

	var entries []rawSpan
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, shared.ParseError("OCR output is not a text span list")
	}

	spans := make([]TextSpan, 0, len(entries))
	for i, e := range entries {
		content := e.TextContent
		if content == "" {
			content = e.Text
		}
		if content == "" {
			return nil, shared.ParseErrorf("span %d is missing text content", i)
		}

		coords := e.BBox2D
		if len(coords) == 0 {
			coords = e.BBox
		}
		if len(coords) != 4 {
			return nil, shared.ParseErrorf("span %d has %d bbox coordinates, want 4", i, len(coords))
		}

		box := BBox{coords[0], coords[1], coords[2], coords[3]}.Clip(CoordinateSpace, CoordinateSpace)
		if !box.Valid() {
			return nil, shared.ParseErrorf("span %d has a degenerate bounding box", i)
		}

		spans = append(spans, TextSpan{Text: content, BBox: box})
	}
	return spans, nil
}

// Comparison is the structured multi-image comparison result the model
// is instructed to produce.
type Comparison struct {
	Summary        string       `json:"summary"`
	Differences    []Difference `json:"differences,omitempty"`
	CommonElements []string     `json:"common_elements,omitempty"`
}

type Difference struct {
	Description    string `json:"description"`
	Location       string `json:"location,omitempty"`
	ImagesAffected []int  `json:"images_affected,omitempty"`
}

// ComparisonResult parses JSON-format comparison output.
func ComparisonResult(text string) (*Comparison, error) {
	raw, err := JSON(text)
	if err != nil {
		return nil, err
	}

	var result Comparison
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, shared.ParseError("comparison output does not match the expected schema")
	}
	if result.Summary == "" && result.Differences == nil && result.CommonElements == nil {
		return nil, shared.ParseError("comparison output is missing every expected field")
	}
	return &result, nil
}
