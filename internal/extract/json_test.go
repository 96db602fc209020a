package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/eleven-am/vision-backend/internal/shared"
)

func TestJSON_Bare(t *testing.T) {
	got, err := JSON(`{"a": 1}`)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}
}

func TestJSON_SurroundingProse(t *testing.T) {
	text := "Sure! Here are the detections:\n" +
		`[{"label": "person", "bbox_2d": [10, 20, 30, 40]}]` +
		"\nLet me know if you need anything else."

	got, err := JSON(text)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != `[{"label": "person", "bbox_2d": [10, 20, 30, 40]}]` {
		t.Errorf("got %q", got)
	}
}

func TestJSON_CodeFence(t *testing.T) {
	text := "```json\n{\"summary\": \"two changes\"}\n```\ntrailing notes"

	got, err := JSON(text)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != `{"summary": "two changes"}` {
		t.Errorf("got %q", got)
	}
}

func TestJSON_PlainFence(t *testing.T) {
	text := "```\n[1, 2, 3]\n```"

	got, err := JSON(text)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != "[1, 2, 3]" {
		t.Errorf("got %q", got)
	}
}

func TestJSON_BracketsInsideStrings(t *testing.T) {
	text := `prefix {"note": "a ] tricky } string", "n": 2} suffix`

	got, err := JSON(text)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != `{"note": "a ] tricky } string", "n": 2}` {
		t.Errorf("got %q", got)
	}
}

func TestJSON_FenceBeforeJSON(t *testing.T) {
	text := "Some reasoning first:\n```\nnot json at all\n```\nFinal answer: {\"a\": 1}"

	got, err := JSON(text)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}
}

func TestJSON_NoneFound(t *testing.T) {
	for _, text := range []string{"", "no structure at all", "{ broken", "{'single': 'quotes'}"} {
		_, err := JSON(text)
		if !errors.Is(err, shared.ErrParse) {
			t.Errorf("input %q: expected ParseError, got %v", text, err)
		}
	}
}

// Extracting a JSON document from surrounding prose must parse
// identically to parsing the document directly.
func TestJSON_RoundTrip(t *testing.T) {
	docs := []string{
		`{"objects": [{"label": "car", "bbox_2d": [0, 0, 100, 100]}]}`,
		`[{"time": "00:10-00:25", "event": "a dog runs"}]`,
		`{"nested": {"deep": [1, {"x": "y"}]}}`,
	}

	for _, doc := range docs {
		var direct any
		if err := json.Unmarshal([]byte(doc), &direct); err != nil {
			t.Fatalf("bad fixture %q: %v", doc, err)
		}

		wrapped := "The model says:\n```json\n" + doc + "\n```\nDone."
		extracted, err := JSON(wrapped)
		if err != nil {
			t.Fatalf("JSON(%q): %v", wrapped, err)
		}

		var viaExtract any
		if err := json.Unmarshal([]byte(extracted), &viaExtract); err != nil {
			t.Fatalf("unmarshal extracted: %v", err)
		}
		if !reflect.DeepEqual(direct, viaExtract) {
			t.Errorf("round trip mismatch for %q", doc)
		}
	}
}

func TestUnmarshal(t *testing.T) {
	var v struct {
		Label string `json:"label"`
	}
	if err := Unmarshal("answer: {\"label\": \"cat\"}", &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Label != "cat" {
		t.Errorf("got %q", v.Label)
	}
}
