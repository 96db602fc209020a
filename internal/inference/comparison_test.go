package inference

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
	"github.com/eleven-am/vision-backend/internal/shared"
)

func comparisonURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = "https://example.com/img.jpg"
	}
	return urls
}

func TestImageComparison(t *testing.T) {
	gen := &stubGenerator{text: `{"summary": "one chair moved", "differences": [{"description": "chair moved left", "location": "center", "images_affected": [1, 2]}], "common_elements": ["table"]}`}
	svc := newTestService(t, gen)

	resp, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{
		ImageURLs: comparisonURLs(2),
	})
	if err != nil {
		t.Fatalf("ImageComparison: %v", err)
	}

	result, ok := resp.Result.(*extract.Comparison)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result.Summary != "one chair moved" || len(result.Differences) != 1 {
		t.Errorf("unexpected comparison: %+v", result)
	}

	if resp.Metadata["num_images"] != 2 || resp.Metadata["comparison_type"] != "differences" {
		t.Errorf("unexpected metadata: %+v", resp.Metadata)
	}

	if n := len(gen.gotMessages[0].Content); n != 3 {
		t.Errorf("expected 2 image blocks + 1 text block, got %d", n)
	}
	if !strings.Contains(promptText(t, gen.gotMessages), "Compare these 2 images and identify all differences") {
		t.Errorf("unexpected prompt: %q", promptText(t, gen.gotMessages))
	}
}

func TestImageComparison_PromptVariants(t *testing.T) {
	tests := []struct {
		comparisonType string
		wantFragment   string
	}{
		{"changes", "describe what has changed from one image to the next"},
		{"similarities", "identify common elements and similarities"},
		{"bogus", "identify all differences"},
	}

	for _, tt := range tests {
		t.Run(tt.comparisonType, func(t *testing.T) {
			gen := &stubGenerator{text: "side by side they look alike"}
			svc := newTestService(t, gen)

			resp, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{
				ImageURLs:      comparisonURLs(3),
				ComparisonType: tt.comparisonType,
				OutputFormat:   "text",
			})
			if err != nil {
				t.Fatalf("ImageComparison: %v", err)
			}
			if resp.Result != "side by side they look alike" {
				t.Errorf("text format should pass output through, got %v", resp.Result)
			}
			if !strings.Contains(promptText(t, gen.gotMessages), tt.wantFragment) {
				t.Errorf("unexpected prompt: %q", promptText(t, gen.gotMessages))
			}
		})
	}
}

func TestImageComparison_CountBounds(t *testing.T) {
	svc := newTestService(t, &stubGenerator{})

	for _, n := range []int{1, 5} {
		_, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{
			ImageURLs: comparisonURLs(n),
		})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("count %d: expected invalid input, got %v", n, err)
		}
		if err.Error() != "Number of images must be between 2 and 4" {
			t.Errorf("count %d: unexpected message %q", n, err.Error())
		}
	}
}

func TestImageComparison_NoImages(t *testing.T) {
	svc := newTestService(t, &stubGenerator{})

	_, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err.Error() != "Either image_urls or image_base64_list must be provided" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestImageComparison_BothListsRejected(t *testing.T) {
	svc := newTestService(t, &stubGenerator{})

	_, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{
		ImageURLs:       comparisonURLs(2),
		ImageBase64List: []string{"a", "b"},
	})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestImageComparison_ParseFailure(t *testing.T) {
	gen := &stubGenerator{text: "The images look similar."}
	svc := newTestService(t, gen)

	resp, err := svc.ImageComparison(context.Background(), dto.ImageComparisonRequest{
		ImageURLs: comparisonURLs(2),
	})
	if !errors.Is(err, shared.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if resp.Metadata["raw_output"] != "The images look similar." {
		t.Errorf("raw output not preserved: %+v", resp.Metadata)
	}
}
