package conversation

import (
	"errors"
	"testing"

	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/eleven-am/vision-backend/internal/shared"
)

func resolved(uri string) *media.Resolved {
	return &media.Resolved{URI: uri, Bounds: media.Bounds{MinPixels: 65536, MaxPixels: 4194304}}
}

func TestImage(t *testing.T) {
	msgs := Image(resolved("https://example.com/a.jpg"), "Describe the image.")

	if len(msgs) != 1 || msgs[0].Role != RoleUser {
		t.Fatalf("expected one user message, got %+v", msgs)
	}
	content := msgs[0].Content
	if len(content) != 2 {
		t.Fatalf("expected image+text blocks, got %d", len(content))
	}
	if content[0].Image == nil || content[0].Image.URI != "https://example.com/a.jpg" {
		t.Errorf("first block should be the image, got %+v", content[0])
	}
	if content[0].Image.MinPixels != 65536 || content[0].Image.MaxPixels != 4194304 {
		t.Errorf("bounds not carried: %+v", content[0].Image)
	}
	if content[1].Text != "Describe the image." {
		t.Errorf("second block should be the prompt, got %+v", content[1])
	}
}

func TestMultiImage_Order(t *testing.T) {
	imgs := []*media.Resolved{
		resolved("https://example.com/1.jpg"),
		resolved("https://example.com/2.jpg"),
		resolved("https://example.com/3.jpg"),
	}

	msgs, err := MultiImage(imgs, "Compare these.")
	if err != nil {
		t.Fatalf("MultiImage: %v", err)
	}

	content := msgs[0].Content
	if len(content) != 4 {
		t.Fatalf("expected 3 images + text, got %d blocks", len(content))
	}
	for i := 0; i < 3; i++ {
		if content[i].Image == nil || content[i].Image.URI != imgs[i].URI {
			t.Errorf("block %d out of order: %+v", i, content[i])
		}
	}
	if content[3].Text != "Compare these." {
		t.Errorf("prompt must come last, got %+v", content[3])
	}
}

func TestMultiImage_CountBounds(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		imgs := make([]*media.Resolved, n)
		for i := range imgs {
			imgs[i] = resolved("https://example.com/a.jpg")
		}

		_, err := MultiImage(imgs, "x")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("%d images: expected InvalidInput, got %v", n, err)
		}
		if err != nil && err.Error() != "Number of images must be between 2 and 4" {
			t.Errorf("%d images: unexpected message %q", n, err.Error())
		}
	}
}

func TestVideo(t *testing.T) {
	v := &media.ResolvedVideo{Kind: media.VideoKindURL, URI: "https://example.com/v.mp4"}
	s := Sampling{TotalPixels: 20971520, MinPixels: 65536, MaxFrames: 128, SampleFPS: 2.0}

	msgs, err := Video(v, s, "What happens here?")
	if err != nil {
		t.Fatalf("Video: %v", err)
	}

	content := msgs[0].Content
	if content[0].Video == nil {
		t.Fatal("first block should be the video")
	}
	if content[0].Video.SampleFPS != 2.0 || content[0].Video.MaxFrames != 128 {
		t.Errorf("sampling not carried: %+v", content[0].Video.Sampling)
	}
	if content[1].Text != "What happens here?" {
		t.Errorf("prompt block mismatch: %+v", content[1])
	}
}

func TestVideo_SamplingValidation(t *testing.T) {
	v := &media.ResolvedVideo{Kind: media.VideoKindURL, URI: "https://example.com/v.mp4"}

	tests := []struct {
		name string
		s    Sampling
	}{
		{"zero max_frames", Sampling{MaxFrames: 0, SampleFPS: 2.0}},
		{"too many frames", Sampling{MaxFrames: media.MaxFrameCount + 1, SampleFPS: 2.0}},
		{"zero fps", Sampling{MaxFrames: 10, SampleFPS: 0}},
		{"negative fps", Sampling{MaxFrames: 10, SampleFPS: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Video(v, tt.s, "x"); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestSampling_EffectiveFrames(t *testing.T) {
	tests := []struct {
		name     string
		s        Sampling
		duration float64
		want     int
	}{
		{"fps bound", Sampling{MaxFrames: 100, SampleFPS: 1.0}, 30, 30},
		{"max_frames bound", Sampling{MaxFrames: 10, SampleFPS: 1.0}, 30, 10},
		{"fractional fps", Sampling{MaxFrames: 100, SampleFPS: 0.5}, 31, 15},
		{"exact boundary", Sampling{MaxFrames: 30, SampleFPS: 1.0}, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.EffectiveFrames(tt.duration); got != tt.want {
				t.Errorf("EffectiveFrames(%v) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}
