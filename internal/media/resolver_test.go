package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/eleven-am/vision-backend/internal/shared"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(Config{
		TempDir:       t.TempDir(),
		MaxImageBytes: 1 << 20,
		MaxVideoBytes: 1 << 20,
	}, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestResolveImage_URLPassthrough(t *testing.T) {
	r := newTestResolver(t)

	resolved, err := r.ResolveImage(ImageSource{URL: "https://example.com/a.jpg"}, Bounds{})
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if resolved.URI != "https://example.com/a.jpg" {
		t.Errorf("URL should pass through, got %q", resolved.URI)
	}
	if resolved.MinPixels != defaultMinPixels || resolved.MaxPixels != defaultMaxPixels {
		t.Errorf("default bounds not applied: %+v", resolved.Bounds)
	}
}

func TestResolveImage_Exclusivity(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name string
		src  ImageSource
	}{
		{"neither", ImageSource{}},
		{"both", ImageSource{URL: "https://example.com/a.jpg", Base64: pngBase64(t)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ResolveImage(tt.src, Bounds{})
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestResolveImage_Base64(t *testing.T) {
	r := newTestResolver(t)

	resolved, err := r.ResolveImage(ImageSource{Base64: pngBase64(t)}, Bounds{})
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if !strings.HasPrefix(resolved.URI, "data:image/png;base64,") {
		t.Errorf("expected png data URL, got %q", resolved.URI[:min(40, len(resolved.URI))])
	}
}

func TestResolveImage_Base64DataURLPrefix(t *testing.T) {
	r := newTestResolver(t)

	raw := "data:image/png;base64," + pngBase64(t)
	resolved, err := r.ResolveImage(ImageSource{Base64: raw}, Bounds{})
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if resolved.URI != raw {
		t.Errorf("data URL input should round-trip, got %q", resolved.URI)
	}
}

func TestResolveImage_BadBase64(t *testing.T) {
	r := newTestResolver(t)

	for _, raw := range []string{"!!!not-base64!!!", base64.StdEncoding.EncodeToString([]byte("plain text"))} {
		_, err := r.ResolveImage(ImageSource{Base64: raw}, Bounds{})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("input %q: expected InvalidInput, got %v", raw, err)
		}
	}
}

func TestResolveImage_Base64Ceiling(t *testing.T) {
	r, err := NewResolver(Config{TempDir: t.TempDir(), MaxImageBytes: 16}, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	_, err = r.ResolveImage(ImageSource{Base64: pngBase64(t)}, Bounds{})
	if !errors.Is(err, shared.ErrPayloadTooLarge) {
		t.Errorf("expected PayloadTooLarge, got %v", err)
	}
}

func TestResolveImage_MalformedURL(t *testing.T) {
	r := newTestResolver(t)

	for _, u := range []string{"://nope", "ftp://example.com/a.jpg", "relative/path.jpg"} {
		_, err := r.ResolveImage(ImageSource{URL: u}, Bounds{})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("url %q: expected InvalidInput, got %v", u, err)
		}
	}
}

func TestNormalizeBounds(t *testing.T) {
	if _, err := normalizeBounds(Bounds{MinPixels: 100, MaxPixels: 50}); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("min>max should be InvalidInput, got %v", err)
	}

	b, err := normalizeBounds(Bounds{MinPixels: 100, MaxPixels: 100})
	if err != nil {
		t.Fatalf("min==max should be valid: %v", err)
	}
	if b.MinPixels != 100 || b.MaxPixels != 100 {
		t.Errorf("explicit bounds changed: %+v", b)
	}
}

func TestResolveVideo_Exclusivity(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name string
		src  VideoSource
	}{
		{"none", VideoSource{}},
		{"url and frames", VideoSource{URL: "https://example.com/v.mp4", FrameURLs: []string{"https://example.com/f.jpg"}}},
		{"base64 and frame base64", VideoSource{Base64: "AAAA", FrameBase64List: []string{"AAAA"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup, err := r.ResolveVideo(tt.src)
			cleanup()
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestResolveVideo_URL(t *testing.T) {
	r := newTestResolver(t)

	resolved, cleanup, err := r.ResolveVideo(VideoSource{URL: "https://example.com/v.mp4"})
	defer cleanup()
	if err != nil {
		t.Fatalf("ResolveVideo: %v", err)
	}
	if resolved.Kind != VideoKindURL || resolved.URI != "https://example.com/v.mp4" {
		t.Errorf("unexpected resolution: %+v", resolved)
	}
}

func TestResolveVideo_Base64SpoolsAndCleans(t *testing.T) {
	r := newTestResolver(t)

	payload := base64.StdEncoding.EncodeToString([]byte("fake mp4 bytes"))
	resolved, cleanup, err := r.ResolveVideo(VideoSource{Base64: payload})
	if err != nil {
		t.Fatalf("ResolveVideo: %v", err)
	}
	if resolved.Kind != VideoKindBase64 || resolved.Path == "" {
		t.Fatalf("expected spooled path, got %+v", resolved)
	}

	data, err := os.ReadFile(resolved.Path)
	if err != nil {
		t.Fatalf("read spooled file: %v", err)
	}
	if string(data) != "fake mp4 bytes" {
		t.Errorf("spooled content mismatch: %q", data)
	}

	cleanup()
	if _, err := os.Stat(resolved.Path); !os.IsNotExist(err) {
		t.Error("cleanup should remove the temp file")
	}
}

func TestResolveVideo_FrameCountBounds(t *testing.T) {
	r := newTestResolver(t)

	frames := make([]string, MaxFrameCount+1)
	for i := range frames {
		frames[i] = "https://example.com/f.jpg"
	}

	_, cleanup, err := r.ResolveVideo(VideoSource{FrameURLs: frames})
	cleanup()
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected InvalidInput for %d frames, got %v", len(frames), err)
	}
}

func TestResolveVideo_FrameBase64List(t *testing.T) {
	r := newTestResolver(t)
	frame := pngBase64(t)

	resolved, cleanup, err := r.ResolveVideo(VideoSource{FrameBase64List: []string{frame, frame, frame}})
	defer cleanup()
	if err != nil {
		t.Fatalf("ResolveVideo: %v", err)
	}
	if len(resolved.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(resolved.Frames))
	}
	for i, f := range resolved.Frames {
		if !strings.HasPrefix(f, "data:image/png;base64,") {
			t.Errorf("frame %d is not a data URL", i)
		}
	}
}

func TestResolveVideo_BadFrameFailsWhole(t *testing.T) {
	r := newTestResolver(t)

	_, cleanup, err := r.ResolveVideo(VideoSource{FrameBase64List: []string{pngBase64(t), "not base64"}})
	cleanup()
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func TestSpoolUpload(t *testing.T) {
	r := newTestResolver(t)

	path, cleanup, err := r.SpoolUpload(strings.NewReader("video body"), "clip.mp4")
	if err != nil {
		t.Fatalf("SpoolUpload: %v", err)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Errorf("expected .mp4 suffix, got %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read upload: %v", err)
	}
	if string(data) != "video body" {
		t.Errorf("upload content mismatch: %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup should remove the upload")
	}
}

func TestSpoolUpload_TooLarge(t *testing.T) {
	r, err := NewResolver(Config{TempDir: t.TempDir(), MaxVideoBytes: 4}, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	_, cleanup, err := r.SpoolUpload(strings.NewReader("more than four bytes"), "clip.mp4")
	cleanup()
	if !errors.Is(err, shared.ErrPayloadTooLarge) {
		t.Errorf("expected PayloadTooLarge, got %v", err)
	}

	entries, readErr := os.ReadDir(r.cfg.TempDir)
	if readErr != nil {
		t.Fatalf("read temp dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("oversized upload should not leave temp files, found %d", len(entries))
	}
}
