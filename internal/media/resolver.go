package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/eleven-am/vision-backend/internal/shared"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const frameDecodeConcurrency = 8

type Config struct {
	TempDir       string
	MaxImageBytes int64
	MaxVideoBytes int64
}

// Resolver normalizes heterogeneous media inputs into engine-ready
// references. URLs pass through untouched; base64 payloads are decoded
// and validated; videos too large to keep in memory spill to TempDir.
type Resolver struct {
	cfg    Config
	logger *slog.Logger
}

func NewResolver(cfg Config, logger *slog.Logger) (*Resolver, error) {
	if cfg.TempDir == "" {
		cfg.TempDir = filepath.Join(os.TempDir(), "vision-backend")
	}
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cfg: cfg, logger: logger.With("component", "media-resolver")}, nil
}

// ResolveImage normalizes one image input and applies resolution
// bounds. Zero or both representations populated is rejected.
func (r *Resolver) ResolveImage(src ImageSource, bounds Bounds) (*Resolved, error) {
	bounds, err := normalizeBounds(bounds)
	if err != nil {
		return nil, err
	}

	switch {
	case src.URL != "" && src.Base64 != "":
		return nil, shared.InvalidInput("only one of image_url or image_base64 may be provided")
	case src.URL != "":
		if err := validateURL(src.URL); err != nil {
			return nil, err
		}
		return &Resolved{URI: src.URL, Bounds: bounds}, nil
	case src.Base64 != "":
		uri, err := r.imageDataURL(src.Base64)
		if err != nil {
			return nil, err
		}
		return &Resolved{URI: uri, Bounds: bounds}, nil
	default:
		return nil, shared.InvalidInput("Either image_url or image_base64 must be provided")
	}
}

// ResolveVideo normalizes one video input. Base64 payloads are decoded
// to a temp file; the returned cleanup removes it and is always safe
// to call.
func (r *Resolver) ResolveVideo(src VideoSource) (*ResolvedVideo, func(), error) {
	noop := func() {}

	populated := 0
	if src.URL != "" {
		populated++
	}
	if src.Base64 != "" {
		populated++
	}
	if len(src.FrameURLs) > 0 {
		populated++
	}
	if len(src.FrameBase64List) > 0 {
		populated++
	}
	if populated == 0 {
		return nil, noop, shared.InvalidInput("One of video_url, video_base64, frame_urls, or frame_base64_list must be provided")
	}
	if populated > 1 {
		return nil, noop, shared.InvalidInput("only one video representation may be provided")
	}

	switch {
	case src.URL != "":
		if err := validateURL(src.URL); err != nil {
			return nil, noop, err
		}
		return &ResolvedVideo{Kind: VideoKindURL, URI: src.URL}, noop, nil

	case src.Base64 != "":
		path, err := r.spoolBase64Video(src.Base64)
		if err != nil {
			return nil, noop, err
		}
		return &ResolvedVideo{Kind: VideoKindBase64, Path: path}, r.removeFunc(path), nil

	case len(src.FrameURLs) > 0:
		if err := checkFrameCount(len(src.FrameURLs)); err != nil {
			return nil, noop, err
		}
		for i, u := range src.FrameURLs {
			if err := validateURL(u); err != nil {
				return nil, noop, shared.InvalidInputf("frame %d: %v", i, err)
			}
		}
		return &ResolvedVideo{Kind: VideoKindFrameURLs, Frames: src.FrameURLs}, noop, nil

	default:
		if err := checkFrameCount(len(src.FrameBase64List)); err != nil {
			return nil, noop, err
		}
		frames, err := r.resolveBase64Frames(src.FrameBase64List)
		if err != nil {
			return nil, noop, err
		}
		return &ResolvedVideo{Kind: VideoKindFrameBase64, Frames: frames}, noop, nil
	}
}

// SpoolUpload streams an uploaded video to a bounded temp file and
// returns its path with a cleanup func.
func (r *Resolver) SpoolUpload(src io.Reader, filename string) (string, func(), error) {
	noop := func() {}

	name := fmt.Sprintf("upload_%s%s", uuid.New().String(), filepath.Ext(filename))
	path := filepath.Join(r.cfg.TempDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", noop, fmt.Errorf("create temp file: %w", err)
	}

	bounded := src
	if r.cfg.MaxVideoBytes > 0 {
		bounded = io.LimitReader(src, r.cfg.MaxVideoBytes+1)
	}

	written, err := io.Copy(f, bounded)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", noop, fmt.Errorf("write temp file: %w", err)
	}
	if r.cfg.MaxVideoBytes > 0 && written > r.cfg.MaxVideoBytes {
		os.Remove(path)
		return "", noop, shared.PayloadTooLargef("uploaded file exceeds the %d byte limit", r.cfg.MaxVideoBytes)
	}

	r.logger.Debug("upload spooled", "path", path, "bytes", written)
	return path, r.removeFunc(path), nil
}

func (r *Resolver) removeFunc(path string) func() {
	return func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			r.logger.Warn("failed to remove temp file", "path", path, "error", err)
		}
	}
}

// imageDataURL validates a base64 image payload and returns it as a
// data URL. Payloads already carrying a data: prefix keep their
// declared media type.
func (r *Resolver) imageDataURL(raw string) (string, error) {
	payload, declared := splitDataURL(raw)

	if ceiling := r.cfg.MaxImageBytes; ceiling > 0 && decodedLen(payload) > ceiling {
		return "", shared.PayloadTooLargef("decoded image exceeds the %d byte limit", ceiling)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", shared.InvalidInput("image_base64 is not valid base64 data")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", shared.InvalidInputf("image_base64 does not decode as an image: %v", err)
	}

	if declared == "" {
		declared = "image/" + format
	}
	return "data:" + declared + ";base64," + payload, nil
}

func (r *Resolver) spoolBase64Video(raw string) (string, error) {
	payload, _ := splitDataURL(raw)

	if ceiling := r.cfg.MaxVideoBytes; ceiling > 0 && decodedLen(payload) > ceiling {
		return "", shared.PayloadTooLargef("decoded video exceeds the %d byte limit", ceiling)
	}

	path := filepath.Join(r.cfg.TempDir, fmt.Sprintf("video_%s.mp4", uuid.New().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	dec := base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload))
	_, err = io.Copy(f, dec)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", shared.InvalidInput("video_base64 is not valid base64 data")
	}

	r.logger.Debug("base64 video spooled", "path", path)
	return path, nil
}

// resolveBase64Frames validates every frame payload concurrently. Any
// bad frame fails the whole request: the model needs the complete,
// correctly ordered set.
func (r *Resolver) resolveBase64Frames(list []string) ([]string, error) {
	frames := make([]string, len(list))

	var g errgroup.Group
	g.SetLimit(frameDecodeConcurrency)
	for i, raw := range list {
		i, raw := i, raw
		g.Go(func() error {
			uri, err := r.imageDataURL(raw)
			if err != nil {
				return shared.InvalidInputf("frame %d: %v", i, err)
			}
			frames[i] = uri
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func normalizeBounds(b Bounds) (Bounds, error) {
	if b.MinPixels == 0 {
		b.MinPixels = defaultMinPixels
	}
	if b.MaxPixels == 0 {
		b.MaxPixels = defaultMaxPixels
	}
	if b.MinPixels < 0 || b.MaxPixels < 0 {
		return b, shared.InvalidInput("pixel bounds must be positive")
	}
	if b.MinPixels > b.MaxPixels {
		return b, shared.InvalidInputf("min_pixels (%d) must not exceed max_pixels (%d)", b.MinPixels, b.MaxPixels)
	}
	return b, nil
}

func checkFrameCount(n int) error {
	if n < 1 || n > MaxFrameCount {
		return shared.InvalidInputf("frame count must be between 1 and %d, got %d", MaxFrameCount, n)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return shared.InvalidInputf("malformed URL %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return shared.InvalidInputf("URL %q must be absolute http or https", raw)
	}
	return nil
}

func splitDataURL(raw string) (payload, mediaType string) {
	if !strings.HasPrefix(raw, "data:") {
		return raw, ""
	}
	rest := strings.TrimPrefix(raw, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return raw, ""
	}
	mediaType = strings.TrimSuffix(meta, ";base64")
	return payload, mediaType
}

// decodedLen estimates the decoded size of a base64 payload without
// decoding it.
func decodedLen(payload string) int64 {
	return int64(len(payload)) / 4 * 3
}
