// Package conversation models the single-turn message structure sent
// to the inference engine: ordered image/video/text content blocks
// with per-block vision preprocessing hints.
package conversation

import (
	"math"

	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/eleven-am/vision-backend/internal/shared"
)

type Role string

const RoleUser Role = "user"

type Message struct {
	Role    Role
	Content []Block
}

// Block is a closed union: exactly one of Text, Image, or Video is
// set.
type Block struct {
	Text  string
	Image *ImageBlock
	Video *VideoBlock
}

type ImageBlock struct {
	URI       string
	MinPixels int64
	MaxPixels int64
}

type VideoBlock struct {
	URI    string
	Path   string
	Frames []string
	Sampling
}

// Sampling bounds how many frames the engine draws from the video and
// how much resolution each frame keeps.
type Sampling struct {
	TotalPixels int64
	MinPixels   int64
	MaxFrames   int
	SampleFPS   float64
}

// EffectiveFrames is the number of frames the engine samples from a
// video of the given duration: min(MaxFrames, floor(duration × fps)).
// When the fps-derived count exceeds MaxFrames the engine spreads the
// MaxFrames samples uniformly across the timeline rather than
// truncating the tail.
func (s Sampling) EffectiveFrames(durationSeconds float64) int {
	byFPS := int(math.Floor(durationSeconds * s.SampleFPS))
	if byFPS < s.MaxFrames {
		return byFPS
	}
	return s.MaxFrames
}

func (s Sampling) validate() error {
	if s.MaxFrames < 1 {
		return shared.InvalidInput("max_frames must be at least 1")
	}
	if s.MaxFrames > media.MaxFrameCount {
		return shared.InvalidInputf("max_frames must not exceed %d", media.MaxFrameCount)
	}
	if s.SampleFPS <= 0 {
		return shared.InvalidInput("sample_fps must be greater than 0")
	}
	return nil
}

// Image assembles the single-image conversation: one image block
// followed by the instruction text.
func Image(img *media.Resolved, prompt string) []Message {
	return []Message{{
		Role: RoleUser,
		Content: []Block{
			{Image: &ImageBlock{URI: img.URI, MinPixels: img.MinPixels, MaxPixels: img.MaxPixels}},
			{Text: prompt},
		},
	}}
}

// MultiImage assembles the comparison conversation: 2-4 image blocks
// in input order followed by the instruction text.
func MultiImage(imgs []*media.Resolved, prompt string) ([]Message, error) {
	if len(imgs) < 2 || len(imgs) > 4 {
		return nil, shared.InvalidInput("Number of images must be between 2 and 4")
	}

	content := make([]Block, 0, len(imgs)+1)
	for _, img := range imgs {
		content = append(content, Block{
			Image: &ImageBlock{URI: img.URI, MinPixels: img.MinPixels, MaxPixels: img.MaxPixels},
		})
	}
	content = append(content, Block{Text: prompt})

	return []Message{{Role: RoleUser, Content: content}}, nil
}

// Video assembles the video conversation: one video block carrying the
// sampling bounds followed by the instruction text.
func Video(v *media.ResolvedVideo, s Sampling, prompt string) ([]Message, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	return []Message{{
		Role: RoleUser,
		Content: []Block{
			{Video: &VideoBlock{URI: v.URI, Path: v.Path, Frames: v.Frames, Sampling: s}},
			{Text: prompt},
		},
	}}, nil
}
