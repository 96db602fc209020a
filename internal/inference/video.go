package inference

import (
	"context"
	"io"
	"strings"

	"github.com/eleven-am/vision-backend/internal/conversation"
	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/extract"
	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/eleven-am/vision-backend/internal/shared"
)

const (
	VideoTaskDescription       = "description"
	VideoTaskEventLocalization = "event_localization"
)

func videoSampling(req dto.VideoUnderstandingRequest) conversation.Sampling {
	s := conversation.Sampling{
		TotalPixels: defaultVideoTotalPixels,
		MinPixels:   defaultVideoMinPixels,
		MaxFrames:   defaultVideoMaxFrames,
		SampleFPS:   defaultVideoSampleFPS,
	}
	if req.TotalPixels != nil {
		s.TotalPixels = *req.TotalPixels
	}
	if req.MinPixels != nil {
		s.MinPixels = *req.MinPixels
	}
	if req.MaxFrames != nil {
		s.MaxFrames = *req.MaxFrames
	}
	if req.SampleFPS != nil {
		s.SampleFPS = *req.SampleFPS
	}
	return s
}

// VideoUnderstanding analyzes a video supplied as a URL, base64 blob,
// or an ordered frame sequence. The task field selects the output
// shape: plain description, or timestamped event localization.
func (s *Service) VideoUnderstanding(ctx context.Context, req dto.VideoUnderstandingRequest) (dto.InferenceResponse, error) {
	resolved, cleanup, err := s.resolver.ResolveVideo(media.VideoSource{
		URL:             req.VideoURL,
		Base64:          req.VideoBase64,
		FrameURLs:       req.FrameURLs,
		FrameBase64List: req.FrameBase64List,
	})
	if err != nil {
		return failure(err, nil)
	}
	defer cleanup()

	return s.analyzeVideo(ctx, resolved, req)
}

// VideoUnderstandingUpload analyzes a video streamed in as a raw file
// upload. The file is spooled to a bounded temp file and removed after
// the engine call returns.
func (s *Service) VideoUnderstandingUpload(ctx context.Context, file io.Reader, filename string, req dto.VideoUnderstandingRequest) (dto.InferenceResponse, error) {
	path, cleanup, err := s.resolver.SpoolUpload(file, filename)
	if err != nil {
		return failure(err, nil)
	}
	defer cleanup()

	resolved := &media.ResolvedVideo{Kind: media.VideoKindUpload, Path: path}
	return s.analyzeVideo(ctx, resolved, req)
}

func (s *Service) analyzeVideo(ctx context.Context, resolved *media.ResolvedVideo, req dto.VideoUnderstandingRequest) (dto.InferenceResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return failure(shared.InvalidInput("prompt is required"), nil)
	}

	params, err := genParams(req.GenerationParams, taskDefaults{MaxTokens: defaultVideoMaxTokens})
	if err != nil {
		return failure(err, nil)
	}

	msgs, err := conversation.Video(resolved, videoSampling(req), req.Prompt)
	if err != nil {
		return failure(err, nil)
	}

	text, err := s.engine.Generate(ctx, msgs, params)
	if err != nil {
		s.logger.Error("generation failed", "task", string(KindVideo), "error", err)
		return failure(err, nil)
	}
	text = strings.TrimSpace(text)

	task := req.Task
	if task != VideoTaskEventLocalization {
		task = VideoTaskDescription
	}

	metadata := map[string]any{
		"task":       string(KindVideo),
		"video_type": string(resolved.Kind),
	}

	var result any = text
	if task == VideoTaskEventLocalization {
		metadata["video_task"] = task
		result = extract.Events(text, s.logger)
	}

	return dto.SuccessResponse(result, metadata), nil
}
