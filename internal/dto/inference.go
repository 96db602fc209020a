package dto

// GenerationParams are the sampling knobs accepted by every task body.
// Unset fields fall back to per-task defaults; temperature is passed
// through to the engine untouched, including 0.0.
type GenerationParams struct {
	MaxTokens   *int     `json:"max_tokens,omitempty" example:"2048" minimum:"1"`
	Temperature *float64 `json:"temperature,omitempty" example:"0.0" minimum:"0" maximum:"2"`
	TopP        *float64 `json:"top_p,omitempty" example:"1.0"`
	Seed        *int64   `json:"seed,omitempty" example:"42"`
}

type ImageInput struct {
	ImageURL    string `json:"image_url,omitempty" example:"https://example.com/photo.jpg"`
	ImageBase64 string `json:"image_base64,omitempty" example:"iVBORw0KGgo..."`
	MinPixels   *int64 `json:"min_pixels,omitempty" example:"65536"`
	MaxPixels   *int64 `json:"max_pixels,omitempty" example:"4194304"`
}

type Grounding2DRequest struct {
	ImageInput
	GenerationParams
	Categories        []string `json:"categories,omitempty" example:"person,car"`
	IncludeAttributes bool     `json:"include_attributes,omitempty" example:"false"`
	Prompt            string   `json:"prompt,omitempty" example:"Locate every traffic sign"`
}

type SpatialUnderstandingRequest struct {
	ImageInput
	GenerationParams
	Query        string `json:"query" example:"What is to the left of the red chair?"`
	OutputFormat string `json:"output_format,omitempty" example:"text" enums:"json,text"`
	Prompt       string `json:"prompt,omitempty"`
}

type VideoUnderstandingRequest struct {
	GenerationParams
	VideoURL        string   `json:"video_url,omitempty" example:"https://example.com/clip.mp4"`
	VideoBase64     string   `json:"video_base64,omitempty"`
	FrameURLs       []string `json:"frame_urls,omitempty"`
	FrameBase64List []string `json:"frame_base64_list,omitempty"`
	Prompt          string   `json:"prompt" example:"Describe what happens in this video"`
	Task            string   `json:"task,omitempty" example:"description" enums:"description,event_localization"`
	MaxFrames       *int     `json:"max_frames,omitempty" example:"2048"`
	SampleFPS       *float64 `json:"sample_fps,omitempty" example:"2.0"`
	TotalPixels     *int64   `json:"total_pixels,omitempty" example:"20971520"`
	MinPixels       *int64   `json:"min_pixels,omitempty" example:"65536"`
}

type ImageDescriptionRequest struct {
	ImageInput
	GenerationParams
	DetailLevel string `json:"detail_level,omitempty" example:"detailed" enums:"basic,detailed,comprehensive"`
	Prompt      string `json:"prompt,omitempty"`
}

type DocumentParsingRequest struct {
	ImageInput
	GenerationParams
	OutputFormat string `json:"output_format,omitempty" example:"qwenvl_html" enums:"html,markdown,qwenvl_html,qwenvl_markdown"`
	Prompt       string `json:"prompt,omitempty"`
}

type OCRRequest struct {
	ImageInput
	GenerationParams
	Granularity  string `json:"granularity,omitempty" example:"line" enums:"word,line,paragraph"`
	IncludeBbox  bool   `json:"include_bbox,omitempty" example:"false"`
	OutputFormat string `json:"output_format,omitempty" example:"text" enums:"json,text"`
	Prompt       string `json:"prompt,omitempty"`
}

type ImageComparisonRequest struct {
	GenerationParams
	ImageURLs       []string `json:"image_urls,omitempty"`
	ImageBase64List []string `json:"image_base64_list,omitempty"`
	ComparisonType  string   `json:"comparison_type,omitempty" example:"differences" enums:"differences,changes,similarities"`
	OutputFormat    string   `json:"output_format,omitempty" example:"json" enums:"json,text"`
	Prompt          string   `json:"prompt,omitempty"`
	MinPixels       *int64   `json:"min_pixels,omitempty" example:"65536"`
	MaxPixels       *int64   `json:"max_pixels,omitempty" example:"4194304"`
}

// InferenceResponse is the uniform envelope returned by every task
// endpoint. Success is true exactly when Result is set and Error is
// empty.
type InferenceResponse struct {
	Success  bool           `json:"success" example:"true"`
	Result   any            `json:"result"`
	Error    string         `json:"error,omitempty" example:""`
	Metadata map[string]any `json:"metadata,omitempty" swaggertype:"object"`
}

func SuccessResponse(result any, metadata map[string]any) InferenceResponse {
	return InferenceResponse{
		Success:  true,
		Result:   result,
		Metadata: metadata,
	}
}

func FailureResponse(err error, metadata map[string]any) InferenceResponse {
	return InferenceResponse{
		Success:  false,
		Result:   nil,
		Error:    err.Error(),
		Metadata: metadata,
	}
}

type HealthResponse struct {
	Status      string                     `json:"status" example:"healthy"`
	ModelLoaded bool                       `json:"model_loaded" example:"true"`
	Version     string                     `json:"version" example:"1.0.0"`
	Components  map[string]ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Status    string `json:"status" example:"healthy"`
	LatencyMs int64  `json:"latency_ms" example:"3"`
	Error     string `json:"error,omitempty"`
}
