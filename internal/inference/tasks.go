package inference

// Kind names a task for dispatch and response metadata.
type Kind string

const (
	KindGrounding2D     Kind = "grounding_2d"
	KindSpatial         Kind = "spatial_understanding"
	KindVideo           Kind = "video_understanding"
	KindDescription     Kind = "image_description"
	KindDocumentParsing Kind = "document_parsing"
	KindDocumentOCR     Kind = "document_ocr"
	KindWildOCR         Kind = "wild_ocr"
	KindComparison      Kind = "image_comparison"
)

// taskDefaults carries the per-task generation and resolution bounds
// applied when a request leaves them unset. Document-shaped tasks get
// a higher floor so small print survives downscaling, and a larger
// token budget for long transcriptions.
type taskDefaults struct {
	MaxTokens int
	MinPixels int64
	MaxPixels int64
}

var defaultsByKind = map[Kind]taskDefaults{
	KindGrounding2D:     {MaxTokens: 2048, MinPixels: 64 * 32 * 32, MaxPixels: 4096 * 32 * 32},
	KindSpatial:         {MaxTokens: 2048, MinPixels: 64 * 32 * 32, MaxPixels: 4096 * 32 * 32},
	KindDescription:     {MaxTokens: 2048, MinPixels: 64 * 32 * 32, MaxPixels: 4096 * 32 * 32},
	KindComparison:      {MaxTokens: 2048, MinPixels: 64 * 32 * 32, MaxPixels: 4096 * 32 * 32},
	KindDocumentParsing: {MaxTokens: 4096, MinPixels: 512 * 32 * 32, MaxPixels: 4608 * 32 * 32},
	KindDocumentOCR:     {MaxTokens: 4096, MinPixels: 512 * 32 * 32, MaxPixels: 2048 * 32 * 32},
	KindWildOCR:         {MaxTokens: 4096, MinPixels: 512 * 32 * 32, MaxPixels: 2048 * 32 * 32},
}

// Video sampling defaults. The total pixel budget is shared across all
// sampled frames.
const (
	defaultVideoMaxTokens   = 2048
	defaultVideoTotalPixels = int64(20480 * 32 * 32)
	defaultVideoMinPixels   = int64(64 * 32 * 32)
	defaultVideoMaxFrames   = 2048
	defaultVideoSampleFPS   = 2.0
)
