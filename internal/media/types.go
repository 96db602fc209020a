package media

// ImageSource is the caller-supplied representation of one image.
// Exactly one field must be populated.
type ImageSource struct {
	URL    string
	Base64 string
}

// VideoSource is the caller-supplied representation of one video or an
// ordered frame sequence. Exactly one field must be populated.
type VideoSource struct {
	URL             string
	Base64          string
	FrameURLs       []string
	FrameBase64List []string
}

type VideoKind string

const (
	VideoKindURL         VideoKind = "url"
	VideoKindBase64      VideoKind = "base64"
	VideoKindFrameURLs   VideoKind = "frame_urls"
	VideoKindFrameBase64 VideoKind = "frame_base64_list"
	VideoKindUpload      VideoKind = "upload"
)

// Bounds are the per-image resolution hints forwarded to the vision
// preprocessor. They bound resizing, not admission: images outside the
// range are scaled by the engine, not rejected.
type Bounds struct {
	MinPixels int64
	MaxPixels int64
}

// Resolved is a normalized image reference: a URL or data URL the
// engine can dereference lazily.
type Resolved struct {
	URI string
	Bounds
}

// ResolvedVideo is a normalized video reference: a dereferenceable
// URI, a local temp file path, or an ordered frame list. At most one
// of URI/Path/Frames is set.
type ResolvedVideo struct {
	Kind   VideoKind
	URI    string
	Path   string
	Frames []string
}

const (
	defaultMinPixels = 64 * 32 * 32
	defaultMaxPixels = 4096 * 32 * 32

	// MaxFrameCount bounds frame-list inputs and the max_frames
	// sampling parameter.
	MaxFrameCount = 2048
)
