package entity

// MediaKind is the heuristic classification of a media URL.
type MediaKind string

const (
	MediaVideo       MediaKind = "video"
	MediaImage       MediaKind = "image"
	MediaUnsupported MediaKind = "unsupported"
)

// Renderer names the inline element used to preview a URL.
type Renderer string

const (
	RendererVideo Renderer = "video"
	RendererImage Renderer = "image"
)

// PreviewDescriptor tells a renderer how to preview a media URL and what to show
// when the media fails to load. It is derived from the URL alone and may be wrong.
type PreviewDescriptor struct {
	Kind           MediaKind
	Renderer       Renderer
	SourceURL      string
	Extension      string
	Placeholder    string
	FailureMessage string
}
