package usecase

import (
	"strings"

	"github.com/vadimbarashkov/media-link/internal/entity"
)

var (
	videoExtensions = map[string]struct{}{
		"mp4": {}, "webm": {}, "ogg": {}, "mov": {},
	}
	imageExtensions = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "svg": {}, "bmp": {},
	}
	// imageHosts are matched as plain, case-sensitive substrings of the whole URL.
	imageHosts = []string{"imgur", "giphy"}
)

// Extension returns the lowercased text after the last '.' of rawURL with any
// query string cut off. Without a '.', the whole string is used.
func Extension(rawURL string) string {
	ext := rawURL[strings.LastIndex(rawURL, ".")+1:]
	ext, _, _ = strings.Cut(strings.ToLower(ext), "?")
	return ext
}

// Classify guesses the media kind of rawURL from its extension and, failing
// that, from well-known image hosts. The result says nothing about the real
// content type.
func Classify(rawURL string) entity.MediaKind {
	ext := Extension(rawURL)

	if _, ok := videoExtensions[ext]; ok {
		return entity.MediaVideo
	}

	if _, ok := imageExtensions[ext]; ok {
		return entity.MediaImage
	}

	for _, host := range imageHosts {
		if strings.Contains(rawURL, host) {
			return entity.MediaImage
		}
	}

	return entity.MediaUnsupported
}

// Describe classifies rawURL and returns how it should be previewed.
// Unsupported URLs are still tried as images.
func Describe(rawURL string) entity.PreviewDescriptor {
	d := entity.PreviewDescriptor{
		Kind:      Classify(rawURL),
		SourceURL: rawURL,
		Extension: Extension(rawURL),
	}

	switch d.Kind {
	case entity.MediaVideo:
		d.Renderer = entity.RendererVideo
		d.Placeholder = entity.PlaceholderVideo
		d.FailureMessage = entity.MsgVideoLoadFailed
	case entity.MediaImage:
		d.Renderer = entity.RendererImage
		d.Placeholder = entity.PlaceholderImage
		d.FailureMessage = entity.MsgPreviewLoadFailed
	default:
		d.Renderer = entity.RendererImage
		d.Placeholder = entity.PlaceholderUnsupported
		d.FailureMessage = entity.MsgPreviewLoadFailed
	}

	return d
}
