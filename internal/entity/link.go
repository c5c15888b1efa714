// Package entity defines the entities and errors used in the application.
// It includes the ShareableLink produced for a media URL, the preview descriptor
// used to pick an inline renderer, and the user-facing status messages.
package entity

import "errors"

var (
	// ErrEmptyInput is returned when the submitted URL is empty after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidURL is returned when the submitted string is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidEncoding is returned when a link parameter is not valid base64.
	ErrInvalidEncoding = errors.New("invalid link encoding")
	// ErrPreviewLoadFailure is reported when the media behind a link could not be rendered.
	ErrPreviewLoadFailure = errors.New("preview load failure")
	// ErrClipboardFailure is returned when writing the link to the clipboard fails.
	ErrClipboardFailure = errors.New("clipboard failure")
	// ErrUnsupportedUpload is returned for direct file uploads, which are never accepted.
	ErrUnsupportedUpload = errors.New("unsupported upload")
	// ErrNothingToCopy is returned when a copy is requested before any link was generated.
	ErrNothingToCopy = errors.New("nothing to copy")
)

// ShareableLink is a link embedding the base64-encoded source URL as a query parameter.
type ShareableLink struct {
	Link      string            // Link is the full link: origin, base path and the url parameter.
	Encoded   string            // Encoded is the base64 form of SourceURL, before query escaping.
	SourceURL string            // SourceURL is the trimmed URL the user submitted.
	Preview   PreviewDescriptor // Preview describes how SourceURL should be previewed.
}

// ResolvedLink is the result of decoding the url parameter of a ShareableLink.
type ResolvedLink struct {
	SourceURL string
	Preview   PreviewDescriptor
}
