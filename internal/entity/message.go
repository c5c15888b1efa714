package entity

import "errors"

// User-facing status messages.
const (
	MsgEmptyInput        = "Please enter a media URL"
	MsgInvalidURL        = "Please enter a valid URL"
	MsgInvalidEncoding   = "This link is malformed"
	MsgUnsupportedUpload = "Direct upload not supported. Please use an image hosting service (like Imgur), then paste the URL below."
	MsgCopied            = "Link copied to clipboard!"
	MsgCopyFailed        = "Failed to copy. Please try manually."
	MsgNothingToCopy     = "Please generate a link first"
	MsgLinkGenerated     = "Link generated successfully"
	MsgVideoLoadFailed   = "Could not load video preview. Link generated successfully."
	MsgPreviewLoadFailed = "Could not load preview. Link generated successfully."
	MsgUnexpected        = "Something went wrong. Please try again."
)

// Preview placeholders shown in place of media that failed to load.
const (
	PlaceholderVideo       = "Video preview unavailable"
	PlaceholderImage       = "Preview unavailable"
	PlaceholderUnsupported = "Preview unavailable for this format"
)

// StatusMessage maps an error to the message shown to the user.
// Errors it does not know about are never shown raw.
func StatusMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, ErrInvalidURL):
		return MsgInvalidURL
	case errors.Is(err, ErrInvalidEncoding):
		return MsgInvalidEncoding
	case errors.Is(err, ErrUnsupportedUpload):
		return MsgUnsupportedUpload
	case errors.Is(err, ErrClipboardFailure):
		return MsgCopyFailed
	case errors.Is(err, ErrNothingToCopy):
		return MsgNothingToCopy
	case errors.Is(err, ErrPreviewLoadFailure):
		return MsgPreviewLoadFailed
	default:
		return MsgUnexpected
	}
}

// ErrorCode returns a stable machine-readable code for err.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrUnsupportedUpload):
		return "unsupported_upload"
	case errors.Is(err, ErrClipboardFailure):
		return "clipboard_failure"
	case errors.Is(err, ErrNothingToCopy):
		return "nothing_to_copy"
	case errors.Is(err, ErrPreviewLoadFailure):
		return "preview_load_failure"
	default:
		return "unknown"
	}
}
