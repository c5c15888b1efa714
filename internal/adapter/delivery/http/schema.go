package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

const statusError = "error"

// linkRequest represents the structure for a request to generate a shareable link or a preview.
// Emptiness and URL shape are checked by the use case so that they map to their own error codes.
type linkRequest struct {
	URL string `json:"url" validate:"max=2048"`
}

// previewResponse represents how the page should preview a media URL.
type previewResponse struct {
	Kind           string `json:"kind"`
	Renderer       string `json:"renderer"`
	SourceURL      string `json:"source_url"`
	Extension      string `json:"extension"`
	Placeholder    string `json:"placeholder"`
	FailureMessage string `json:"failure_message"`
}

func toPreviewResponse(d entity.PreviewDescriptor) previewResponse {
	return previewResponse{
		Kind:           string(d.Kind),
		Renderer:       string(d.Renderer),
		SourceURL:      d.SourceURL,
		Extension:      d.Extension,
		Placeholder:    d.Placeholder,
		FailureMessage: d.FailureMessage,
	}
}

// linkResponse represents the structure for a response containing a generated link.
type linkResponse struct {
	Link      string          `json:"link"`
	Encoded   string          `json:"encoded"`
	SourceURL string          `json:"source_url"`
	Preview   previewResponse `json:"preview"`
	Message   string          `json:"message"`
}

func toLinkResponse(link *entity.ShareableLink) linkResponse {
	return linkResponse{
		Link:      link.Link,
		Encoded:   link.Encoded,
		SourceURL: link.SourceURL,
		Preview:   toPreviewResponse(link.Preview),
		Message:   entity.MsgLinkGenerated,
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response. Message is always safe to show to the user.
type errorResponse struct {
	Status  string            `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Code:    "empty_request_body",
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Code:    "invalid_request_body",
		Message: "invalid request body",
	}

	unsupportedUploadResponse = errorResponse{
		Status:  statusError,
		Code:    entity.ErrorCode(entity.ErrUnsupportedUpload),
		Message: entity.MsgUnsupportedUpload,
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Code:    "server_error",
		Message: entity.MsgUnexpected,
	}
)

// domainErrorResponse constructs an errorResponse for errors returned by the use case.
func domainErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Code:    entity.ErrorCode(err),
		Message: entity.StatusMessage(err),
	}
}

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Code:    "validation_error",
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
