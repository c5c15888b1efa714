package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty input", ErrEmptyInput, MsgEmptyInput},
		{"wrapped invalid url", fmt.Errorf("op: %w", ErrInvalidURL), MsgInvalidURL},
		{"invalid encoding", ErrInvalidEncoding, MsgInvalidEncoding},
		{"upload", ErrUnsupportedUpload, MsgUnsupportedUpload},
		{"clipboard", fmt.Errorf("op: %w: denied", ErrClipboardFailure), MsgCopyFailed},
		{"nothing to copy", ErrNothingToCopy, MsgNothingToCopy},
		{"preview", ErrPreviewLoadFailure, MsgPreviewLoadFailed},
		{"unknown", errors.New("permission denied: /dev/clipboard"), MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusMessage(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "empty_input", ErrorCode(fmt.Errorf("op: %w", ErrEmptyInput)))
	assert.Equal(t, "invalid_url", ErrorCode(ErrInvalidURL))
	assert.Equal(t, "invalid_encoding", ErrorCode(ErrInvalidEncoding))
	assert.Equal(t, "unsupported_upload", ErrorCode(ErrUnsupportedUpload))
	assert.Equal(t, "unknown", ErrorCode(errors.New("boom")))
}
