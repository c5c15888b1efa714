package usecase

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/vadimbarashkov/media-link/internal/entity"
)

// EncodeURL returns the padded standard base64 form of rawURL.
func EncodeURL(rawURL string) string {
	return base64.StdEncoding.EncodeToString([]byte(rawURL))
}

// QueryValue escapes an encoded URL for use as a query value, so '+', '/' and
// '=' survive the trip through a query string.
func QueryValue(encoded string) string {
	return url.QueryEscape(encoded)
}

// DecodeURL reverses EncodeURL. It also accepts the URL-safe alphabet, missing
// padding, and '+' that a query parser already turned into a space.
func DecodeURL(encoded string) (string, error) {
	const op = "usecase.DecodeURL"

	s := strings.TrimSpace(encoded)
	s = strings.NewReplacer(" ", "+", "-", "+", "_", "/").Replace(s)
	s = strings.TrimRight(s, "=")

	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidEncoding, err)
	}

	return string(b), nil
}
