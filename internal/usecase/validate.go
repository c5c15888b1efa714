package usecase

import "net/url"

// IsValidURL reports whether s is an absolute URL with an http or https scheme.
// It never fails: malformed, relative and non-http(s) input all yield false.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
