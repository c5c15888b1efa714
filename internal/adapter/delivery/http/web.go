package http

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

//go:embed static/index.html
var indexHTML []byte

// handleIndex serves the link generator page.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

// settingsResponse carries the timings the page script runs with.
type settingsResponse struct {
	StatusTimeoutMS int64 `json:"status_timeout_ms"`
	CopyRevertMS    int64 `json:"copy_revert_ms"`
}

func handleSettings(statusTimeout, copyRevert time.Duration) http.HandlerFunc {
	resp := settingsResponse{
		StatusTimeoutMS: statusTimeout.Milliseconds(),
		CopyRevertMS:    copyRevert.Milliseconds(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusOK)
		render.JSON(w, r, resp)
	}
}
