package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type linkUseCase interface {
	BasePath() string
	GenerateLink(origin, rawInput string) (*entity.ShareableLink, error)
	ResolveLink(encoded string) (*entity.ResolvedLink, error)
	Preview(rawInput string) (entity.PreviewDescriptor, error)
}

type linkHandler struct {
	useCase      linkUseCase
	validate     *validator.Validate
	publicOrigin string
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate, publicOrigin string) *linkHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &linkHandler{
		useCase:      useCase,
		validate:     validate,
		publicOrigin: strings.TrimRight(publicOrigin, "/"),
	}
}

// origin returns the origin generated links are built against: the configured
// public origin, or the scheme and host the request arrived with.
func (h *linkHandler) origin(r *http.Request) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	proto := strings.ToLower(strings.TrimSpace(strings.SplitN(r.Header.Get("X-Forwarded-Proto"), ",", 2)[0]))
	if proto == "http" || proto == "https" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

// decodeRequest reads and validates a linkRequest, writing the error response itself.
func (h *linkHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (linkRequest, bool) {
	var req linkRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return req, false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return req, false
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return req, false
	}

	return req, true
}

// renderError answers validation failures with their user message and hides anything else.
func (h *linkHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyInput),
		errors.Is(err, entity.ErrInvalidURL),
		errors.Is(err, entity.ErrInvalidEncoding):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, domainErrorResponse(err))
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
	}
}

func (h *linkHandler) generateLink(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	link, err := h.useCase.GenerateLink(h.origin(r), req.URL)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(link))
}

func (h *linkHandler) previewLink(w http.ResponseWriter, r *http.Request) {
	d, err := h.useCase.Preview(r.URL.Query().Get("url"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toPreviewResponse(d))
}

// resolveLink serves the links this service generates: it redirects to the
// embedded URL, or describes it when the preview parameter is set.
func (h *linkHandler) resolveLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	link, err := h.useCase.ResolveLink(q.Get("url"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if preview, _ := strconv.ParseBool(q.Get("preview")); preview {
		render.Status(r, http.StatusOK)
		render.JSON(w, r, toPreviewResponse(link.Preview))
		return
	}

	http.Redirect(w, r, link.SourceURL, http.StatusFound)
}

func (h *linkHandler) rejectUpload(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnsupportedMediaType)
	render.JSON(w, r, unsupportedUploadResponse)
}
