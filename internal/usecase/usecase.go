package usecase

import (
	"fmt"
	"strings"

	"github.com/vadimbarashkov/media-link/internal/entity"
)

// DefaultBasePath is the path of the endpoint generated links point at.
const DefaultBasePath = "/api/main"

type recorder interface {
	LinkGenerated(kind entity.MediaKind)
	LinkRejected(err error)
	LinkResolved(kind entity.MediaKind)
}

type nopRecorder struct{}

func (nopRecorder) LinkGenerated(entity.MediaKind) {}
func (nopRecorder) LinkRejected(error)             {}
func (nopRecorder) LinkResolved(entity.MediaKind)  {}

type LinkUseCase struct {
	basePath string
	rec      recorder
}

// New returns a LinkUseCase producing links against basePath. A nil rec disables
// metric recording.
func New(basePath string, rec recorder) *LinkUseCase {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	if rec == nil {
		rec = nopRecorder{}
	}

	return &LinkUseCase{
		basePath: "/" + strings.Trim(basePath, "/"),
		rec:      rec,
	}
}

func (uc *LinkUseCase) BasePath() string {
	return uc.basePath
}

// GenerateLink validates rawInput and builds a shareable link for it under origin.
// Nothing is produced when validation fails.
func (uc *LinkUseCase) GenerateLink(origin, rawInput string) (*entity.ShareableLink, error) {
	const op = "usecase.LinkUseCase.GenerateLink"

	sourceURL := strings.TrimSpace(rawInput)

	if sourceURL == "" {
		uc.rec.LinkRejected(entity.ErrEmptyInput)
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyInput)
	}

	if !IsValidURL(sourceURL) {
		uc.rec.LinkRejected(entity.ErrInvalidURL)
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	encoded := EncodeURL(sourceURL)
	preview := Describe(sourceURL)

	uc.rec.LinkGenerated(preview.Kind)

	return &entity.ShareableLink{
		Link:      strings.TrimRight(origin, "/") + uc.basePath + "?url=" + QueryValue(encoded),
		Encoded:   encoded,
		SourceURL: sourceURL,
		Preview:   preview,
	}, nil
}

// ResolveLink decodes the url parameter of a shareable link and checks that it
// still holds an http(s) URL.
func (uc *LinkUseCase) ResolveLink(encoded string) (*entity.ResolvedLink, error) {
	const op = "usecase.LinkUseCase.ResolveLink"

	if strings.TrimSpace(encoded) == "" {
		uc.rec.LinkRejected(entity.ErrEmptyInput)
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmptyInput)
	}

	sourceURL, err := DecodeURL(encoded)
	if err != nil {
		uc.rec.LinkRejected(entity.ErrInvalidEncoding)
		return nil, fmt.Errorf("%s: failed to decode link: %w", op, err)
	}

	if !IsValidURL(sourceURL) {
		uc.rec.LinkRejected(entity.ErrInvalidURL)
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	preview := Describe(sourceURL)
	uc.rec.LinkResolved(preview.Kind)

	return &entity.ResolvedLink{
		SourceURL: sourceURL,
		Preview:   preview,
	}, nil
}

// Preview validates rawInput and describes how it should be previewed.
func (uc *LinkUseCase) Preview(rawInput string) (entity.PreviewDescriptor, error) {
	const op = "usecase.LinkUseCase.Preview"

	sourceURL := strings.TrimSpace(rawInput)

	if sourceURL == "" {
		return entity.PreviewDescriptor{}, fmt.Errorf("%s: %w", op, entity.ErrEmptyInput)
	}

	if !IsValidURL(sourceURL) {
		return entity.PreviewDescriptor{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	return Describe(sourceURL), nil
}
