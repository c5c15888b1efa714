package usecase

import (
	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

type mockRecorder struct {
	mock.Mock
}

func (r *mockRecorder) LinkGenerated(kind entity.MediaKind) {
	r.Called(kind)
}

func (r *mockRecorder) LinkRejected(err error) {
	r.Called(err)
}

func (r *mockRecorder) LinkResolved(kind entity.MediaKind) {
	r.Called(kind)
}
