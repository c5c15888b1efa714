package http

import (
	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/media-link/internal/entity"
)

type mockLinkUseCase struct {
	mock.Mock
}

func (uc *mockLinkUseCase) BasePath() string {
	args := uc.Called()
	return args.String(0)
}

func (uc *mockLinkUseCase) GenerateLink(origin, rawInput string) (*entity.ShareableLink, error) {
	args := uc.Called(origin, rawInput)
	link, _ := args.Get(0).(*entity.ShareableLink)
	return link, args.Error(1)
}

func (uc *mockLinkUseCase) ResolveLink(encoded string) (*entity.ResolvedLink, error) {
	args := uc.Called(encoded)
	link, _ := args.Get(0).(*entity.ResolvedLink)
	return link, args.Error(1)
}

func (uc *mockLinkUseCase) Preview(rawInput string) (entity.PreviewDescriptor, error) {
	args := uc.Called(rawInput)
	d, _ := args.Get(0).(entity.PreviewDescriptor)
	return d, args.Error(1)
}
