package smocks

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type BookmarkMock struct {
	mock.Mock
}

func (b *BookmarkMock) List(ctx context.Context) ([]models.Bookmark, error) {
	args := b.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) GetByID(ctx context.Context, id uint) (*models.Bookmark, error) {
	args := b.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error) {
	args := b.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Delete(ctx context.Context, id uint) error {
	return b.Called(ctx, id).Error(0) //nolint:wrapcheck
}

func (b *BookmarkMock) Update(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) error {
	return b.Called(ctx, id, arg).Error(0) //nolint:wrapcheck
}

type PingMock struct {
	mock.Mock
}

func (p *PingMock) CheckConnection(ctx context.Context) error {
	return p.Called(ctx).Error(0) //nolint:wrapcheck
}
