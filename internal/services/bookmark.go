package services

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"go.uber.org/zap"
)

// BookmarkService сервис работает с хранилищем в контексте таблицы `bookmarks_items`.
type BookmarkService struct {
	repo   BookmarkRepository
	logger *zap.Logger
}

func NewBookmarkService(repo BookmarkRepository, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{
		repo:   repo,
		logger: logger.With(zap.String("module", "services/bookmark")),
	}
}

func (b *BookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks, err := b.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookmarks: %w", ErrUnknown, err)
	}
	return bookmarks, nil
}

// GetByID возвращает ErrRecordNotFound, если закладки нет.
func (b *BookmarkService) GetByID(ctx context.Context, id uint) (*models.Bookmark, error) {
	bookmark, err := b.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get bookmark %d: %w", ErrUnknown, id, err)
	}
	if bookmark == nil {
		return nil, fmt.Errorf("%w: bookmark %d", ErrRecordNotFound, id)
	}
	return bookmark, nil
}

func (b *BookmarkService) Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error) {
	bookmark, err := b.repo.Create(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: create bookmark: %w", ErrUnknown, err)
	}
	b.logger.Info(fmt.Sprintf("Bookmark with id %d created", bookmark.ID))
	return bookmark, nil
}

// Delete возвращает ErrRecordNotFound, если удалять было нечего.
func (b *BookmarkService) Delete(ctx context.Context, id uint) error {
	affected, err := b.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete bookmark %d: %w", ErrUnknown, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: bookmark %d", ErrRecordNotFound, id)
	}
	b.logger.Info(fmt.Sprintf("Bookmark with id %d deleted", id))
	return nil
}

// Update применяет частичное обновление. Возвращает ErrRecordNotFound, если запись не затронута.
func (b *BookmarkService) Update(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) error {
	affected, err := b.repo.UpdateByID(ctx, id, arg)
	if err != nil {
		return fmt.Errorf("%w: update bookmark %d: %w", ErrUnknown, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: bookmark %d", ErrRecordNotFound, id)
	}
	return nil
}
