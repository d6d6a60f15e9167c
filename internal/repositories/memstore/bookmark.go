package memstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/db/memory"
	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
)

// BookmarkRepo репозиторий закладок в памяти.
type BookmarkRepo struct {
	s  *db.MemoryStorage
	mu sync.Mutex // сериализует чтение-изменение-запись в UpdateByID
}

// NewBookmarkRepo создает новый экземпляр репозитория закладок.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *BookmarkRepo: инициализированный репозиторий
func NewBookmarkRepo(store *db.MemoryStorage) *BookmarkRepo {
	return &BookmarkRepo{
		s: store,
	}
}

// GetAll возвращает все закладки, упорядоченные по идентификатору.
func (b *BookmarkRepo) GetAll(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks, err := memory.GetAll[models.Bookmark](ctx, b.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get all bookmarks: %w", convertErrorType(err))
	}
	slices.SortFunc(bookmarks, func(a, c models.Bookmark) int {
		return cmp.Compare(a.ID, c.ID)
	})
	return bookmarks, nil
}

// GetByID возвращает закладку либо nil, если записи нет.
func (b *BookmarkRepo) GetByID(ctx context.Context, id uint) (*models.Bookmark, error) {
	bookmark, err := memory.Get[models.Bookmark](ctx, key(id), b.s.MStorage)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("failed to get bookmark by id %d: %w", id, convertErrorType(err))
	}
	return bookmark, nil
}

// Create сохраняет закладку под следующим идентификатором последовательности.
func (b *BookmarkRepo) Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error) {
	bookmark := models.Bookmark{
		ID:          b.s.NextID(),
		Title:       arg.Title,
		URL:         arg.URL,
		Description: arg.Description,
		Rating:      arg.Rating,
	}
	if err := memory.Set[models.Bookmark](ctx, key(bookmark.ID), &bookmark, b.s.MStorage); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", convertErrorType(err))
	}
	return &bookmark, nil
}

// DeleteByID удаляет закладку и возвращает число удаленных записей (0 или 1).
func (b *BookmarkRepo) DeleteByID(ctx context.Context, id uint) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	existed, err := memory.Delete(ctx, key(id), b.s.MStorage)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookmark %d: %w", id, convertErrorType(err))
	}
	if !existed {
		return 0, nil
	}
	return 1, nil
}

// UpdateByID обновляет только заданные поля и возвращает число затронутых записей (0 или 1).
func (b *BookmarkRepo) UpdateByID(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) (int64, error) {
	if arg.IsEmpty() {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bookmark, err := b.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if bookmark == nil {
		return 0, nil
	}

	if arg.Title != nil {
		bookmark.Title = *arg.Title
	}
	if arg.URL != nil {
		bookmark.URL = *arg.URL
	}
	if arg.Description != nil {
		bookmark.Description = *arg.Description
	}
	if arg.Rating != nil {
		bookmark.Rating = *arg.Rating
	}

	if setErr := memory.Set[models.Bookmark](ctx, key(id), bookmark, b.s.MStorage, memory.WithOverwrite()); setErr != nil {
		return 0, fmt.Errorf("failed to update bookmark %d: %w", id, convertErrorType(setErr))
	}
	return 1, nil
}

// Ping хранилище в памяти всегда доступно.
func (b *BookmarkRepo) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

func key(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
