package controllers

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// BookmarkStore операции над закладками, которые нужны контроллеру.
type BookmarkStore interface {
	List(ctx context.Context) ([]models.Bookmark, error)
	// GetByID возвращает services.ErrRecordNotFound, если закладки нет.
	GetByID(ctx context.Context, id uint) (*models.Bookmark, error)
	Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error)
	Delete(ctx context.Context, id uint) error
	Update(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) error
}
