package services

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// BookmarkRepository описывает доступ к таблице bookmarks_items.
type BookmarkRepository interface {
	// GetAll возвращает все записи. Сразу пачкой.
	GetAll(ctx context.Context) ([]models.Bookmark, error)
	// GetByID возвращает запись или nil, если ее нет. Отсутствие записи ошибкой не является.
	GetByID(ctx context.Context, id uint) (*models.Bookmark, error)
	// Create вставляет запись и возвращает ее с назначенным идентификатором.
	Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error)
	// DeleteByID удаляет запись, возвращает число затронутых строк.
	DeleteByID(ctx context.Context, id uint) (int64, error)
	// UpdateByID обновляет только заданные поля, возвращает число затронутых строк.
	UpdateByID(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) (int64, error)
}

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}
