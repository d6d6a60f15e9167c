package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookmarkRepo репозиторий закладок в таблице bookmarks_items.
type BookmarkRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBookmarkRepo создает репозиторий поверх переданного подключения.
func NewBookmarkRepo(db *gorm.DB, logger *zap.Logger) *BookmarkRepo {
	return &BookmarkRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/bookmark")),
	}
}

// GetAll возвращает все закладки без фильтрации.
func (b *BookmarkRepo) GetAll(ctx context.Context) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := b.db.WithContext(ctx).Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all bookmarks: %w", convertErrorType(err))
	}
	return bookmarks, nil
}

// GetByID возвращает закладку либо nil, если записи нет.
func (b *BookmarkRepo) GetByID(ctx context.Context, id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := b.db.WithContext(ctx).Where("id = ?", id).Take(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("failed to get bookmark by id %d: %w", id, convertErrorType(err))
	}
	return &bookmark, nil
}

// Create вставляет запись и возвращает ее вместе с назначенным идентификатором.
func (b *BookmarkRepo) Create(ctx context.Context, arg repositories.CreateBookmarkArg) (*models.Bookmark, error) {
	bookmark := models.Bookmark{
		Title:       arg.Title,
		URL:         arg.URL,
		Description: arg.Description,
		Rating:      arg.Rating,
	}
	if err := b.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		b.logger.Error("failed to create bookmark", zap.Error(err), zap.Any("bookmark", arg))
		return nil, fmt.Errorf("failed to create bookmark: %w", convertErrorType(err))
	}
	return &bookmark, nil
}

// DeleteByID удаляет запись и возвращает число затронутых строк.
func (b *BookmarkRepo) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := b.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Bookmark{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete bookmark %d: %w", id, convertErrorType(res.Error))
	}
	return res.RowsAffected, nil
}

// UpdateByID обновляет только заданные поля и возвращает число затронутых строк.
func (b *BookmarkRepo) UpdateByID(ctx context.Context, id uint, arg repositories.UpdateBookmarkArg) (int64, error) {
	columns := arg.Columns()
	if len(columns) == 0 {
		return 0, nil
	}
	res := b.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("id = ?", id).
		Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update bookmark %d: %w", id, convertErrorType(res.Error))
	}
	return res.RowsAffected, nil
}

// Ping проверяет соединение с базой данных.
func (b *BookmarkRepo) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
