package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/repositories/memstore"
	"github.com/fsdevblog/bookmarks/internal/repositories/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQL      ServiceType = "sql"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	BookmarkService *BookmarkService
	PingService     *PingService
}

// Factory собирает сервисный слой поверх подключения, созданного db.NewConnectionFactory.
func Factory(conn any, sType ServiceType, logger *zap.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQL:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store, logger), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *zap.Logger) *Services {
	bookmarkRepo := sql.NewBookmarkRepo(conn, logger)
	return &Services{
		BookmarkService: NewBookmarkService(bookmarkRepo, logger),
		PingService:     NewPingService(bookmarkRepo),
	}
}

func getInMemoryServices(store *db.MemoryStorage, logger *zap.Logger) *Services {
	bookmarkRepo := memstore.NewBookmarkRepo(store)
	return &Services{
		BookmarkService: NewBookmarkService(bookmarkRepo, logger),
		PingService:     NewPingService(bookmarkRepo),
	}
}
