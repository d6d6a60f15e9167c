package db

import (
	"fmt"

	"github.com/fsdevblog/bookmarks/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite открывает локальную базу sqlite. Используется для разработки и тестов,
// поэтому таблица создается автоматически.
func NewSQLite(dbPath string) (*gorm.DB, error) {
	conn, connErr := connectSQLite(dbPath)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := MigrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

func connectSQLite(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}
	return db, nil
}

func MigrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Bookmark{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
