package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Close закрывает соединение, созданное NewConnectionFactory. Хранилище в памяти закрывать не нужно.
func Close(conn any) error {
	gormDB, ok := conn.(*gorm.DB)
	if !ok {
		return nil
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sql db: %w", err)
	}
	return nil
}
