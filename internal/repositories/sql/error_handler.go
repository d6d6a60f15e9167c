package sql

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bookmarks/internal/repositories"
	"gorm.io/gorm"
)

func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", repositories.ErrDuplicateKey, err)
	default:
		return fmt.Errorf("%w: %w", repositories.ErrUnknown, err)
	}
}
