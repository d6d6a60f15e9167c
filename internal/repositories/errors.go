package repositories

import "errors"

// Ошибки слоя хранения закладок, не зависящие от бэкенда.
var (
	ErrNotFound     = errors.New("[bookmarks repository]: bookmark not found")
	ErrDuplicateKey = errors.New("[bookmarks repository]: bookmark already exists")
	ErrUnknown      = errors.New("[bookmarks repository]: storage error")
)
