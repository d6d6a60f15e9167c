package memory

import "errors"

var (
	ErrNotFound     = errors.New("memory storage: key not found")
	ErrDuplicateKey = errors.New("memory storage: key already exists")
)
