package controllers

import (
	"strconv"
)

// parseID разбирает идентификатор из пути. Идентификаторы положительные целые.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
