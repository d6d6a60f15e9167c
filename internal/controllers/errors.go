package controllers

import (
	"github.com/gin-gonic/gin"
)

// Тексты ошибок, отдаваемые клиенту.
const (
	MsgBookmarkNotFound  = "Bookmark doesn't exist"
	MsgInternal          = "Internal server error"
	MsgInvalidJSON       = "Invalid JSON in request body"
	MsgInvalidRating     = "Invalid 'rating' in request body"
	MsgNoUpdatableFields = "Request body must contain either 'title', 'url', 'description' or 'rating'"
	MsgRouteNotFound     = "Not found"
)

// ErrorResponse тело любого ответа с ошибкой: {"error":{"message":"..."}}.
type ErrorResponse struct {
	Error ErrorMessage `json:"error"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func missingFieldMessage(field string) string {
	return "Missing '" + field + "' in request body"
}

// abortWithError прерывает цепочку обработчиков и отдает тело ошибки.
func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorMessage{Message: message}})
}
