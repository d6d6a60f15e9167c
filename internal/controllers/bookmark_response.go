package controllers

import (
	"html"

	"github.com/fsdevblog/bookmarks/internal/models"
)

// BookmarkResponse закладка в том виде, в котором она уходит клиенту.
type BookmarkResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// serializeBookmark экранирует HTML в текстовых полях, включая url.
func serializeBookmark(b models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		Title:       html.EscapeString(b.Title),
		URL:         html.EscapeString(b.URL),
		Description: html.EscapeString(b.Description),
		Rating:      b.Rating,
	}
}

func serializeBookmarks(bookmarks []models.Bookmark) []BookmarkResponse {
	result := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		result = append(result, serializeBookmark(b))
	}
	return result
}
