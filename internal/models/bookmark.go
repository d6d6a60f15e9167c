package models

// BookmarksTable имя таблицы закладок.
const BookmarksTable = "bookmarks_items"

// Bookmark структура модели хранения закладки.
//
// Мягкого удаления нет: запись либо существует целиком, либо отсутствует.
type Bookmark struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null"`
	URL         string  `json:"url" gorm:"not null"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating" gorm:"not null"`
}

// TableName сообщает gorm имя таблицы.
func (Bookmark) TableName() string {
	return BookmarksTable
}
