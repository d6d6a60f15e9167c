package repositories

// CreateBookmarkArg поля новой закладки. Идентификатор назначает хранилище.
type CreateBookmarkArg struct {
	Title       string
	URL         string
	Description string
	Rating      float64
}

// UpdateBookmarkArg частичное обновление закладки. nil означает "не менять".
type UpdateBookmarkArg struct {
	Title       *string
	URL         *string
	Description *string
	Rating      *float64
}

// Columns возвращает только заданные поля в виде колонка -> значение.
func (a UpdateBookmarkArg) Columns() map[string]any {
	columns := make(map[string]any, 4) //nolint:mnd
	if a.Title != nil {
		columns["title"] = *a.Title
	}
	if a.URL != nil {
		columns["url"] = *a.URL
	}
	if a.Description != nil {
		columns["description"] = *a.Description
	}
	if a.Rating != nil {
		columns["rating"] = *a.Rating
	}
	return columns
}

// IsEmpty true если ни одно поле не задано.
func (a UpdateBookmarkArg) IsEmpty() bool {
	return len(a.Columns()) == 0
}
