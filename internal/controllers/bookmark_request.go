package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/fsdevblog/bookmarks/internal/repositories"
)

var errInvalidRating = errors.New("invalid rating")

// Rating принимает как число, так и строку с числом.
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*r = Rating(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errInvalidRating
	}
	str = strings.TrimSpace(str)
	if str == "" {
		*r = 0
		return nil
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return errInvalidRating
	}
	*r = Rating(num)
	return nil
}

// BookmarkRequest тело POST и PATCH запросов. Незнакомые поля игнорируются.
type BookmarkRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Rating      *Rating `json:"rating"`
}

// fieldRule проверка наличия поля: поле считается заданным, если оно есть и не пустое (не "" и не 0).
type fieldRule struct {
	name    string
	present func(r *BookmarkRequest) bool
}

var (
	titleRule       = fieldRule{name: "title", present: func(r *BookmarkRequest) bool { return filled(r.Title) }}
	urlRule         = fieldRule{name: "url", present: func(r *BookmarkRequest) bool { return filled(r.URL) }}
	descriptionRule = fieldRule{name: "description", present: func(r *BookmarkRequest) bool { return filled(r.Description) }}
	ratingRule      = fieldRule{name: "rating", present: func(r *BookmarkRequest) bool { return r.Rating != nil && *r.Rating != 0 }}
)

// Порядок важен: в ошибке называется первое отсутствующее поле.
var (
	createRequiredFields = []fieldRule{titleRule, urlRule, ratingRule}
	updatableFields      = []fieldRule{titleRule, urlRule, descriptionRule, ratingRule}
)

func filled(s *string) bool {
	return s != nil && *s != ""
}

// firstMissing возвращает имя первого незаполненного поля.
func (r *BookmarkRequest) firstMissing(rules []fieldRule) (string, bool) {
	for _, rule := range rules {
		if !rule.present(r) {
			return rule.name, true
		}
	}
	return "", false
}

func (r *BookmarkRequest) anyPresent(rules []fieldRule) bool {
	for _, rule := range rules {
		if rule.present(r) {
			return true
		}
	}
	return false
}

// toCreateArg вызывается только после проверки createRequiredFields.
func (r *BookmarkRequest) toCreateArg() repositories.CreateBookmarkArg {
	arg := repositories.CreateBookmarkArg{
		Title:  *r.Title,
		URL:    *r.URL,
		Rating: float64(*r.Rating),
	}
	if r.Description != nil {
		arg.Description = *r.Description
	}
	return arg
}

// toUpdateArg переносит только заполненные поля, остальные остаются без изменений.
func (r *BookmarkRequest) toUpdateArg() repositories.UpdateBookmarkArg {
	var arg repositories.UpdateBookmarkArg
	if titleRule.present(r) {
		arg.Title = r.Title
	}
	if urlRule.present(r) {
		arg.URL = r.URL
	}
	if descriptionRule.present(r) {
		arg.Description = r.Description
	}
	if ratingRule.present(r) {
		rating := float64(*r.Rating)
		arg.Rating = &rating
	}
	return arg
}
