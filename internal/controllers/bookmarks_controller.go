package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/gin-gonic/gin"
)

const bookmarkCtxKey = "bookmark"

// BookmarkController обработчики маршрутов /bookmarks.
type BookmarkController struct {
	store BookmarkStore
}

func NewBookmarkController(store BookmarkStore) *BookmarkController {
	return &BookmarkController{store: store}
}

// List обрабатывает GET /bookmarks.
func (c *BookmarkController) List(ctx *gin.Context) {
	bookmarks, err := c.store.List(ctx.Request.Context())
	if err != nil {
		c.internalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, serializeBookmarks(bookmarks))
}

// Create обрабатывает POST /bookmarks.
func (c *BookmarkController) Create(ctx *gin.Context) {
	req, ok := bindBookmarkRequest(ctx)
	if !ok {
		return
	}

	if field, missing := req.firstMissing(createRequiredFields); missing {
		abortWithError(ctx, http.StatusBadRequest, missingFieldMessage(field))
		return
	}

	bookmark, err := c.store.Create(ctx.Request.Context(), req.toCreateArg())
	if err != nil {
		c.internalError(ctx, err)
		return
	}

	ctx.Header("Location", path.Join(ctx.Request.URL.Path, strconv.FormatUint(uint64(bookmark.ID), 10)))
	ctx.JSON(http.StatusCreated, serializeBookmark(*bookmark))
}

// LoadBookmark проверка существования закладки, общая для GET, DELETE и PATCH /bookmarks/:id.
// Найденная закладка кладется в контекст, иначе цепочка прерывается с 404.
func (c *BookmarkController) LoadBookmark(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		abortWithError(ctx, http.StatusNotFound, MsgBookmarkNotFound)
		return
	}

	bookmark, err := c.store.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			abortWithError(ctx, http.StatusNotFound, MsgBookmarkNotFound)
			return
		}
		c.internalError(ctx, err)
		return
	}

	ctx.Set(bookmarkCtxKey, bookmark)
	ctx.Next()
}

// Get обрабатывает GET /bookmarks/:id.
func (c *BookmarkController) Get(ctx *gin.Context) {
	bookmark := loadedBookmark(ctx)
	ctx.JSON(http.StatusOK, serializeBookmark(*bookmark))
}

// Delete обрабатывает DELETE /bookmarks/:id.
func (c *BookmarkController) Delete(ctx *gin.Context) {
	bookmark := loadedBookmark(ctx)

	if err := c.store.Delete(ctx.Request.Context(), bookmark.ID); err != nil {
		c.storeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Update обрабатывает PATCH /bookmarks/:id.
func (c *BookmarkController) Update(ctx *gin.Context) {
	bookmark := loadedBookmark(ctx)

	req, ok := bindBookmarkRequest(ctx)
	if !ok {
		return
	}

	if !req.anyPresent(updatableFields) {
		abortWithError(ctx, http.StatusBadRequest, MsgNoUpdatableFields)
		return
	}

	if err := c.store.Update(ctx.Request.Context(), bookmark.ID, req.toUpdateArg()); err != nil {
		c.storeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// storeError закладка могла исчезнуть между проверкой существования и действием.
func (c *BookmarkController) storeError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrRecordNotFound) {
		abortWithError(ctx, http.StatusNotFound, MsgBookmarkNotFound)
		return
	}
	c.internalError(ctx, err)
}

// internalError детали ошибки уходят только в лог.
func (c *BookmarkController) internalError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	abortWithError(ctx, http.StatusInternalServerError, MsgInternal)
}

// bindBookmarkRequest разбирает JSON тело. Пустое тело равносильно пустому объекту.
func bindBookmarkRequest(ctx *gin.Context) (*BookmarkRequest, bool) {
	var req BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = ctx.Error(fmt.Errorf("bind bookmark request: %w", err))
		if errors.Is(err, errInvalidRating) {
			abortWithError(ctx, http.StatusBadRequest, MsgInvalidRating)
			return nil, false
		}
		abortWithError(ctx, http.StatusBadRequest, MsgInvalidJSON)
		return nil, false
	}
	return &req, true
}

func loadedBookmark(ctx *gin.Context) *models.Bookmark {
	return ctx.MustGet(bookmarkCtxKey).(*models.Bookmark) //nolint:errcheck,forcetypeassert
}
