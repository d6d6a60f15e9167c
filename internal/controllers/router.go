package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterParams struct {
	BookmarkService BookmarkStore
	PingService     ConnectionChecker
	AppConf         config.Config
	Logger          *zap.Logger
}

// SetupRouter собирает gin.Engine. Маршруты закладок монтируются под AppConf.RoutePrefix.
func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		_ = c.Error(fmt.Errorf("panic recovered: %v", rec))
		abortWithError(c, http.StatusInternalServerError, MsgInternal)
	}))
	r.Use(middlewares.GzipMiddleware(abortWithError))

	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, MsgRouteNotFound)
	})

	if params.PingService != nil {
		pingController := NewPingController(params.PingService)
		r.GET("/ping", pingController.Ping)
	}

	bookmarkController := NewBookmarkController(params.BookmarkService)

	api := r.Group(params.AppConf.RoutePrefix)
	api.GET("/bookmarks", bookmarkController.List)
	api.POST("/bookmarks", bookmarkController.Create)

	item := api.Group("/bookmarks/:id", bookmarkController.LoadBookmark)
	item.GET("", bookmarkController.Get)
	item.DELETE("", bookmarkController.Delete)
	item.PATCH("", bookmarkController.Update)

	return r
}
