package middlewares

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipWriter обертка над gin.ResponseWriter для сжатия ответов в формате gzip.
// gzip.Writer создается при первой записи, поэтому ответы без тела (204) остаются пустыми.
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	if g.writer == nil {
		h := g.Header()
		h.Del("Content-Length")
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		g.writer = gzip.NewWriter(g.ResponseWriter)
	}
	return g.writer.Write(data) //nolint:wrapcheck
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) close() error {
	if g.writer == nil {
		return nil
	}
	return g.writer.Close() //nolint:wrapcheck
}

// MaxDecompressedBodySize предел распакованного тела запроса.
const MaxDecompressedBodySize = 1 << 20

const (
	MsgInvalidGzipBody = "Invalid gzip body"
	MsgBodyTooLarge    = "Request body too large"
)

// AbortFunc прерывает запрос телом ошибки в формате роутера.
type AbortFunc func(ctx *gin.Context, status int, message string)

// GzipMiddleware сжимает ответы, если клиент принимает gzip,
// и распаковывает сжатые тела POST, PUT, PATCH запросов.
// abort отвечает за тело ошибки при битом или слишком большом теле.
func GzipMiddleware(abort AbortFunc) gin.HandlerFunc {
	if abort == nil {
		abort = func(ctx *gin.Context, status int, _ string) { ctx.AbortWithStatus(status) }
	}
	return func(ctx *gin.Context) {
		if !readGzip(ctx, abort) {
			return
		}
		writeGzip(ctx)
	}
}

func writeGzip(ctx *gin.Context) {
	if !strings.Contains(ctx.Request.Header.Get("Accept-Encoding"), "gzip") {
		ctx.Next()
		return
	}

	gzWriter := &gzipWriter{ResponseWriter: ctx.Writer}
	ctx.Writer = gzWriter
	defer func() {
		if closeErr := gzWriter.close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip writer: %w", closeErr))
		}
	}()

	ctx.Next()
}

// readGzip подменяет сжатое тело запроса распакованным. Возвращает false, если запрос прерван.
func readGzip(ctx *gin.Context, abort AbortFunc) bool {
	if !slices.Contains([]string{http.MethodPost, http.MethodPut, http.MethodPatch}, ctx.Request.Method) {
		return true
	}
	if !strings.Contains(ctx.Request.Header.Get("Content-Encoding"), "gzip") {
		return true
	}

	gzReader, gzErr := gzip.NewReader(ctx.Request.Body)
	if gzErr != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", gzErr))
		abort(ctx, http.StatusBadRequest, MsgInvalidGzipBody)
		return false
	}
	defer func() {
		if closeErr := gzReader.Close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip reader: %w", closeErr))
		}
	}()

	bodyBytes, err := io.ReadAll(io.LimitReader(gzReader, MaxDecompressedBodySize+1))
	if err != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", err))
		abort(ctx, http.StatusBadRequest, MsgInvalidGzipBody)
		return false
	}
	if len(bodyBytes) > MaxDecompressedBodySize {
		_ = ctx.Error(fmt.Errorf("gzip body exceeds %d bytes", MaxDecompressedBodySize))
		abort(ctx, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return false
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	return true
}
