package controllers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// BookmarksAPISuite прогоняет http сценарии поверх настоящего сервисного слоя.
type BookmarksAPISuite struct {
	suite.Suite
	storageType db.StorageType
	conn        any
	router      *gin.Engine
}

func TestBookmarksAPIInMemory(t *testing.T) {
	suite.Run(t, &BookmarksAPISuite{storageType: db.StorageTypeInMemory})
}

func TestBookmarksAPISQLite(t *testing.T) {
	suite.Run(t, &BookmarksAPISuite{storageType: db.StorageTypeSQLite})
}

func (s *BookmarksAPISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	sqlitePath := filepath.Join(s.T().TempDir(), "bookmarks.sqlite")
	conn, err := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  s.storageType,
		SqliteDBPath: &sqlitePath,
	})
	s.Require().NoError(err)
	s.conn = conn

	sType := services.ServiceTypeSQL
	if s.storageType == db.StorageTypeInMemory {
		sType = services.ServiceTypeInMemory
	}
	svc, err := services.Factory(conn, sType, zap.NewNop())
	s.Require().NoError(err)

	s.router = SetupRouter(RouterParams{
		BookmarkService: svc.BookmarkService,
		PingService:     svc.PingService,
		AppConf:         config.Config{},
		Logger:          zap.NewNop(),
	})

	for i := 1; i <= 4; i++ {
		res, _ := s.request(http.MethodPost, "/bookmarks",
			`{"title":"Test `+strconv.Itoa(i)+`","url":"http://www.test`+strconv.Itoa(i)+`.com",`+
				`"description":"Test `+strconv.Itoa(i)+` description","rating":`+strconv.Itoa(i)+`}`)
		s.Require().Equal(http.StatusCreated, res.StatusCode)
	}
}

func (s *BookmarksAPISuite) TearDownTest() {
	s.Require().NoError(db.Close(s.conn))
}

func (s *BookmarksAPISuite) TestSeededScenario() {
	res, body := s.request(http.MethodGet, "/bookmarks/3", "")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.JSONEq(`{"id":3,"title":"Test 3","url":"http://www.test3.com","description":"Test 3 description","rating":3}`,
		string(body))

	res, _ = s.request(http.MethodDelete, "/bookmarks/2", "")
	s.Equal(http.StatusNoContent, res.StatusCode)

	list := s.list()
	s.Len(list, 3)
	for _, b := range list {
		s.NotEqual(uint(2), b.ID)
	}

	res, _ = s.request(http.MethodDelete, "/bookmarks/2", "")
	s.Equal(http.StatusNotFound, res.StatusCode)
	res, _ = s.request(http.MethodGet, "/bookmarks/2", "")
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *BookmarksAPISuite) TestCreateThenGet() {
	title := gofakeit.Word()
	url := gofakeit.URL()
	description := gofakeit.Word()

	reqBody, err := json.Marshal(map[string]any{
		"title":       title,
		"url":         url,
		"description": description,
		"rating":      2,
	})
	s.Require().NoError(err)

	res, body := s.request(http.MethodPost, "/bookmarks", string(reqBody))
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var created BookmarkResponse
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Equal(uint(5), created.ID)
	s.Equal("/bookmarks/5", res.Header.Get("Location"))

	res, body = s.request(http.MethodGet, res.Header.Get("Location"), "")
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got BookmarkResponse
	s.Require().NoError(json.Unmarshal(body, &got))
	s.Equal(created, got)
	s.Len(s.list(), 5)
}

func (s *BookmarksAPISuite) TestInvalidCreateLeavesStoreUntouched() {
	res, _ := s.request(http.MethodPost, "/bookmarks", `{"title":"t","rating":1}`)
	s.Equal(http.StatusBadRequest, res.StatusCode)
	s.Len(s.list(), 4)
}

func (s *BookmarksAPISuite) TestPartialUpdate() {
	res, _ := s.request(http.MethodPatch, "/bookmarks/1",
		`{"title":"update article title","fieldToIgnore":"should not be in GET response"}`)
	s.Require().Equal(http.StatusNoContent, res.StatusCode)

	res, body := s.request(http.MethodGet, "/bookmarks/1", "")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.JSONEq(`{"id":1,"title":"update article title","url":"http://www.test1.com",`+
		`"description":"Test 1 description","rating":1}`, string(body))
}

func (s *BookmarksAPISuite) TestUpdateWithoutFieldsLeavesRecord() {
	res, _ := s.request(http.MethodPatch, "/bookmarks/1", `{"irrelevantField":"foo"}`)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	_, body := s.request(http.MethodGet, "/bookmarks/1", "")
	s.JSONEq(`{"id":1,"title":"Test 1","url":"http://www.test1.com","description":"Test 1 description","rating":1}`,
		string(body))
}

func (s *BookmarksAPISuite) TestStoredXSSIsEscaped() {
	res, body := s.request(http.MethodPost, "/bookmarks",
		`{"title":"<b>bold</b>","url":"http://x.com/?a=1&b=2","rating":1}`)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var created BookmarkResponse
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Equal("&lt;b&gt;bold&lt;/b&gt;", created.Title)
	s.Equal("http://x.com/?a=1&amp;b=2", created.URL)
}

func (s *BookmarksAPISuite) TestQuotesAreEscaped() {
	res, body := s.request(http.MethodPost, "/bookmarks",
		`{"title":"Bob's \"best\" links","url":"http://x.com","rating":1}`)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var created BookmarkResponse
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Equal("Bob&#39;s &#34;best&#34; links", created.Title)
}

func (s *BookmarksAPISuite) TestPing() {
	res, body := s.request(http.MethodGet, "/ping", "")
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("pong", string(body))
}

func (s *BookmarksAPISuite) list() []BookmarkResponse {
	res, body := s.request(http.MethodGet, "/bookmarks", "")
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var list []BookmarkResponse
	s.Require().NoError(json.Unmarshal(body, &list))
	return list
}

func (s *BookmarksAPISuite) request(method, url, body string) (*http.Response, []byte) {
	return doRequest(s.T(), s.router, method, url, body)
}
