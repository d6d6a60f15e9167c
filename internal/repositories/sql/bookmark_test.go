package sql

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BookmarkRepoSuite struct {
	suite.Suite
	conn *gorm.DB
	repo *BookmarkRepo
}

func TestBookmarkRepoSuite(t *testing.T) {
	suite.Run(t, new(BookmarkRepoSuite))
}

func (s *BookmarkRepoSuite) SetupTest() {
	conn, err := db.NewSQLite(filepath.Join(s.T().TempDir(), "bookmarks.sqlite"))
	s.Require().NoError(err)
	s.conn = conn
	s.repo = NewBookmarkRepo(conn, zap.NewNop())
}

func (s *BookmarkRepoSuite) TearDownTest() {
	s.Require().NoError(db.Close(s.conn))
}

func (s *BookmarkRepoSuite) seed(n int) []models.Bookmark {
	seeded := make([]models.Bookmark, 0, n)
	for range n {
		b, err := s.repo.Create(s.T().Context(), repositories.CreateBookmarkArg{
			Title:       gofakeit.Word(),
			URL:         gofakeit.URL(),
			Description: gofakeit.Word(),
			Rating:      5,
		})
		s.Require().NoError(err)
		seeded = append(seeded, *b)
	}
	return seeded
}

func (s *BookmarkRepoSuite) TestGetAll() {
	s.Run("empty table", func() {
		all, err := s.repo.GetAll(s.T().Context())
		s.Require().NoError(err)
		s.Empty(all)
	})

	seeded := s.seed(4)
	all, err := s.repo.GetAll(s.T().Context())
	s.Require().NoError(err)
	s.ElementsMatch(seeded, all)
}

func (s *BookmarkRepoSuite) TestCreateAssignsID() {
	seeded := s.seed(2)
	s.NotZero(seeded[0].ID)
	s.NotEqual(seeded[0].ID, seeded[1].ID)

	got, err := s.repo.GetByID(s.T().Context(), seeded[1].ID)
	s.Require().NoError(err)
	s.Equal(seeded[1], *got)
}

func (s *BookmarkRepoSuite) TestGetByIDAbsent() {
	got, err := s.repo.GetByID(s.T().Context(), 123456)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *BookmarkRepoSuite) TestDeleteByID() {
	seeded := s.seed(3)

	affected, err := s.repo.DeleteByID(s.T().Context(), seeded[1].ID)
	s.Require().NoError(err)
	s.EqualValues(1, affected)

	affected, err = s.repo.DeleteByID(s.T().Context(), seeded[1].ID)
	s.Require().NoError(err)
	s.EqualValues(0, affected)

	all, err := s.repo.GetAll(s.T().Context())
	s.Require().NoError(err)
	s.ElementsMatch([]models.Bookmark{seeded[0], seeded[2]}, all)
}

func (s *BookmarkRepoSuite) TestUpdateByIDPartial() {
	seeded := s.seed(2)
	newTitle := "updated title"

	affected, err := s.repo.UpdateByID(s.T().Context(), seeded[0].ID, repositories.UpdateBookmarkArg{Title: &newTitle})
	s.Require().NoError(err)
	s.EqualValues(1, affected)

	got, err := s.repo.GetByID(s.T().Context(), seeded[0].ID)
	s.Require().NoError(err)
	want := seeded[0]
	want.Title = newTitle
	s.Equal(want, *got)

	other, err := s.repo.GetByID(s.T().Context(), seeded[1].ID)
	s.Require().NoError(err)
	s.Equal(seeded[1], *other)
}

func (s *BookmarkRepoSuite) TestUpdateByIDMissingOrEmpty() {
	newTitle := "updated title"
	affected, err := s.repo.UpdateByID(s.T().Context(), 123456, repositories.UpdateBookmarkArg{Title: &newTitle})
	s.Require().NoError(err)
	s.EqualValues(0, affected)

	seeded := s.seed(1)
	affected, err = s.repo.UpdateByID(s.T().Context(), seeded[0].ID, repositories.UpdateBookmarkArg{})
	s.Require().NoError(err)
	s.EqualValues(0, affected)
}

func (s *BookmarkRepoSuite) TestStorageErrorPropagates() {
	s.Require().NoError(db.Close(s.conn))

	_, err := s.repo.GetAll(s.T().Context())
	s.Require().Error(err)
	s.True(errors.Is(err, repositories.ErrUnknown))

	s.Error(s.repo.Ping(s.T().Context()))

	// повторно открываем, чтобы TearDownTest отработал штатно.
	s.SetupTest()
}

func (s *BookmarkRepoSuite) TestPing() {
	s.NoError(s.repo.Ping(s.T().Context()))
}
