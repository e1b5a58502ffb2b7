package usecase_test

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/repository/mocks"
	"movie-catalog/internal/omdb"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type repoMocks struct {
	User     *mocks.UserRepository
	Session  *mocks.SessionRepository
	Movie    *mocks.MovieRepository
	Review   *mocks.ReviewRepository
	Activity *mocks.ActivityRepository
}

func newRepo() (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		User:     new(mocks.UserRepository),
		Session:  new(mocks.SessionRepository),
		Movie:    new(mocks.MovieRepository),
		Review:   new(mocks.ReviewRepository),
		Activity: new(mocks.ActivityRepository),
	}
	// Activity recording is best effort and asserted separately where it matters
	m.Activity.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	return &repository.Repository{
		User:     m.User,
		Session:  m.Session,
		Movie:    m.Movie,
		Review:   m.Review,
		Activity: m.Activity,
	}, m
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
}

func newMovie(title string) *entity.Movie {
	return &entity.Movie{Base: entity.Base{ID: uuid.New()}, Title: title}
}

// fakeProvider is an in-memory metadata source.
type fakeProvider struct {
	configured bool
	titles     map[string]*omdb.Title
	results    []omdb.SearchResult
	err        error
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Search(_ context.Context, _ string) ([]omdb.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return nil, omdb.ErrNoResults
	}
	return f.results, nil
}

func (f *fakeProvider) Lookup(_ context.Context, imdbID string) (*omdb.Title, error) {
	if f.err != nil {
		return nil, f.err
	}
	title, ok := f.titles[imdbID]
	if !ok {
		return nil, omdb.ErrNoResults
	}
	return title, nil
}
