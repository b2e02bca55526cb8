package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatusRepository struct {
	mock.Mock
}

func (m *mockStatusRepository) List(ctx context.Context) ([]models.Status, error) {
	args := m.Called(ctx)
	statuses, _ := args.Get(0).([]models.Status)
	return statuses, args.Error(1)
}

func Test_Statuses_List_ShouldKeepCanonicalOrder(t *testing.T) {

	dbCtx := upDatabase(t, nil)

	withRepositories(t, dbCtx, func(repos Repositories) {
		statuses, err := repos.Statuses.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.DefaultStatuses, lo.Map(statuses, func(s models.Status, _ int) string { return s.Name }))
	})
}

func Test_CachedStatuses_ShouldQueryRepositoryOnce(t *testing.T) {

	repo := &mockStatusRepository{}
	repo.On("List", mock.Anything).Return(models.NewDefaultStatuses(), nil).Once()

	cached := NewCachedStatuses(repo, gocache.New(gocache.NoExpiration, 0))

	first, err := cached.List(context.Background())
	require.NoError(t, err)
	second, err := cached.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func Test_CachedStatuses_WhenRepositoryFails_ShouldNotCache(t *testing.T) {

	repo := &mockStatusRepository{}
	repo.On("List", mock.Anything).Return(nil, errors.New("disk I/O error")).Once()
	repo.On("List", mock.Anything).Return(models.NewDefaultStatuses(), nil).Once()

	cached := NewCachedStatuses(repo, gocache.New(gocache.NoExpiration, 0))

	_, err := cached.List(context.Background())
	assert.Error(t, err)

	statuses, err := cached.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, statuses, 7)
	repo.AssertExpectations(t)
}

func Test_CachedStatuses_ShouldReturnCopies(t *testing.T) {

	repo := &mockStatusRepository{}
	repo.On("List", mock.Anything).Return(models.NewDefaultStatuses(), nil).Once()

	cached := NewCachedStatuses(repo, gocache.New(gocache.NoExpiration, 0))

	first, err := cached.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := cached.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Applied", second[0].Name)
}
