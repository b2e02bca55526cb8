package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)}
}

func upDatabase(t *testing.T, clock *fakeClock) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "data", "jobsearch.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbCtx.Close() })

	if clock != nil {
		dbCtx.WithClock(clock.Now)
	}

	require.NoError(t, dbCtx.Migrate())
	return dbCtx
}

func withRepositories(t *testing.T, dbCtx *DbContext, fn func(repos Repositories)) {
	t.Helper()
	err := dbCtx.Scope(context.Background(), func(repos Repositories) error {
		fn(repos)
		return nil
	})
	require.NoError(t, err)
}
