package repositories

import (
	"context"
	"slices"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

const statusesCacheKey = "statuses"

type statusRepository interface {
	List(ctx context.Context) ([]models.Status, error)
}

// CachedStatuses memoizes the status list; statuses never change after seeding.
type CachedStatuses struct {
	repo  statusRepository
	cache *gocache.Cache
}

func NewCachedStatuses(repo statusRepository, cache *gocache.Cache) *CachedStatuses {
	return &CachedStatuses{repo: repo, cache: cache}
}

func (c *CachedStatuses) List(ctx context.Context) ([]models.Status, error) {
	if value, found := c.cache.Get(statusesCacheKey); found {
		return slices.Clone(value.([]models.Status)), nil
	}

	statuses, err := c.repo.List(ctx)
	if err == nil && len(statuses) > 0 {
		c.cache.Set(statusesCacheKey, slices.Clone(statuses), gocache.NoExpiration)
	}

	return statuses, err
}
