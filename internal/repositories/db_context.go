package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB          *gorm.DB
	statusCache *gocache.Cache
	clock       func() time.Time
}

func NewDbContext(path string) (*DbContext, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dataSourceName(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{
		DB:          db,
		statusCache: gocache.New(gocache.NoExpiration, 0),
		clock:       time.Now,
	}, nil
}

// foreign keys are a per-connection setting in SQLite, so they go into the DSN
func dataSourceName(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// WithClock replaces the time source used for role timestamps.
func (c *DbContext) WithClock(clock func() time.Time) *DbContext {
	c.clock = clock
	return c
}

// Scope runs fn with repositories bound to a single pooled connection.
// The connection is released before Scope returns.
func (c *DbContext) Scope(ctx context.Context, fn func(repos Repositories) error) error {
	return c.DB.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(c.repositories(conn))
	})
}

func (c *DbContext) repositories(db *gorm.DB) Repositories {
	return Repositories{
		Companies: NewCompaniesRepository(db),
		Statuses:  NewCachedStatuses(NewStatusesRepository(db), c.statusCache),
		Roles:     NewRolesRepository(db).WithClock(c.clock),
	}
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
