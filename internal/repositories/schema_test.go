package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Migrate_WhenRunTwice_ShouldKeepSevenStatuses(t *testing.T) {

	dbCtx := upDatabase(t, nil)
	require.NoError(t, dbCtx.Migrate())

	var count int64
	require.NoError(t, dbCtx.DB.Model(&models.Status{}).Count(&count).Error)
	assert.Equal(t, int64(7), count)
}

func Test_Migrate_WhenReopened_ShouldKeepData(t *testing.T) {

	path := filepath.Join(t.TempDir(), "jobsearch.sqlite")

	first, err := NewDbContext(path)
	require.NoError(t, err)
	require.NoError(t, first.Migrate())
	_, err = NewCompaniesRepository(first.DB).Add(context.Background(), "Acme")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewDbContext(path)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Migrate())

	companies, err := NewCompaniesRepository(second.DB).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 1)

	var statuses int64
	require.NoError(t, second.DB.Model(&models.Status{}).Count(&statuses).Error)
	assert.Equal(t, int64(7), statuses)
}

func Test_Migrate_WhenStatusesTableHasNoOrdinal_ShouldBackfillCanonicalOrder(t *testing.T) {

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "jobsearch.sqlite"))
	require.NoError(t, err)
	defer dbCtx.Close()

	// layout written by earlier versions, with statuses inserted out of order
	require.NoError(t, dbCtx.DB.Exec(`CREATE TABLE Statuses
		(StatusID INTEGER PRIMARY KEY AUTOINCREMENT, Name TEXT NOT NULL UNIQUE)`).Error)
	require.NoError(t, dbCtx.DB.Exec(`INSERT INTO Statuses(Name) VALUES ('Offer'), ('Applied')`).Error)

	require.NoError(t, dbCtx.Migrate())

	statuses, err := NewStatusesRepository(dbCtx.DB).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStatuses, lo.Map(statuses, func(s models.Status, _ int) string { return s.Name }))
}

func Test_Roles_WhenForeignKeyIsMissing_ShouldFail(t *testing.T) {

	dbCtx := upDatabase(t, nil)

	_, err := NewRolesRepository(dbCtx.DB).Add(context.Background(), 999, 1, "Engineer", "")
	assert.Error(t, err)
}
