package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanies []models.Company

func (f fakeCompanies) List(_ context.Context) ([]models.Company, error) {
	return f, nil
}

type fakeStatuses []models.Status

func (f fakeStatuses) List(_ context.Context) ([]models.Status, error) {
	return f, nil
}

type fakeRoles struct {
	rows []models.RoleRow
	err  error
}

func (f fakeRoles) List(_ context.Context) ([]models.RoleRow, error) {
	return f.rows, f.err
}

var roleRows = []models.RoleRow{
	{RoleID: 2, RoleName: "Engineer", CompanyName: "Acme", StatusName: "Interviewing",
		CreatedUTC: "2024-03-05T09:30:00Z", ModifiedUTC: "2024-03-07T16:00:00Z"},
	{RoleID: 1, RoleName: "Analyst", CompanyName: "Globex", StatusName: "Applied", Notes: "referral",
		CreatedUTC: "2024-03-01T08:00:00Z", ModifiedUTC: "2024-03-01T08:00:00Z"},
}

func Test_ProjectRoles_ShouldKeepStoredValues(t *testing.T) {

	projected := ProjectRoles(roleRows, NewDateTimeFormatter("en-US", time.UTC))

	require.Len(t, projected, 2)
	assert.Equal(t, roleRows[0], projected[0].RoleRow)
	assert.Equal(t, "3/5/2024 9:30 AM", projected[0].Created)
	assert.Equal(t, "3/7/2024 4:00 PM", projected[0].Modified)
	assert.Equal(t, "2024-03-05T09:30:00Z", roleRows[0].CreatedUTC)
	assert.Equal(t, "referral", projected[1].Notes)
}

func Test_ProjectCompanies_ShouldSortLookupOnly(t *testing.T) {

	rows := []models.Company{{CompanyID: 3, Name: "Umbrella"}, {CompanyID: 1, Name: "Acme"}, {CompanyID: 2, Name: "Globex"}}

	table, lookup := ProjectCompanies(rows)

	assert.Equal(t, rows, table)
	assert.Equal(t, []LookupItem{{1, "Acme"}, {2, "Globex"}, {3, "Umbrella"}}, lookup)

	table[0].Name = "changed"
	assert.Equal(t, "Umbrella", rows[0].Name)
}

func Test_ProjectStatuses_ShouldKeepCanonicalOrder(t *testing.T) {

	statuses := models.NewDefaultStatuses()
	for i := range statuses {
		statuses[i].StatusID = int64(i + 1)
	}

	lookup := ProjectStatuses(statuses)
	assert.Equal(t, models.DefaultStatuses, lo.Map(lookup, func(item LookupItem, _ int) string { return item.Name }))
}

func Test_IndexOf(t *testing.T) {

	items := []LookupItem{{1, "Acme"}, {2, "Globex"}}
	assert.Equal(t, 1, IndexOf(items, "Globex"))
	assert.Equal(t, -1, IndexOf(items, "globex"))
	assert.Equal(t, -1, IndexOf(nil, "Acme"))
}

func Test_Lists_ReloadAll(t *testing.T) {

	lists := NewLists(NewDateTimeFormatter("en-US", time.UTC))
	err := lists.ReloadAll(context.Background(),
		fakeCompanies{{CompanyID: 2, Name: "Globex"}, {CompanyID: 1, Name: "Acme"}},
		fakeStatuses{{StatusID: 1, Name: "Applied"}, {StatusID: 2, Name: "Acknowledged"}},
		fakeRoles{rows: roleRows})
	require.NoError(t, err)

	assert.Len(t, lists.Companies, 2)
	assert.Equal(t, "Acme", lists.CompanyLookup[0].Name)
	assert.Equal(t, []LookupItem{{1, "Applied"}, {2, "Acknowledged"}}, lists.Statuses)
	assert.Len(t, lists.Roles, 2)

	role, found := lists.RoleByID(1)
	assert.True(t, found)
	assert.Equal(t, "Analyst", role.RoleName)

	_, found = lists.RoleByID(99)
	assert.False(t, found)
}

func Test_Lists_WhenReloadFails_ShouldKeepPreviousProjection(t *testing.T) {

	lists := NewLists(NewDateTimeFormatter("en-US", time.UTC))
	require.NoError(t, lists.ReloadRoles(context.Background(), fakeRoles{rows: roleRows}))

	err := lists.ReloadRoles(context.Background(), fakeRoles{err: errors.New("database is locked")})
	assert.Error(t, err)
	assert.Len(t, lists.Roles, 2)
}
