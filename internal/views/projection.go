package views

import (
	"slices"
	"strings"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/samber/lo"
)

// RoleView is a role row with timestamps rendered for display. The embedded
// row keeps the stored UTC values.
type RoleView struct {
	models.RoleRow
	Created  string
	Modified string
}

// LookupItem is an entry of a selection list.
type LookupItem struct {
	ID   int64
	Name string
}

func ProjectRoles(rows []models.RoleRow, formatter *DateTimeFormatter) []RoleView {
	return lo.Map(rows, func(row models.RoleRow, _ int) RoleView {
		return RoleView{
			RoleRow:  row,
			Created:  formatter.FormatStored(row.CreatedUTC),
			Modified: formatter.FormatStored(row.ModifiedUTC),
		}
	})
}

// ProjectCompanies returns the rows for tabular display and a name-sorted lookup list.
func ProjectCompanies(rows []models.Company) ([]models.Company, []LookupItem) {
	table := slices.Clone(rows)

	lookup := lo.Map(rows, func(company models.Company, _ int) LookupItem {
		return LookupItem{ID: company.CompanyID, Name: company.Name}
	})
	slices.SortStableFunc(lookup, func(a, b LookupItem) int {
		return strings.Compare(a.Name, b.Name)
	})

	return table, lookup
}

// ProjectStatuses keeps the order the statuses were listed in.
func ProjectStatuses(rows []models.Status) []LookupItem {
	return lo.Map(rows, func(status models.Status, _ int) LookupItem {
		return LookupItem{ID: status.StatusID, Name: status.Name}
	})
}

// IndexOf returns the position of name in items or -1.
func IndexOf(items []LookupItem, name string) int {
	_, index, _ := lo.FindIndexOf(items, func(item LookupItem) bool {
		return item.Name == name
	})
	return index
}
