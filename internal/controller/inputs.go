package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/jobsearch/internal/views"
)

var validate = validator.New()

type addRoleInput struct {
	CompanyID int64  `validate:"required"`
	StatusID  int64  `validate:"required"`
	RoleName  string `validate:"required"`
	Notes     string
}

type updateRoleInput struct {
	RoleID   int64 `validate:"required"`
	StatusID int64 `validate:"required"`
	Notes    string
}

type addCompanyInput struct {
	Name string `validate:"required"`
}

func (c *Controller) addRoleInput() addRoleInput {
	return addRoleInput{
		CompanyID: lookupID(c.lists.CompanyLookup, c.form.CompanyIndex),
		StatusID:  lookupID(c.lists.Statuses, c.form.StatusIndex),
		RoleName:  strings.TrimSpace(c.form.RoleName),
		Notes:     strings.TrimSpace(c.form.Notes),
	}
}

func (c *Controller) updateRoleInput() updateRoleInput {
	input := updateRoleInput{
		StatusID: lookupID(c.lists.Statuses, c.form.StatusIndex),
		Notes:    strings.TrimSpace(c.form.Notes),
	}
	if c.form.State == RoleSelected {
		input.RoleID = c.form.SelectedRoleID
	}
	return input
}

func (c *Controller) addCompanyInput() addCompanyInput {
	return addCompanyInput{Name: strings.TrimSpace(c.form.CompanyName)}
}

// lookupID returns 0 for indexes outside the list.
func lookupID(items []views.LookupItem, index int) int64 {
	if index < 0 || index >= len(items) {
		return 0
	}
	return items[index].ID
}
