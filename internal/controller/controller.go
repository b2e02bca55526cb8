package controller

import (
	"context"
	"errors"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobsearch/internal/domain/events"
	"github.com/maxaizer/jobsearch/internal/metrics"
	"github.com/maxaizer/jobsearch/internal/repositories"
	"github.com/maxaizer/jobsearch/internal/views"
	log "github.com/sirupsen/logrus"
)

const (
	ActionAddRole    = "add-role"
	ActionUpdateRole = "update-role"
	ActionAddCompany = "add-company"
	ActionSelectRole = "select-role"
	ActionClear      = "clear-selection"
	ActionSetField   = "set-field"
)

type store interface {
	Scope(ctx context.Context, fn func(repos repositories.Repositories) error) error
}

// Controller owns the form state and runs every user action inside one storage scope.
type Controller struct {
	store store
	bus   EventBus.Bus
	lists *views.Lists
	form  Form
}

func NewController(store store, bus EventBus.Bus, lists *views.Lists) (*Controller, error) {

	if store == nil {
		return nil, errors.New("store is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if lists == nil {
		return nil, errors.New("lists are nil")
	}

	return &Controller{store: store, bus: bus, lists: lists, form: newForm()}, nil
}

// Load fills every list and resets the form.
func (c *Controller) Load(ctx context.Context) error {

	err := c.store.Scope(ctx, func(repos repositories.Repositories) error {
		return c.lists.ReloadAll(ctx, repos.Companies, repos.Statuses, repos.Roles)
	})
	if err != nil {
		return err
	}

	c.resetRoleFields()
	c.bus.Publish(events.CompaniesReloadedTopic, events.CompaniesReloaded{Count: len(c.lists.Companies)})
	c.bus.Publish(events.RolesReloadedTopic, events.RolesReloaded{Count: len(c.lists.Roles)})
	return nil
}

func (c *Controller) Form() Form {
	return c.form
}

func (c *Controller) Lists() *views.Lists {
	return c.lists
}

func (c *Controller) SelectedCompany() (views.LookupItem, bool) {
	return lookupItem(c.lists.CompanyLookup, c.form.CompanyIndex)
}

func (c *Controller) SelectedStatus() (views.LookupItem, bool) {
	return lookupItem(c.lists.Statuses, c.form.StatusIndex)
}

// SelectRole switches the form to edit mode for the listed role.
// An unknown ID clears the selection instead.
func (c *Controller) SelectRole(roleID int64) bool {

	role, found := c.lists.RoleByID(roleID)
	if !found {
		log.Debugf("role %d is not listed, clearing selection", roleID)
		c.ClearSelection()
		return false
	}

	c.populate(role)
	c.changed(ActionSelectRole)
	return true
}

func (c *Controller) ClearSelection() {
	c.resetRoleFields()
	c.changed(ActionClear)
}

// SetCompany selects a company by name, an empty name clears the selection.
func (c *Controller) SetCompany(name string) bool {
	if name == "" {
		c.form.CompanyIndex = noSelection
		c.changed(ActionSetField)
		return true
	}

	index := views.IndexOf(c.lists.CompanyLookup, name)
	if index == noSelection {
		c.reject(ActionSetField, "unknown company %q", name)
		return false
	}

	c.form.CompanyIndex = index
	c.changed(ActionSetField)
	return true
}

// SetStatus selects a status by name, an empty name clears the selection.
func (c *Controller) SetStatus(name string) bool {
	index := noSelection
	if name != "" {
		index = views.IndexOf(c.lists.Statuses, name)
		if index == noSelection {
			c.reject(ActionSetField, "unknown status %q", name)
			return false
		}
	}

	c.form.StatusIndex = index
	c.form.refreshFlags()
	c.changed(ActionSetField)
	return true
}

// SetRoleName is ignored while a role is selected.
func (c *Controller) SetRoleName(name string) bool {
	if c.form.RoleNameReadOnly {
		c.reject(ActionSetField, "role name is read-only while role %d is selected", c.form.SelectedRoleID)
		return false
	}

	c.form.RoleName = name
	c.changed(ActionSetField)
	return true
}

func (c *Controller) SetNotes(notes string) {
	c.form.Notes = notes
	c.changed(ActionSetField)
}

func (c *Controller) SetCompanyName(name string) {
	c.form.CompanyName = name
	c.changed(ActionSetField)
}

func (c *Controller) SetActiveTab(tab Tab) {
	c.form.ActiveTab = tab
	c.changed(ActionSetField)
}

// AddRole stores a new role from the form and returns to add mode.
// Incomplete input is declined without an error.
func (c *Controller) AddRole(ctx context.Context) error {

	input := c.addRoleInput()
	if err := validate.Struct(input); err != nil {
		c.reject(ActionAddRole, "add role declined: %v", err)
		return nil
	}

	err := c.store.Scope(ctx, func(repos repositories.Repositories) error {
		if _, err := repos.Roles.Add(ctx, input.CompanyID, input.StatusID, input.RoleName, input.Notes); err != nil {
			return err
		}
		return c.lists.ReloadRoles(ctx, repos.Roles)
	})
	if err != nil {
		c.fail(ActionAddRole)
		return err
	}

	c.resetRoleFields()
	c.succeed(ActionAddRole)
	c.bus.Publish(events.RolesReloadedTopic, events.RolesReloaded{Count: len(c.lists.Roles)})
	return nil
}

// UpdateRole stores the selected status and notes of the selected role and
// returns to add mode once the role list is reloaded.
func (c *Controller) UpdateRole(ctx context.Context) error {

	input := c.updateRoleInput()
	if err := validate.Struct(input); err != nil {
		c.reject(ActionUpdateRole, "update role declined: %v", err)
		return nil
	}

	err := c.store.Scope(ctx, func(repos repositories.Repositories) error {
		updateErr := repos.Roles.Update(ctx, input.RoleID, input.StatusID, input.Notes)
		if updateErr != nil && !errors.Is(updateErr, repositories.ErrRoleNotFound) {
			return updateErr
		}
		if err := c.lists.ReloadRoles(ctx, repos.Roles); err != nil {
			return err
		}
		return updateErr
	})

	switch {
	case errors.Is(err, repositories.ErrRoleNotFound):
		c.reject(ActionUpdateRole, "role %d no longer exists", input.RoleID)
	case err != nil:
		c.fail(ActionUpdateRole)
		return err
	default:
		c.succeed(ActionUpdateRole)
	}

	c.form.RoleName = ""
	c.form.Notes = ""
	c.bus.Publish(events.RolesReloadedTopic, events.RolesReloaded{Count: len(c.lists.Roles)})

	// the reloaded list has no selected row
	c.ClearSelection()
	return nil
}

// AddCompany stores the entered company unless it exists and selects it by name.
func (c *Controller) AddCompany(ctx context.Context) error {

	input := c.addCompanyInput()
	if err := validate.Struct(input); err != nil {
		c.reject(ActionAddCompany, "add company declined: %v", err)
		return nil
	}

	err := c.store.Scope(ctx, func(repos repositories.Repositories) error {
		if _, err := repos.Companies.Add(ctx, input.Name); err != nil {
			return err
		}
		return c.lists.ReloadCompanies(ctx, repos.Companies)
	})
	if err != nil {
		c.fail(ActionAddCompany)
		return err
	}

	c.form.CompanyName = ""
	c.form.ActiveTab = RolesTab
	c.form.CompanyIndex = views.IndexOf(c.lists.CompanyLookup, input.Name)
	c.succeed(ActionAddCompany)

	c.bus.Publish(events.CompaniesReloadedTopic,
		events.CompaniesReloaded{Count: len(c.lists.Companies), SelectedName: input.Name})
	return nil
}

func (c *Controller) populate(role views.RoleView) {
	c.form.State = RoleSelected
	c.form.SelectedRoleID = role.RoleID
	c.form.RoleName = role.RoleName
	c.form.Notes = role.Notes
	c.form.CompanyIndex = views.IndexOf(c.lists.CompanyLookup, role.CompanyName)
	c.form.StatusIndex = views.IndexOf(c.lists.Statuses, role.StatusName)
	c.form.refreshFlags()
}

func (c *Controller) resetRoleFields() {
	c.form.State = Idle
	c.form.SelectedRoleID = 0
	c.form.RoleName = ""
	c.form.Notes = ""
	c.form.CompanyIndex = noSelection
	c.form.StatusIndex = noSelection
	if len(c.lists.Statuses) > 0 {
		c.form.StatusIndex = 0
	}
	c.form.refreshFlags()
}

func (c *Controller) changed(action string) {
	c.bus.Publish(events.FormChangedTopic, events.FormChanged{Action: action})
}

func (c *Controller) succeed(action string) {
	metrics.ActionsCounter.WithLabelValues(action, metrics.OutcomeSuccess).Inc()
}

func (c *Controller) fail(action string) {
	metrics.ActionsCounter.WithLabelValues(action, metrics.OutcomeFailed).Inc()
}

func (c *Controller) reject(action string, format string, args ...any) {
	log.Debugf(format, args...)
	metrics.ActionsCounter.WithLabelValues(action, metrics.OutcomeRejected).Inc()
}

func lookupItem(items []views.LookupItem, index int) (views.LookupItem, bool) {
	if index < 0 || index >= len(items) {
		return views.LookupItem{}, false
	}
	return items[index], true
}
