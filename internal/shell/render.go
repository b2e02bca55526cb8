package shell

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/maxaizer/jobsearch/internal/controller"
	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/maxaizer/jobsearch/internal/metrics"
	"github.com/maxaizer/jobsearch/internal/views"
	"github.com/samber/lo"
)

func (s *Shell) render(tw table.Writer) {
	tw.SetStyle(table.StyleLight)
	s.println(tw.Render())
}

func (s *Shell) printHelp() {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Command", "Description"})
	tw.AppendRows(lo.Map(commandsHelp, func(help [2]string, _ int) table.Row {
		return table.Row{help[0], help[1]}
	}))
	s.render(tw)
}

func (s *Shell) printCompanies() {
	companies := s.controller.Lists().Companies
	if len(companies) == 0 {
		s.println("No companies yet.")
		return
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Company"})
	tw.AppendRows(lo.Map(companies, func(company models.Company, _ int) table.Row {
		return table.Row{company.CompanyID, company.Name}
	}))
	s.render(tw)
}

func (s *Shell) printStatuses() {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Status"})
	tw.AppendRows(lo.Map(s.controller.Lists().Statuses, func(status views.LookupItem, _ int) table.Row {
		return table.Row{status.ID, status.Name}
	}))
	s.render(tw)
}

func (s *Shell) printRoles() {
	roles := s.controller.Lists().Roles
	if len(roles) == 0 {
		s.println("No roles yet.")
		return
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Role", "Company", "Status", "Notes", "Created", "Modified"})
	tw.AppendRows(lo.Map(roles, func(role views.RoleView, _ int) table.Row {
		return table.Row{role.RoleID, role.RoleName, role.CompanyName, role.StatusName, role.Notes, role.Created, role.Modified}
	}))
	s.render(tw)
}

func (s *Shell) printForm() {
	form := s.controller.Form()

	mode := "add"
	if form.State == controller.RoleSelected {
		mode = fmt.Sprintf("edit role %d", form.SelectedRoleID)
	}

	company, _ := s.controller.SelectedCompany()
	status, _ := s.controller.SelectedStatus()

	roleName := form.RoleName
	if form.RoleNameReadOnly {
		roleName += " (read-only)"
	}

	tw := table.NewWriter()
	tw.AppendRows([]table.Row{
		{"Mode", mode},
		{"Company", orNone(company.Name)},
		{"Status", orNone(status.Name)},
		{"Role", roleName},
		{"Notes", form.Notes},
		{"New company", form.CompanyName},
		{"Tab", form.ActiveTab},
		{"Add role", enabled(form.AddEnabled)},
		{"Update role", enabled(form.UpdateEnabled)},
	})
	s.render(tw)
}

func (s *Shell) printStats() error {
	samples, err := metrics.Snapshot()
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Metric", "Labels", "Value"})
	tw.AppendRows(lo.Map(samples, func(sample metrics.Sample, _ int) table.Row {
		return table.Row{sample.Name, sample.Labels, sample.Value}
	}))
	s.render(tw)
	return nil
}

func orNone(value string) string {
	return lo.Ternary(value == "", "(none)", value)
}

func enabled(value bool) string {
	return lo.Ternary(value, "enabled", "disabled")
}
