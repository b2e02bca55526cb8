package views

import (
	"context"
	"time"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/maxaizer/jobsearch/internal/metrics"
	"github.com/samber/lo"
)

type companyLister interface {
	List(ctx context.Context) ([]models.Company, error)
}

type statusLister interface {
	List(ctx context.Context) ([]models.Status, error)
}

type roleLister interface {
	List(ctx context.Context) ([]models.RoleRow, error)
}

// Lists is the last projection of each list shown to the user.
type Lists struct {
	formatter     *DateTimeFormatter
	Companies     []models.Company
	CompanyLookup []LookupItem
	Statuses      []LookupItem
	Roles         []RoleView
}

func NewLists(formatter *DateTimeFormatter) *Lists {
	return &Lists{formatter: formatter}
}

func (l *Lists) ReloadAll(ctx context.Context, companies companyLister, statuses statusLister, roles roleLister) error {
	if err := l.ReloadCompanies(ctx, companies); err != nil {
		return err
	}
	if err := l.ReloadStatuses(ctx, statuses); err != nil {
		return err
	}
	return l.ReloadRoles(ctx, roles)
}

func (l *Lists) ReloadCompanies(ctx context.Context, repo companyLister) error {
	defer observeReload("companies", time.Now())

	rows, err := repo.List(ctx)
	if err != nil {
		return err
	}
	l.Companies, l.CompanyLookup = ProjectCompanies(rows)
	return nil
}

func (l *Lists) ReloadStatuses(ctx context.Context, repo statusLister) error {
	defer observeReload("statuses", time.Now())

	rows, err := repo.List(ctx)
	if err != nil {
		return err
	}
	l.Statuses = ProjectStatuses(rows)
	return nil
}

func (l *Lists) ReloadRoles(ctx context.Context, repo roleLister) error {
	defer observeReload("roles", time.Now())

	rows, err := repo.List(ctx)
	if err != nil {
		return err
	}
	l.Roles = ProjectRoles(rows, l.formatter)
	return nil
}

func (l *Lists) RoleByID(roleID int64) (RoleView, bool) {
	return lo.Find(l.Roles, func(role RoleView) bool {
		return role.RoleID == roleID
	})
}

func observeReload(list string, start time.Time) {
	metrics.ReloadDuration.WithLabelValues(list).Observe(time.Since(start).Seconds())
}
