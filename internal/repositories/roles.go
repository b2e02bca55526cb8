package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("role not found")

type Roles struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRolesRepository(db *gorm.DB) *Roles {
	return &Roles{db: db, now: time.Now}
}

func (repo *Roles) WithClock(now func() time.Time) *Roles {
	repo.now = now
	return repo
}

// List returns roles joined with company and status names, newest first.
func (repo *Roles) List(ctx context.Context) ([]models.RoleRow, error) {

	var rows []models.RoleRow
	err := repo.db.WithContext(ctx).
		Table("Roles r").
		Select("r.RoleID, r.RoleName, c.Name AS CompanyName, s.Name AS StatusName, " +
			"COALESCE(r.Notes, '') AS Notes, r.CreatedUTC, r.ModifiedUTC").
		Joins("JOIN Companies c ON r.CompanyID = c.CompanyID").
		Joins("JOIN Statuses s ON r.StatusID = s.StatusID").
		Order("r.CreatedUTC DESC, r.RoleID DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	for i := range rows {
		rows[i].CreatedUTC = normalizeTimestamp(rows[i].CreatedUTC)
		rows[i].ModifiedUTC = normalizeTimestamp(rows[i].ModifiedUTC)
	}
	return rows, nil
}

func (repo *Roles) Add(ctx context.Context, companyID, statusID int64, roleName, notes string) (models.Role, error) {

	role := models.NewRole(companyID, statusID, roleName, notes, repo.now())
	if err := repo.db.WithContext(ctx).Create(&role).Error; err != nil {
		return models.Role{}, errors.Wrapf(err, "failed to add role %q", roleName)
	}
	return role, nil
}

// Update always stores the notes; status and ModifiedUTC change only when the
// status differs from the stored one.
func (repo *Roles) Update(ctx context.Context, roleID, statusID int64, notes string) error {

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var role models.Role
		err := tx.Select("RoleID", "StatusID", "ModifiedUTC").First(&role, "RoleID = ?", roleID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return errors.Wrapf(err, "failed to get role %d", roleID)
		}

		changes := map[string]any{"Notes": notes}
		if role.StatusID != statusID {
			modified := models.FormatTimestamp(repo.now())
			if previous := normalizeTimestamp(role.ModifiedUTC); previous > modified {
				modified = previous
			}
			changes["StatusID"] = statusID
			changes["ModifiedUTC"] = modified
		}

		if err = tx.Model(&models.Role{}).Where("RoleID = ?", roleID).Updates(changes).Error; err != nil {
			return errors.Wrapf(err, "failed to update role %d", roleID)
		}
		return nil
	})
}

// normalizeTimestamp rewrites values the driver returned in another layout
// (e.g. column defaults) into the stored layout.
func normalizeTimestamp(value string) string {
	t, err := models.ParseTimestamp(value)
	if err != nil {
		return value
	}
	return models.FormatTimestamp(t)
}
