package repositories

import (
	"context"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Statuses struct {
	db *gorm.DB
}

func NewStatusesRepository(db *gorm.DB) *Statuses {
	return &Statuses{db: db}
}

// List returns statuses in pipeline order, not alphabetically.
func (repo *Statuses) List(ctx context.Context) ([]models.Status, error) {

	var statuses []models.Status
	if err := repo.db.WithContext(ctx).Order("Ordinal, StatusID").Find(&statuses).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list statuses")
	}
	return statuses, nil
}
