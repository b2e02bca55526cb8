package repositories

import (
	"context"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCompanyNotFound = errors.New("company not found")

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) List(ctx context.Context) ([]models.Company, error) {

	var companies []models.Company
	if err := repo.db.WithContext(ctx).Order("Name").Find(&companies).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}
	return companies, nil
}

// Add inserts the company unless one with the same name exists and returns the stored row.
func (repo *Companies) Add(ctx context.Context, name string) (models.Company, error) {

	company := models.Company{Name: name}
	res := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "Name"}}, DoNothing: true}).
		Create(&company)
	if res.Error != nil {
		return models.Company{}, errors.Wrapf(res.Error, "failed to add company %q", name)
	}

	if res.RowsAffected == 1 && company.CompanyID != 0 {
		return company, nil
	}
	return repo.GetByName(ctx, name)
}

func (repo *Companies) GetByName(ctx context.Context, name string) (models.Company, error) {

	var company models.Company
	if err := repo.db.WithContext(ctx).First(&company, "Name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Company{}, ErrCompanyNotFound
		}
		return models.Company{}, errors.Wrapf(err, "failed to get company %q", name)
	}
	return company, nil
}

func (repo *Companies) Count(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Company{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count companies")
	}
	return count, nil
}
