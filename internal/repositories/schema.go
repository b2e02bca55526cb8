package repositories

import (
	"fmt"

	"github.com/maxaizer/jobsearch/internal/domain/models"
	"gorm.io/gorm/clause"
)

const createCompaniesTable = `
CREATE TABLE IF NOT EXISTS Companies
(
	CompanyID INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL UNIQUE
);`

const createRolesTable = `
CREATE TABLE IF NOT EXISTS Roles
(
	RoleID INTEGER PRIMARY KEY AUTOINCREMENT,
	CompanyID INTEGER NOT NULL,
	StatusID INTEGER NOT NULL,
	RoleName TEXT NOT NULL,
	Notes TEXT,
	CreatedUTC DATETIME NOT NULL DEFAULT (datetime('now')),
	ModifiedUTC DATETIME NOT NULL DEFAULT (datetime('now')),
	FOREIGN KEY (CompanyID) REFERENCES Companies(CompanyID),
	FOREIGN KEY (StatusID) REFERENCES Statuses(StatusID)
);`

const createStatusesTable = `
CREATE TABLE IF NOT EXISTS Statuses
(
	StatusID INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL UNIQUE,
	Ordinal INTEGER NOT NULL DEFAULT 0
);`

// Migrate creates missing tables and seeds the canonical statuses.
// It is safe to run on every start.
func (c *DbContext) Migrate() error {
	tables := []struct {
		name string
		ddl  string
	}{
		{"Companies", createCompaniesTable},
		{"Roles", createRolesTable},
		{"Statuses", createStatusesTable},
	}

	for _, table := range tables {
		if err := c.DB.Exec(table.ddl).Error; err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
	}

	// databases created before statuses were ordered lack the column
	migrator := c.DB.Migrator()
	if !migrator.HasColumn(&models.Status{}, "Ordinal") {
		if err := migrator.AddColumn(&models.Status{}, "Ordinal"); err != nil {
			return fmt.Errorf("failed to add Ordinal column to Statuses: %w", err)
		}
	}

	if err := c.SeedStatuses(); err != nil {
		return fmt.Errorf("failed to seed statuses: %w", err)
	}

	c.statusCache.Flush()
	return nil
}

// SeedStatuses inserts the canonical statuses that are missing by name and
// refreshes the ordinal of the ones already present.
func (c *DbContext) SeedStatuses() error {
	statuses := models.NewDefaultStatuses()
	return c.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "Name"}},
		DoUpdates: clause.AssignmentColumns([]string{"Ordinal"}),
	}).Create(&statuses).Error
}
