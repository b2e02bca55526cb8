package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the stored form of CreatedUTC and ModifiedUTC.
const TimestampLayout = "2006-01-02T15:04:05Z"

// sqliteTimestampLayout is what datetime('now') column defaults produce.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

type Role struct {
	RoleID      int64  `gorm:"column:RoleID;primaryKey"`
	CompanyID   int64  `gorm:"column:CompanyID"`
	StatusID    int64  `gorm:"column:StatusID"`
	RoleName    string `gorm:"column:RoleName"`
	Notes       string `gorm:"column:Notes"`
	CreatedUTC  string `gorm:"column:CreatedUTC"`
	ModifiedUTC string `gorm:"column:ModifiedUTC"`
}

func (Role) TableName() string {
	return "Roles"
}

// RoleRow is a role joined with its company and status names.
type RoleRow struct {
	RoleID      int64  `gorm:"column:RoleID"`
	RoleName    string `gorm:"column:RoleName"`
	CompanyName string `gorm:"column:CompanyName"`
	StatusName  string `gorm:"column:StatusName"`
	Notes       string `gorm:"column:Notes"`
	CreatedUTC  string `gorm:"column:CreatedUTC"`
	ModifiedUTC string `gorm:"column:ModifiedUTC"`
}

func NewRole(companyID, statusID int64, roleName, notes string, now time.Time) Role {
	stamp := FormatTimestamp(now)
	return Role{
		CompanyID:   companyID,
		StatusID:    statusID,
		RoleName:    roleName,
		Notes:       notes,
		CreatedUTC:  stamp,
		ModifiedUTC: stamp,
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, time.RFC3339, sqliteTimestampLayout} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
