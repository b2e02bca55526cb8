package models

type Company struct {
	CompanyID int64  `gorm:"column:CompanyID;primaryKey"`
	Name      string `gorm:"column:Name"`
}

func (Company) TableName() string {
	return "Companies"
}
