package models

// DefaultStatuses is the canonical application pipeline in display order.
var DefaultStatuses = []string{
	"Applied",
	"Acknowledged",
	"Contacted",
	"Interviewing",
	"Offer",
	"Rejected",
	"Accepted",
}

type Status struct {
	StatusID int64  `gorm:"column:StatusID;primaryKey"`
	Name     string `gorm:"column:Name"`
	Ordinal  int    `gorm:"column:Ordinal;not null;default:0"`
}

func (Status) TableName() string {
	return "Statuses"
}

// NewDefaultStatuses returns the seed rows with 1-based ordinals.
func NewDefaultStatuses() []Status {
	statuses := make([]Status, 0, len(DefaultStatuses))
	for i, name := range DefaultStatuses {
		statuses = append(statuses, Status{Name: name, Ordinal: i + 1})
	}
	return statuses
}
