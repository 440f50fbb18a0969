package performance

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusInReview  Status = "in-review"
	StatusSubmitted Status = "submitted"
)

var Statuses = []Status{StatusDraft, StatusInReview, StatusSubmitted}

type Review struct {
	record.Model
	EmployeeID  int64         `gorm:"column:employee_id;not null" json:"employee_id"`
	Reviewer    string        `gorm:"column:reviewer" json:"reviewer"`
	PeriodStart datatype.Date `gorm:"column:period_start;type:date;not null" json:"period_start"`
	PeriodEnd   datatype.Date `gorm:"column:period_end;type:date;not null" json:"period_end"`
	Rating      string        `gorm:"column:rating" json:"rating"`
	Summary     string        `gorm:"column:summary" json:"summary"`
	Goals       string        `gorm:"column:goals" json:"goals"`
	Status      Status        `gorm:"column:status;not null;default:draft" json:"status"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Review) TableName() string {
	return "performance_reviews"
}
