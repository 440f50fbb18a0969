package benefit

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusEnded   Status = "ended"
)

var Statuses = []Status{StatusActive, StatusPending, StatusEnded}

type Enrollment struct {
	record.Model
	EmployeeID  int64          `gorm:"column:employee_id;not null" json:"employee_id"`
	BenefitType string         `gorm:"column:benefit_type;not null" json:"benefit_type"`
	Provider    string         `gorm:"column:provider" json:"provider"`
	Coverage    string         `gorm:"column:coverage" json:"coverage"`
	Status      Status         `gorm:"column:status;not null;default:active" json:"status"`
	StartDate   *datatype.Date `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate     *datatype.Date `gorm:"column:end_date;type:date" json:"end_date"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Enrollment) TableName() string {
	return "benefit_enrollments"
}
