package onboarding

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusDone}

type Task struct {
	record.Model
	EmployeeID int64          `gorm:"column:employee_id;not null" json:"employee_id"`
	Title      string         `gorm:"column:title;not null" json:"title"`
	Status     Status         `gorm:"column:status;not null;default:open" json:"status"`
	DueDate    *datatype.Date `gorm:"column:due_date;type:date" json:"due_date"`
	Notes      string         `gorm:"column:notes" json:"notes"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Task) TableName() string {
	return "onboarding_tasks"
}

// ByDueDate lists tasks soonest first with undated ones last.
var ByDueDate = record.ListOptions{
	Order:   []string{"due_date IS NULL", "due_date ASC", "id ASC"},
	Preload: []string{"Employee"},
}
