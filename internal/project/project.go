package project

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusPlanned Status = "planned"
	StatusActive  Status = "active"
	StatusOnHold  Status = "on-hold"
	StatusDone    Status = "done"
)

var Statuses = []Status{StatusPlanned, StatusActive, StatusOnHold, StatusDone}

type Project struct {
	record.Model
	Name        string         `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"column:description" json:"description"`
	Status      Status         `gorm:"column:status;not null;default:planned" json:"status"`
	StartDate   *datatype.Date `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate     *datatype.Date `gorm:"column:end_date;type:date" json:"end_date"`

	Assignments []Assignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// Assignment places an employee on a project. Allocation is a percentage.
type Assignment struct {
	record.Model
	ProjectID  int64  `gorm:"column:project_id;not null" json:"project_id"`
	EmployeeID int64  `gorm:"column:employee_id;not null" json:"employee_id"`
	Role       string `gorm:"column:role" json:"role"`
	Allocation *int   `gorm:"column:allocation" json:"allocation"`

	Project  *Project           `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Assignment) TableName() string {
	return "project_assignments"
}
