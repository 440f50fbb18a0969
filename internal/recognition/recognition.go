// Package recognition records peer kudos shown on the wellness page.
package recognition

import (
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Recognition struct {
	record.Model
	EmployeeID int64  `gorm:"column:employee_id;not null" json:"employee_id"`
	FromPerson string `gorm:"column:from_person" json:"from_person"`
	Badge      string `gorm:"column:badge" json:"badge"`
	Message    string `gorm:"column:message;not null" json:"message"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Recognition) TableName() string {
	return "recognitions"
}

var Latest = record.ListOptions{
	Order:   []string{"created_at DESC", "id DESC"},
	Preload: []string{"Employee"},
}
