package employee

import (
	"strings"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "on-leave"
	StatusInactive Status = "inactive"
)

var Statuses = []Status{StatusActive, StatusOnLeave, StatusInactive}

type Department struct {
	record.Model
	Name     string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Location string `gorm:"column:location" json:"location"`
}

func (Department) TableName() string {
	return "departments"
}

type Role struct {
	record.Model
	Title string `gorm:"column:title;uniqueIndex;not null" json:"title"`
	Level string `gorm:"column:level" json:"level"`
}

func (Role) TableName() string {
	return "roles"
}

// Employee is the hub record most other kinds reference. ManagerID points
// back into the same table and is not checked for cycles.
type Employee struct {
	record.Model
	FirstName    string        `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string        `gorm:"column:last_name;not null" json:"last_name"`
	Email        string        `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone        string        `gorm:"column:phone" json:"phone"`
	StartDate    datatype.Date `gorm:"column:start_date;type:date;not null" json:"start_date"`
	Status       Status        `gorm:"column:status;not null;default:active" json:"status"`
	DepartmentID *int64        `gorm:"column:department_id" json:"department_id"`
	RoleID       *int64        `gorm:"column:role_id" json:"role_id"`
	ManagerID    *int64        `gorm:"column:manager_id" json:"manager_id"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Manager    *Employee   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// NameOf renders an optional employee, empty when it was not loaded.
func NameOf(e *Employee) string {
	if e == nil {
		return ""
	}
	return e.FullName()
}
