package timeoff

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusDeclined}

type Category string

const (
	CategoryPTO      Category = "pto"
	CategorySick     Category = "sick"
	CategoryUnpaid   Category = "unpaid"
	CategoryPersonal Category = "personal"
)

var Categories = []Category{CategoryPTO, CategorySick, CategoryUnpaid, CategoryPersonal}

// Request is an absence covering StartDate through EndDate inclusive.
type Request struct {
	record.Model
	EmployeeID int64         `gorm:"column:employee_id;not null" json:"employee_id"`
	StartDate  datatype.Date `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate    datatype.Date `gorm:"column:end_date;type:date;not null" json:"end_date"`
	Category   Category      `gorm:"column:category;not null;default:pto" json:"category"`
	Status     Status        `gorm:"column:status;not null;default:pending" json:"status"`
	Note       string        `gorm:"column:note" json:"note"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Request) TableName() string {
	return "time_off_requests"
}

// Days is the inclusive length of the request.
func (r *Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate.Time).Hours()/24) + 1
}
