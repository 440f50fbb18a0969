package attendance

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusRemote  Status = "remote"
	StatusLeave   Status = "leave"
	StatusAbsent  Status = "absent"
)

var Statuses = []Status{StatusPresent, StatusRemote, StatusLeave, StatusAbsent}

type Log struct {
	record.Model
	EmployeeID int64           `gorm:"column:employee_id;not null" json:"employee_id"`
	WorkDate   datatype.Date   `gorm:"column:work_date;type:date;not null" json:"work_date"`
	CheckIn    *datatype.Clock `gorm:"column:check_in;type:varchar(5)" json:"check_in"`
	CheckOut   *datatype.Clock `gorm:"column:check_out;type:varchar(5)" json:"check_out"`
	Status     Status          `gorm:"column:status;not null;default:present" json:"status"`
	Notes      string          `gorm:"column:notes" json:"notes"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Log) TableName() string {
	return "attendance_logs"
}

// Hours worked, or nil unless both check-in and check-out are recorded.
func (l *Log) Hours() *float64 {
	return datatype.Hours(l.CheckIn, l.CheckOut)
}

// OnDay restricts a listing to one work date.
func OnDay(d datatype.Date) record.Cond {
	return record.Where("work_date = ?", d)
}
