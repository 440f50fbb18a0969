package payroll

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPaid      Status = "paid"
	StatusVoid      Status = "void"
)

var Statuses = []Status{StatusScheduled, StatusPaid, StatusVoid}

// Entry is one pay run for one employee. Amounts are recorded as entered;
// no tax is computed.
type Entry struct {
	record.Model
	EmployeeID  int64           `gorm:"column:employee_id;not null" json:"employee_id"`
	PeriodStart datatype.Date   `gorm:"column:period_start;type:date;not null" json:"period_start"`
	PeriodEnd   datatype.Date   `gorm:"column:period_end;type:date;not null" json:"period_end"`
	PayDate     datatype.Date   `gorm:"column:pay_date;type:date;not null" json:"pay_date"`
	GrossPay    decimal.Decimal `gorm:"column:gross_pay;type:numeric(10,2);not null" json:"gross_pay"`
	Taxes       decimal.Decimal `gorm:"column:taxes;type:numeric(10,2);not null" json:"taxes"`
	Bonus       decimal.Decimal `gorm:"column:bonus;type:numeric(10,2);not null" json:"bonus"`
	Status      Status          `gorm:"column:status;not null;default:scheduled" json:"status"`
	Notes       string          `gorm:"column:notes" json:"notes"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Entry) TableName() string {
	return "payroll_entries"
}

// NetPay is gross minus taxes plus bonus.
func (e *Entry) NetPay() decimal.Decimal {
	return e.GrossPay.Sub(e.Taxes).Add(e.Bonus)
}
