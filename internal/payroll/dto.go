package payroll

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidDates    = "Invalid dates."
	msgInvalidAmount   = "Invalid amount."
	msgPeriodEndBefore = "Period end must be after start."
)

type Input struct {
	EmployeeID  int64
	PeriodStart datatype.Date
	PeriodEnd   datatype.Date
	PayDate     datatype.Date
	GrossPay    decimal.Decimal
	Taxes       decimal.Decimal
	Bonus       decimal.Decimal
	Status      Status
	Notes       string
}

// ParseInput treats blank amounts as zero.
func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		EmployeeID:  p.RequiredID("employee_id", "Employee is required."),
		PeriodStart: p.RequiredDate("period_start", msgInvalidDates, msgInvalidDates),
		PeriodEnd:   p.RequiredDate("period_end", msgInvalidDates, msgInvalidDates),
		PayDate:     p.RequiredDate("pay_date", msgInvalidDates, msgInvalidDates),
		GrossPay:    p.Decimal("gross_pay", decimal.Zero, msgInvalidAmount),
		Taxes:       p.Decimal("taxes", decimal.Zero, msgInvalidAmount),
		Bonus:       p.Decimal("bonus", decimal.Zero, msgInvalidAmount),
		Status:      form.Choice(p, "status", StatusScheduled, Statuses, "Invalid status."),
		Notes:       p.Text("notes"),
	}
	if p.Valid() {
		p.Check(!in.PeriodEnd.Before(in.PeriodStart), "period_end", msgPeriodEndBefore)
	}
	return in, p.Errors()
}

func Apply(in Input, e *Entry) {
	e.EmployeeID = in.EmployeeID
	e.PeriodStart = in.PeriodStart
	e.PeriodEnd = in.PeriodEnd
	e.PayDate = in.PayDate
	e.GrossPay = in.GrossPay.Round(2)
	e.Taxes = in.Taxes.Round(2)
	e.Bonus = in.Bonus.Round(2)
	e.Status = in.Status
	e.Notes = in.Notes
}

func Values(e *Entry) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&e.EmployeeID),
		"period_start", e.PeriodStart.String(),
		"period_end", e.PeriodEnd.String(),
		"pay_date", e.PayDate.String(),
		"gross_pay", e.GrossPay.StringFixed(2),
		"taxes", e.Taxes.StringFixed(2),
		"bonus", e.Bonus.StringFixed(2),
		"status", string(e.Status),
		"notes", e.Notes,
	)
}
