package payroll

import (
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/go-chi/chi"
)

type Handler struct {
	*crud.Resource[Entry, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Entry], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Entry, Input]{
		Singular: "Payroll entry",
		Title:    "Payroll",
		Path:     "/payroll",
		List: record.ListOptions{
			Order:   []string{"pay_date DESC", "id DESC"},
			Preload: []string{"Employee"},
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "period_start", Label: "Period start", Type: crud.Date, Required: true},
			{Name: "period_end", Label: "Period end", Type: crud.Date, Required: true},
			{Name: "pay_date", Label: "Pay date", Type: crud.Date, Required: true},
			{Name: "gross_pay", Label: "Gross pay", Type: crud.Number},
			{Name: "taxes", Label: "Taxes", Type: crud.Number},
			{Name: "bonus", Label: "Bonus", Type: crud.Number},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
			{Name: "notes", Label: "Notes", Type: crud.TextArea},
		},
		Columns: []crud.Column[Entry]{
			{Header: "Employee", Value: func(e *Entry) string { return employee.NameOf(e.Employee) }},
			{Header: "Period", Value: func(e *Entry) string { return e.PeriodStart.String() + " to " + e.PeriodEnd.String() }},
			{Header: "Pay date", Value: func(e *Entry) string { return e.PayDate.String() }},
			{Header: "Gross", Value: func(e *Entry) string { return e.GrossPay.StringFixed(2) }},
			{Header: "Taxes", Value: func(e *Entry) string { return e.Taxes.StringFixed(2) }},
			{Header: "Bonus", Value: func(e *Entry) string { return e.Bonus.StringFixed(2) }},
			{Header: "Net", Value: func(e *Entry) string { return e.NetPay().StringFixed(2) }},
		},
		Defaults:  form.Values("status", string(StatusScheduled)),
		Parse:     ParseInput,
		Apply:     Apply,
		Values:    Values,
		Statuses:  crud.Strings(Statuses),
		Status:    func(e *Entry) string { return string(e.Status) },
		SetStatus: func(e *Entry, s string) { e.Status = Status(s) },
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
