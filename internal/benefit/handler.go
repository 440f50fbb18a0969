package benefit

import (
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/go-chi/chi"
)

type Handler struct {
	*crud.Resource[Enrollment, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Enrollment], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Enrollment, Input]{
		Singular: "Enrollment",
		Title:    "Benefits",
		Path:     "/benefits",
		List: record.ListOptions{
			Order:   []string{"start_date IS NULL", "start_date DESC", "id DESC"},
			Preload: []string{"Employee"},
		},
		Messages: crud.Messages{
			Created: "Benefit enrollment saved.",
			Updated: "Benefit enrollment updated.",
			Deleted: "Enrollment deleted.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "benefit_type", Label: "Benefit type", Required: true},
			{Name: "provider", Label: "Provider"},
			{Name: "coverage", Label: "Coverage"},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
			{Name: "start_date", Label: "Start date", Type: crud.Date},
			{Name: "end_date", Label: "End date", Type: crud.Date},
		},
		Columns: []crud.Column[Enrollment]{
			{Header: "Employee", Value: func(e *Enrollment) string { return employee.NameOf(e.Employee) }},
			{Header: "Benefit", Value: func(e *Enrollment) string { return e.BenefitType }},
			{Header: "Provider", Value: func(e *Enrollment) string { return e.Provider }},
			{Header: "Coverage", Value: func(e *Enrollment) string { return e.Coverage }},
			{Header: "Start", Value: func(e *Enrollment) string { return datatype.FormatDate(e.StartDate) }},
			{Header: "End", Value: func(e *Enrollment) string { return datatype.FormatDate(e.EndDate) }},
		},
		Defaults:  form.Values("status", string(StatusActive)),
		Parse:     ParseInput,
		Apply:     Apply,
		Values:    Values,
		Statuses:  crud.Strings(Statuses),
		Status:    func(e *Enrollment) string { return string(e.Status) },
		SetStatus: func(e *Enrollment, s string) { e.Status = Status(s) },
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
