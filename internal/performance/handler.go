package performance

import (
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/go-chi/chi"
)

type Handler struct {
	*crud.Resource[Review, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Review], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Review, Input]{
		Singular: "Review",
		Title:    "Performance reviews",
		Path:     "/performance",
		List: record.ListOptions{
			Order:   []string{"period_end DESC", "id DESC"},
			Preload: []string{"Employee"},
		},
		Messages: crud.Messages{
			Created: "Performance review saved.",
			Updated: "Performance review updated.",
			Deleted: "Review deleted.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "reviewer", Label: "Reviewer"},
			{Name: "period_start", Label: "Period start", Type: crud.Date, Required: true},
			{Name: "period_end", Label: "Period end", Type: crud.Date, Required: true},
			{Name: "rating", Label: "Rating"},
			{Name: "summary", Label: "Summary", Type: crud.TextArea},
			{Name: "goals", Label: "Goals", Type: crud.TextArea},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
		},
		Columns: []crud.Column[Review]{
			{Header: "Employee", Value: func(r *Review) string { return employee.NameOf(r.Employee) }},
			{Header: "Reviewer", Value: func(r *Review) string { return r.Reviewer }},
			{Header: "Period", Value: func(r *Review) string { return r.PeriodStart.String() + " to " + r.PeriodEnd.String() }},
			{Header: "Rating", Value: func(r *Review) string { return r.Rating }},
		},
		Defaults:  form.Values("status", string(StatusDraft)),
		Parse:     ParseInput,
		Apply:     Apply,
		Values:    Values,
		Statuses:  crud.Strings(Statuses),
		Status:    func(r *Review) string { return string(r.Status) },
		SetStatus: func(r *Review, s string) { r.Status = Status(s) },
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
