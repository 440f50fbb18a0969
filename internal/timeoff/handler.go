package timeoff

import (
	"strconv"

	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/go-chi/chi"
)

type Handler struct {
	*crud.Resource[Request, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Request], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Request, Input]{
		Singular: "Request",
		Title:    "Time off",
		Path:     "/time-off",
		List: record.ListOptions{
			Order:   []string{"created_at DESC", "id DESC"},
			Preload: []string{"Employee"},
		},
		Messages: crud.Messages{
			Created: "Request submitted.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "start_date", Label: "Start date", Type: crud.Date, Required: true},
			{Name: "end_date", Label: "End date", Type: crud.Date, Required: true},
			{Name: "category", Label: "Category", Type: crud.Select, Required: true, Choices: crud.Strings(Categories)},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
			{Name: "note", Label: "Note", Type: crud.TextArea},
		},
		Columns: []crud.Column[Request]{
			{Header: "Employee", Value: func(r *Request) string { return employee.NameOf(r.Employee) }},
			{Header: "Category", Value: func(r *Request) string { return string(r.Category) }},
			{Header: "From", Value: func(r *Request) string { return r.StartDate.String() }},
			{Header: "To", Value: func(r *Request) string { return r.EndDate.String() }},
			{Header: "Days", Value: func(r *Request) string { return strconv.Itoa(r.Days()) }},
			{Header: "Note", Value: func(r *Request) string { return r.Note }},
		},
		Defaults:  form.Values("category", string(CategoryPTO), "status", string(StatusPending)),
		Parse:     ParseInput,
		Apply:     Apply,
		Values:    Values,
		Statuses:  crud.Strings(Statuses),
		Status:    func(r *Request) string { return string(r.Status) },
		SetStatus: func(r *Request, s string) { r.Status = Status(s) },
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
