package onboarding

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
	*crud.Resource[Task, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Task], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Task, Input]{
		Singular: "Task",
		Title:    "Onboarding",
		Path:     "/onboarding",
		List:     ByDueDate,
		Messages: crud.Messages{
			Created: "Task saved.",
			Status:  "Task updated.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "title", Label: "Title", Required: true},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
			{Name: "due_date", Label: "Due date", Type: crud.Date},
			{Name: "notes", Label: "Notes", Type: crud.TextArea},
		},
		Columns: []crud.Column[Task]{
			{Header: "Employee", Value: func(t *Task) string { return employee.NameOf(t.Employee) }},
			{Header: "Task", Value: func(t *Task) string { return t.Title }},
			{Header: "Due", Value: func(t *Task) string { return datatype.FormatDate(t.DueDate) }},
			{Header: "Notes", Value: func(t *Task) string { return t.Notes }},
		},
		Defaults:  form.Values("status", string(StatusOpen)),
		Parse:     ParseInput,
		Apply:     Apply,
		Values:    Values,
		Statuses:  crud.Strings(Statuses),
		Status:    func(t *Task) string { return string(t.Status) },
		SetStatus: func(t *Task, s string) { t.Status = Status(s) },
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
