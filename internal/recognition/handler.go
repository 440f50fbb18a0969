package recognition

import (
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/go-chi/chi"
)

type Handler struct {
	*crud.Resource[Recognition, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Recognition], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Recognition, Input]{
		Singular: "Recognition",
		Title:    "Wellness & recognition",
		Path:     "/wellness",
		List:     Latest,
		Messages: crud.Messages{
			Created: "Recognition sent.",
			Deleted: "Recognition removed.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "from_person", Label: "From"},
			{Name: "badge", Label: "Badge"},
			{Name: "message", Label: "Message", Type: crud.TextArea, Required: true},
		},
		Columns: []crud.Column[Recognition]{
			{Header: "For", Value: func(r *Recognition) string { return employee.NameOf(r.Employee) }},
			{Header: "From", Value: func(r *Recognition) string { return r.FromPerson }},
			{Header: "Badge", Value: func(r *Recognition) string { return r.Badge }},
			{Header: "Message", Value: func(r *Recognition) string { return r.Message }},
		},
		Parse:  ParseInput,
		Apply:  Apply,
		Values: Values,
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}
