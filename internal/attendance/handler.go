package attendance

import (
	"fmt"
	"net/http"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

// ListOrder puts the latest day first and, within a day, early check-ins
// first with missing check-ins last.
var ListOrder = record.ListOptions{
	Order:   []string{"work_date DESC", "check_in IS NULL", "check_in ASC", "id ASC"},
	Preload: []string{"Employee"},
}

type Handler struct {
	*crud.Resource[Log, Input]
}

func NewHandler(base *transport.BaseHandler, svc *record.Service[Log], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{crud.NewResource(base, svc, crud.Kind[Log, Input]{
		Singular: "Attendance log",
		Title:    "Attendance",
		Path:     "/attendance",
		List:     ListOrder,
		Messages: crud.Messages{
			Created: "Attendance recorded.",
			Updated: "Attendance updated.",
			Deleted: "Attendance deleted.",
		},
		Fields: []crud.Field{
			{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
			{Name: "work_date", Label: "Work date", Type: crud.Date, Required: true},
			{Name: "check_in", Label: "Check in", Type: crud.Time},
			{Name: "check_out", Label: "Check out", Type: crud.Time},
			{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
			{Name: "notes", Label: "Notes", Type: crud.TextArea},
		},
		Columns: []crud.Column[Log]{
			{Header: "Date", Value: func(l *Log) string { return l.WorkDate.String() }},
			{Header: "Employee", Value: func(l *Log) string { return employee.NameOf(l.Employee) }},
			{Header: "In", Value: func(l *Log) string { return datatype.FormatClock(l.CheckIn) }},
			{Header: "Out", Value: func(l *Log) string { return datatype.FormatClock(l.CheckOut) }},
			{Header: "Hours", Value: func(l *Log) string {
				if h := l.Hours(); h != nil {
					return fmt.Sprintf("%.2f", *h)
				}
				return ""
			}},
			{Header: "Status", Value: func(l *Log) string { return string(l.Status) }},
		},
		Defaults: form.Values("status", string(StatusPresent)),
		Filter:   filterByDay,
		Parse:    ParseInput,
		Apply:    Apply,
		Values:   Values,
	})}
}

func (h *Handler) Mount(r chi.Router) {
	h.Resource.Mount(r)
}

// filterByDay applies ?date=YYYY-MM-DD. A value that does not parse is
// ignored and the full list is shown.
func filterByDay(r *http.Request, opts record.ListOptions) (record.ListOptions, *view.Filter) {
	f := &view.Filter{Name: "date", Label: "Day", Type: "date"}
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return opts, f
	}
	d, err := datatype.ParseDate(raw)
	if err != nil {
		return opts, f
	}
	f.Value = d.String()
	return opts.With(OnDay(d)), f
}
