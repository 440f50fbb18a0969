package onboarding

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const msgEmployeeTitleRequired = "Employee and title are required."

type Input struct {
	EmployeeID int64
	Title      string
	Status     Status
	DueDate    *datatype.Date
	Notes      string
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		DueDate:    p.OptionalDate("due_date", "Invalid due date."),
		EmployeeID: p.RequiredID("employee_id", msgEmployeeTitleRequired),
		Title:      p.Required("title", msgEmployeeTitleRequired),
		Status:     form.Choice(p, "status", StatusOpen, Statuses, "Invalid status."),
		Notes:      p.Text("notes"),
	}
	return in, p.Errors()
}

func Apply(in Input, t *Task) {
	t.EmployeeID = in.EmployeeID
	t.Title = in.Title
	t.Status = in.Status
	t.DueDate = in.DueDate
	t.Notes = in.Notes
}

func Values(t *Task) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&t.EmployeeID),
		"title", t.Title,
		"status", string(t.Status),
		"due_date", datatype.FormatDate(t.DueDate),
		"notes", t.Notes,
	)
}
