package timeoff

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const (
	msgInvalidDates   = "Invalid dates."
	msgEndBeforeStart = "End date must be after start date."
)

type Input struct {
	EmployeeID int64
	StartDate  datatype.Date
	EndDate    datatype.Date
	Category   Category
	Status     Status
	Note       string
}

// ParseInput accepts a request ending on the day it starts.
func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		EmployeeID: p.RequiredID("employee_id", "Employee is required."),
		StartDate:  p.RequiredDate("start_date", msgInvalidDates, msgInvalidDates),
		EndDate:    p.RequiredDate("end_date", msgInvalidDates, msgInvalidDates),
		Category:   form.Choice(p, "category", CategoryPTO, Categories, "Invalid category."),
		Status:     form.Choice(p, "status", StatusPending, Statuses, "Invalid status."),
		Note:       p.Text("note"),
	}
	if p.Valid() {
		p.Check(!in.EndDate.Before(in.StartDate), "end_date", msgEndBeforeStart)
	}
	return in, p.Errors()
}

func Apply(in Input, r *Request) {
	r.EmployeeID = in.EmployeeID
	r.StartDate = in.StartDate
	r.EndDate = in.EndDate
	r.Category = in.Category
	r.Status = in.Status
	r.Note = in.Note
}

func Values(r *Request) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&r.EmployeeID),
		"start_date", r.StartDate.String(),
		"end_date", r.EndDate.String(),
		"category", string(r.Category),
		"status", string(r.Status),
		"note", r.Note,
	)
}
