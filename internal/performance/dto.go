package performance

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const msgInvalidPeriod = "Invalid period dates."

type Input struct {
	EmployeeID  int64
	Reviewer    string
	PeriodStart datatype.Date
	PeriodEnd   datatype.Date
	Rating      string
	Summary     string
	Goals       string
	Status      Status
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		PeriodStart: p.RequiredDate("period_start", msgInvalidPeriod, msgInvalidPeriod),
		PeriodEnd:   p.RequiredDate("period_end", msgInvalidPeriod, msgInvalidPeriod),
		EmployeeID:  p.RequiredID("employee_id", "Employee is required."),
		Reviewer:    p.String("reviewer"),
		Rating:      p.String("rating"),
		Summary:     p.Text("summary"),
		Goals:       p.Text("goals"),
		Status:      form.Choice(p, "status", StatusDraft, Statuses, "Invalid status."),
	}
	if !in.PeriodStart.IsZero() && !in.PeriodEnd.IsZero() {
		p.Check(!in.PeriodEnd.Before(in.PeriodStart), "period_end", "Period end must be after start.")
	}
	return in, p.Errors()
}

func Apply(in Input, r *Review) {
	r.EmployeeID = in.EmployeeID
	r.Reviewer = in.Reviewer
	r.PeriodStart = in.PeriodStart
	r.PeriodEnd = in.PeriodEnd
	r.Rating = in.Rating
	r.Summary = in.Summary
	r.Goals = in.Goals
	r.Status = in.Status
}

func Values(r *Review) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&r.EmployeeID),
		"reviewer", r.Reviewer,
		"period_start", r.PeriodStart.String(),
		"period_end", r.PeriodEnd.String(),
		"rating", r.Rating,
		"summary", r.Summary,
		"goals", r.Goals,
		"status", string(r.Status),
	)
}
