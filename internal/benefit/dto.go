package benefit

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const (
	msgInvalidDates         = "Invalid dates."
	msgEmployeeTypeRequired = "Employee and benefit type are required."
)

type Input struct {
	EmployeeID  int64
	BenefitType string
	Provider    string
	Coverage    string
	Status      Status
	StartDate   *datatype.Date
	EndDate     *datatype.Date
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		StartDate:   p.OptionalDate("start_date", msgInvalidDates),
		EndDate:     p.OptionalDate("end_date", msgInvalidDates),
		EmployeeID:  p.RequiredID("employee_id", msgEmployeeTypeRequired),
		BenefitType: p.Required("benefit_type", msgEmployeeTypeRequired),
		Provider:    p.String("provider"),
		Coverage:    p.String("coverage"),
		Status:      form.Choice(p, "status", StatusActive, Statuses, "Invalid status."),
	}
	if in.StartDate != nil && in.EndDate != nil {
		p.Check(!in.EndDate.Before(*in.StartDate), "end_date", "End date must be after start date.")
	}
	return in, p.Errors()
}

func Apply(in Input, e *Enrollment) {
	e.EmployeeID = in.EmployeeID
	e.BenefitType = in.BenefitType
	e.Provider = in.Provider
	e.Coverage = in.Coverage
	e.Status = in.Status
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
}

func Values(e *Enrollment) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&e.EmployeeID),
		"benefit_type", e.BenefitType,
		"provider", e.Provider,
		"coverage", e.Coverage,
		"status", string(e.Status),
		"start_date", datatype.FormatDate(e.StartDate),
		"end_date", datatype.FormatDate(e.EndDate),
	)
}
