package project

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

type Input struct {
	Name        string
	Description string
	Status      Status
	StartDate   *datatype.Date
	EndDate     *datatype.Date
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		Name:        p.Required("name", "Project name is required."),
		Description: p.String("description"),
		Status:      form.Choice(p, "status", StatusPlanned, Statuses, "Invalid status."),
		StartDate:   p.OptionalDate("start_date", "Invalid start date."),
		EndDate:     p.OptionalDate("end_date", "Invalid end date."),
	}
	if in.StartDate != nil && in.EndDate != nil {
		p.Check(!in.EndDate.Before(*in.StartDate), "end_date", "End date must be after start date.")
	}
	return in, p.Errors()
}

func Apply(in Input, pr *Project) {
	pr.Name = in.Name
	pr.Description = in.Description
	pr.Status = in.Status
	pr.StartDate = in.StartDate
	pr.EndDate = in.EndDate
}

func Values(pr *Project) url.Values {
	return form.Values(
		"name", pr.Name,
		"description", pr.Description,
		"status", string(pr.Status),
		"start_date", datatype.FormatDate(pr.StartDate),
		"end_date", datatype.FormatDate(pr.EndDate),
	)
}

type AssignmentInput struct {
	ProjectID  int64
	EmployeeID int64
	Role       string
	Allocation *int
}

func ParseAssignment(v url.Values) (AssignmentInput, form.Errors) {
	p := form.NewParser(v)
	in := AssignmentInput{
		ProjectID:  p.RequiredID("project_id", "Project is required."),
		EmployeeID: p.RequiredID("employee_id", "Employee is required."),
		Role:       p.String("role"),
		Allocation: p.OptionalInt("allocation", "Allocation must be a whole number."),
	}
	if in.Allocation != nil {
		p.Check(*in.Allocation >= 0 && *in.Allocation <= 100, "allocation", "Allocation must be between 0 and 100.")
	}
	return in, p.Errors()
}

func ApplyAssignment(in AssignmentInput, a *Assignment) {
	a.ProjectID = in.ProjectID
	a.EmployeeID = in.EmployeeID
	a.Role = in.Role
	a.Allocation = in.Allocation
}

func AssignmentValues(a *Assignment) url.Values {
	return form.Values(
		"project_id", form.FormatID(&a.ProjectID),
		"employee_id", form.FormatID(&a.EmployeeID),
		"role", a.Role,
		"allocation", form.FormatInt(a.Allocation),
	)
}
