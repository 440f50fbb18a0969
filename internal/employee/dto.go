package employee

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const (
	msgEmployeeRequired = "First name, last name, email, and start date are required."
	msgInvalidStartDate = "Invalid start date format."
)

type Input struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	StartDate    datatype.Date
	Status       Status
	DepartmentID *int64
	RoleID       *int64
	ManagerID    *int64
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		FirstName:    p.Required("first_name", msgEmployeeRequired),
		LastName:     p.Required("last_name", msgEmployeeRequired),
		Email:        p.Email("email", msgEmployeeRequired),
		Phone:        p.String("phone"),
		StartDate:    p.RequiredDate("start_date", msgEmployeeRequired, msgInvalidStartDate),
		Status:       form.Choice(p, "status", StatusActive, Statuses, "Invalid status."),
		DepartmentID: p.OptionalID("department_id", "Invalid department."),
		RoleID:       p.OptionalID("role_id", "Invalid role."),
		ManagerID:    p.OptionalID("manager_id", "Invalid manager."),
	}
	return in, p.Errors()
}

func Apply(in Input, e *Employee) {
	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Email = in.Email
	e.Phone = in.Phone
	e.StartDate = in.StartDate
	e.Status = in.Status
	e.DepartmentID = in.DepartmentID
	e.RoleID = in.RoleID
	e.ManagerID = in.ManagerID
}

func Values(e *Employee) url.Values {
	return form.Values(
		"first_name", e.FirstName,
		"last_name", e.LastName,
		"email", e.Email,
		"phone", e.Phone,
		"start_date", e.StartDate.String(),
		"status", string(e.Status),
		"department_id", form.FormatID(e.DepartmentID),
		"role_id", form.FormatID(e.RoleID),
		"manager_id", form.FormatID(e.ManagerID),
	)
}

type DepartmentInput struct {
	Name     string
	Location string
}

func ParseDepartment(v url.Values) (DepartmentInput, form.Errors) {
	p := form.NewParser(v)
	in := DepartmentInput{
		Name:     p.Required("name", "Department name is required."),
		Location: p.String("location"),
	}
	return in, p.Errors()
}

func ApplyDepartment(in DepartmentInput, d *Department) {
	d.Name = in.Name
	d.Location = in.Location
}

func DepartmentValues(d *Department) url.Values {
	return form.Values("name", d.Name, "location", d.Location)
}

type RoleInput struct {
	Title string
	Level string
}

func ParseRole(v url.Values) (RoleInput, form.Errors) {
	p := form.NewParser(v)
	in := RoleInput{
		Title: p.Required("title", "Role title is required."),
		Level: p.String("level"),
	}
	return in, p.Errors()
}

func ApplyRole(in RoleInput, r *Role) {
	r.Title = in.Title
	r.Level = in.Level
}

func RoleValues(r *Role) url.Values {
	return form.Values("title", r.Title, "level", r.Level)
}
