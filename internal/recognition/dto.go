package recognition

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const msgEmployeeMessageRequired = "Employee and message are required."

type Input struct {
	EmployeeID int64
	FromPerson string
	Badge      string
	Message    string
}

func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		EmployeeID: p.RequiredID("employee_id", msgEmployeeMessageRequired),
		FromPerson: p.String("from_person"),
		Badge:      p.String("badge"),
		Message:    p.Required("message", msgEmployeeMessageRequired),
	}
	return in, p.Errors()
}

func Apply(in Input, r *Recognition) {
	r.EmployeeID = in.EmployeeID
	r.FromPerson = in.FromPerson
	r.Badge = in.Badge
	r.Message = in.Message
}

func Values(r *Recognition) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&r.EmployeeID),
		"from_person", r.FromPerson,
		"badge", r.Badge,
		"message", r.Message,
	)
}
