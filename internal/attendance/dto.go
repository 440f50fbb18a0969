package attendance

import (
	"net/url"

	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
)

const msgInvalidWorkDate = "Invalid work date."

type Input struct {
	EmployeeID int64
	WorkDate   datatype.Date
	CheckIn    *datatype.Clock
	CheckOut   *datatype.Clock
	Status     Status
	Notes      string
}

// ParseInput reports the work date before the employee, so a submission
// missing both gets the date message first.
func ParseInput(v url.Values) (Input, form.Errors) {
	p := form.NewParser(v)
	in := Input{
		WorkDate:   p.RequiredDate("work_date", msgInvalidWorkDate, msgInvalidWorkDate),
		CheckIn:    p.OptionalClock("check_in", "Invalid check-in time."),
		CheckOut:   p.OptionalClock("check_out", "Invalid check-out time."),
		EmployeeID: p.RequiredID("employee_id", "Employee is required."),
		Status:     form.Choice(p, "status", StatusPresent, Statuses, "Invalid status."),
		Notes:      p.Text("notes"),
	}
	if in.CheckIn != nil && in.CheckOut != nil {
		p.Check(in.CheckOut.Minutes() >= in.CheckIn.Minutes(), "check_out", "Check-out must not be before check-in.")
	}
	return in, p.Errors()
}

func Apply(in Input, l *Log) {
	l.EmployeeID = in.EmployeeID
	l.WorkDate = in.WorkDate
	l.CheckIn = in.CheckIn
	l.CheckOut = in.CheckOut
	l.Status = in.Status
	l.Notes = in.Notes
}

func Values(l *Log) url.Values {
	return form.Values(
		"employee_id", form.FormatID(&l.EmployeeID),
		"work_date", l.WorkDate.String(),
		"check_in", datatype.FormatClock(l.CheckIn),
		"check_out", datatype.FormatClock(l.CheckOut),
		"status", string(l.Status),
		"notes", l.Notes,
	)
}
