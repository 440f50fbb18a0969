// Package seed loads a small demo organisation. Running it twice leaves the
// data unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-portal/internal/attendance"
	"github.com/frahmantamala/hr-portal/internal/auth"
	"github.com/frahmantamala/hr-portal/internal/benefit"
	"github.com/frahmantamala/hr-portal/internal/communication"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/onboarding"
	"github.com/frahmantamala/hr-portal/internal/payroll"
	"github.com/frahmantamala/hr-portal/internal/performance"
	"github.com/frahmantamala/hr-portal/internal/project"
	"github.com/frahmantamala/hr-portal/internal/recognition"
	"github.com/frahmantamala/hr-portal/internal/timeoff"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	AdminEmail    = "admin@local"
	AdminName     = "Admin User"
	AdminPassword = "admin123"
)

// peopleTables are emptied by Clear, dependents first.
var peopleTables = []string{
	"attendance_logs",
	"recognitions",
	"benefit_enrollments",
	"onboarding_tasks",
	"performance_reviews",
	"channel_messages",
	"announcements",
	"project_assignments",
	"projects",
	"payroll_entries",
	"time_off_requests",
	"employees",
}

type Options struct {
	// Clear empties the people-related tables before seeding. Users,
	// departments and roles are kept.
	Clear bool
	// Now anchors the relative dates; defaults to time.Now.
	Now time.Time
	// HashPassword hashes the admin password.
	HashPassword func(string) (string, error)
}

type Seeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, logger: logger}
}

// Run seeds everything in one transaction.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.HashPassword == nil {
		return errors.New("seed: HashPassword is required")
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Clear {
			for _, table := range peopleTables {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("clear %s: %w", table, err)
				}
			}
			s.logger.Info("seed: cleared people records", "tables", len(peopleTables))
		}

		b := &builder{tx: tx, today: datatype.DateOf(opts.Now)}
		b.admin(opts.HashPassword)
		b.organisation()
		b.projects()
		b.records()
		if b.err != nil {
			return b.err
		}
		s.logger.Info("seed: done", "created", b.created)
		return nil
	})
}

// builder keeps the first error; later steps become no-ops.
type builder struct {
	tx      *gorm.DB
	today   datatype.Date
	err     error
	created int

	departments map[string]*employee.Department
	roles       map[string]*employee.Role
	staff       map[string]*employee.Employee
	projectsBy  map[string]*project.Project
}

// ensure loads the row matching query into rec, creating rec when none
// exists.
func ensure[T any](b *builder, rec *T, query string, args ...any) {
	if b.err != nil {
		return
	}
	var existing T
	err := b.tx.Where(query, args...).Take(&existing).Error
	switch {
	case err == nil:
		*rec = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := b.tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			b.err = fmt.Errorf("seed %T: %w", rec, err)
			return
		}
		b.created++
	default:
		b.err = fmt.Errorf("look up %T: %w", rec, err)
	}
}

func (b *builder) day(offset int) datatype.Date {
	return b.today.AddDays(offset)
}

func (b *builder) dayPtr(offset int) *datatype.Date {
	d := b.day(offset)
	return &d
}

func clock(h, m int) *datatype.Clock {
	c := datatype.NewClock(h, m)
	return &c
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func percent(n int) *int {
	return &n
}

func (b *builder) admin(hash func(string) (string, error)) {
	if b.err != nil {
		return
	}
	var n int64
	if err := b.tx.Model(&auth.User{}).Where("email = ?", AdminEmail).Count(&n).Error; err != nil {
		b.err = err
		return
	}
	if n > 0 {
		return
	}
	h, err := hash(AdminPassword)
	if err != nil {
		b.err = fmt.Errorf("hash admin password: %w", err)
		return
	}
	ensure(b, &auth.User{Email: AdminEmail, FullName: AdminName, PasswordHash: h}, "email = ?", AdminEmail)
}

func (b *builder) organisation() {
	b.departments = map[string]*employee.Department{}
	for _, d := range []employee.Department{
		{Name: "Engineering", Location: "Remote"},
		{Name: "People", Location: "NYC"},
		{Name: "Finance", Location: "Chicago"},
	} {
		ensure(b, &d, "name = ?", d.Name)
		b.departments[d.Name] = &d
	}

	b.roles = map[string]*employee.Role{}
	for _, r := range []employee.Role{
		{Title: "Software Engineer", Level: "IC3"},
		{Title: "Engineering Manager", Level: "M2"},
		{Title: "HR Partner", Level: "IC2"},
		{Title: "Controller", Level: "M1"},
	} {
		ensure(b, &r, "title = ?", r.Title)
		b.roles[r.Title] = &r
	}
	if b.err != nil {
		return
	}

	b.staff = map[string]*employee.Employee{}
	for _, p := range []struct {
		first, email, phone string
		days                int
		dept, role          string
		status              employee.Status
	}{
		{"Soumendra", "soumendra@january.local", "555-1101", 360, "Engineering", "Engineering Manager", employee.StatusActive},
		{"Saksham", "saksham@january.local", "555-1102", 290, "Engineering", "Software Engineer", employee.StatusActive},
		{"Srajan", "srajan@january.local", "555-1103", 220, "People", "HR Partner", employee.StatusActive},
		{"Gautami", "gautami@january.local", "555-1104", 440, "Finance", "Controller", employee.StatusActive},
		{"Sravani", "sravani@january.local", "555-1105", 180, "People", "HR Partner", employee.StatusOnLeave},
	} {
		e := &employee.Employee{
			FirstName:    p.first,
			Email:        p.email,
			Phone:        p.phone,
			StartDate:    b.day(-p.days),
			Status:       p.status,
			DepartmentID: &b.departments[p.dept].ID,
			RoleID:       &b.roles[p.role].ID,
		}
		ensure(b, e, "email = ?", e.Email)
		b.staff[p.first] = e
	}
}

func (b *builder) projects() {
	if b.err != nil {
		return
	}
	b.projectsBy = map[string]*project.Project{}
	for _, p := range []project.Project{
		{Name: "Atlas Revamp", Description: "Rebuild onboarding to cut time-to-value.", Status: project.StatusActive, StartDate: b.dayPtr(-45)},
		{Name: "Northwind Migration", Description: "Finance systems consolidation for Q1 close.", Status: project.StatusPlanned, StartDate: b.dayPtr(20)},
	} {
		ensure(b, &p, "name = ?", p.Name)
		b.projectsBy[p.Name] = &p
	}
	if b.err != nil {
		return
	}

	for _, a := range []struct {
		project, who, role string
		allocation         int
	}{
		{"Atlas Revamp", "Soumendra", "Lead", 80},
		{"Atlas Revamp", "Saksham", "Engineer", 70},
		{"Northwind Migration", "Sravani", "Change partner", 50},
	} {
		rec := &project.Assignment{
			ProjectID:  b.projectsBy[a.project].ID,
			EmployeeID: b.staff[a.who].ID,
			Role:       a.role,
			Allocation: percent(a.allocation),
		}
		ensure(b, rec, "project_id = ? AND employee_id = ?", rec.ProjectID, rec.EmployeeID)
	}
}

func (b *builder) records() {
	if b.err != nil {
		return
	}
	id := func(name string) int64 { return b.staff[name].ID }

	for _, r := range []timeoff.Request{
		{EmployeeID: id("Soumendra"), StartDate: b.day(5), EndDate: b.day(8), Category: timeoff.CategoryPTO, Status: timeoff.StatusPending, Note: "Festival travel"},
		{EmployeeID: id("Saksham"), StartDate: b.day(12), EndDate: b.day(15), Category: timeoff.CategorySick, Status: timeoff.StatusApproved, Note: "Recovery"},
		{EmployeeID: id("Sravani"), StartDate: b.day(20), EndDate: b.day(23), Category: timeoff.CategoryUnpaid, Status: timeoff.StatusPending, Note: "Family visit"},
	} {
		ensure(b, &r, "employee_id = ? AND start_date = ? AND end_date = ?", r.EmployeeID, r.StartDate, r.EndDate)
	}

	for _, e := range []payroll.Entry{
		{EmployeeID: id("Soumendra"), PeriodStart: b.day(-30), PeriodEnd: b.day(-16), PayDate: b.day(-10), GrossPay: money("9200.00"), Taxes: money("2100.00"), Bonus: money("600.00"), Status: payroll.StatusPaid, Notes: "Product milestone bonus"},
		{EmployeeID: id("Saksham"), PeriodStart: b.day(-30), PeriodEnd: b.day(-16), PayDate: b.day(-10), GrossPay: money("6400.00"), Taxes: money("1500.00"), Bonus: money("350.00"), Status: payroll.StatusPaid, Notes: "Sprint completion"},
		{EmployeeID: id("Sravani"), PeriodStart: b.day(-15), PeriodEnd: b.day(-1), PayDate: b.day(4), GrossPay: money("5800.00"), Taxes: money("1200.00"), Bonus: decimal.Zero, Status: payroll.StatusScheduled, Notes: "Payroll queued"},
	} {
		ensure(b, &e, "employee_id = ? AND period_start = ? AND period_end = ?", e.EmployeeID, e.PeriodStart, e.PeriodEnd)
	}

	for _, l := range []attendance.Log{
		{EmployeeID: id("Soumendra"), WorkDate: b.today, CheckIn: clock(9, 0), CheckOut: clock(17, 30), Status: attendance.StatusPresent, Notes: "Product review"},
		{EmployeeID: id("Saksham"), WorkDate: b.today, CheckIn: clock(9, 15), CheckOut: clock(18, 0), Status: attendance.StatusRemote, Notes: "Remote pairing"},
		{EmployeeID: id("Sravani"), WorkDate: b.today, Status: attendance.StatusLeave, Notes: "Visiting family"},
	} {
		ensure(b, &l, "employee_id = ? AND work_date = ?", l.EmployeeID, l.WorkDate)
	}

	for _, a := range []communication.Announcement{
		{Title: "Welcome to January", Body: "New navigation and attendance tracking are live.", Author: "Ops"},
		{Title: "Benefits window", Body: "Open enrollment closes Friday.", Author: "People"},
	} {
		ensure(b, &a, "title = ?", a.Title)
	}

	for _, m := range []communication.ChannelMessage{
		{Channel: "general", Message: "Great work on Atlas Revamp!", Author: "Soumendra"},
		{Channel: "finance", Message: "Northwind migration kickoff next week.", Author: "Gautami"},
	} {
		ensure(b, &m, "channel = ? AND message = ?", m.Channel, m.Message)
	}

	for _, r := range []performance.Review{
		{EmployeeID: id("Soumendra"), Reviewer: "CTO", PeriodStart: b.day(-180), PeriodEnd: b.today, Rating: "Exceeds", Status: performance.StatusSubmitted, Summary: "Led Atlas and hit milestones.", Goals: "Stabilize onboarding latency."},
		{EmployeeID: id("Saksham"), Reviewer: "Eng Manager", PeriodStart: b.day(-180), PeriodEnd: b.today, Rating: "Meets", Status: performance.StatusInReview, Summary: "Strong delivery and pairing.", Goals: "Improve incident response."},
	} {
		ensure(b, &r, "employee_id = ? AND period_start = ? AND period_end = ?", r.EmployeeID, r.PeriodStart, r.PeriodEnd)
	}

	for _, t := range []onboarding.Task{
		{EmployeeID: id("Saksham"), Title: "Laptop setup", Status: onboarding.StatusDone, DueDate: b.dayPtr(-150), Notes: "Completed"},
		{EmployeeID: id("Sravani"), Title: "HR orientation", Status: onboarding.StatusOpen, DueDate: b.dayPtr(2), Notes: "Schedule with People"},
	} {
		ensure(b, &t, "employee_id = ? AND title = ?", t.EmployeeID, t.Title)
	}

	for _, e := range []benefit.Enrollment{
		{EmployeeID: id("Soumendra"), BenefitType: "Health", Provider: "Acme Health", Coverage: "Gold", Status: benefit.StatusActive, StartDate: b.dayPtr(-200)},
		{EmployeeID: id("Sravani"), BenefitType: "Dental", Provider: "BrightSmiles", Coverage: "Standard", Status: benefit.StatusPending, StartDate: b.dayPtr(10)},
	} {
		ensure(b, &e, "employee_id = ? AND benefit_type = ?", e.EmployeeID, e.BenefitType)
	}

	for _, r := range []recognition.Recognition{
		{EmployeeID: id("Saksham"), FromPerson: "Soumendra", Badge: "Kudos", Message: "Great pairing on Atlas."},
		{EmployeeID: id("Sravani"), FromPerson: "People Team", Badge: "Gratitude", Message: "Thanks for supporting change management."},
	} {
		ensure(b, &r, "employee_id = ? AND message = ?", r.EmployeeID, r.Message)
	}
}
