// Package report builds the read-only overview pages: the dashboard, the
// summary metrics and the employee self-service portal.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-portal/internal/attendance"
	"github.com/frahmantamala/hr-portal/internal/benefit"
	"github.com/frahmantamala/hr-portal/internal/communication"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/onboarding"
	"github.com/frahmantamala/hr-portal/internal/payroll"
	"github.com/frahmantamala/hr-portal/internal/performance"
	"github.com/frahmantamala/hr-portal/internal/project"
	"github.com/frahmantamala/hr-portal/internal/recognition"
	"github.com/frahmantamala/hr-portal/internal/timeoff"
	"github.com/shopspring/decimal"
)

const (
	recentRequests      = 5
	portalAnnouncements = 3
	portalTasks         = 5
	portalRecognitions  = 5
	recognitionWindow   = 7 * 24 * time.Hour
)

// PayrollRepository is the payroll store plus column totals.
type PayrollRepository interface {
	record.Repository[payroll.Entry]
	Sum(ctx context.Context, column string, conds ...record.Cond) (decimal.Decimal, error)
}

// Sources are the stores the overview pages read from.
type Sources struct {
	Employees     record.Repository[employee.Employee]
	Departments   record.Repository[employee.Department]
	TimeOff       record.Repository[timeoff.Request]
	Payroll       PayrollRepository
	Projects      record.Repository[project.Project]
	Attendance    record.Repository[attendance.Log]
	Announcements record.Repository[communication.Announcement]
	Onboarding    record.Repository[onboarding.Task]
	Reviews       record.Repository[performance.Review]
	Recognitions  record.Repository[recognition.Recognition]
	Benefits      record.Repository[benefit.Enrollment]
}

type Dashboard struct {
	EmployeeCount   int64
	DepartmentCount int64
	PendingRequests int64
	RecentRequests  []timeoff.Request
	OpenPayroll     int64
	ActiveProjects  int64
	TodaysLogs      int64
}

// Metrics is the summary shown on the reports page. Payroll figures are gross
// totals.
type Metrics struct {
	EmployeeTotal    int64           `json:"employee_total"`
	ActiveEmployees  int64           `json:"active_employees"`
	OnLeave          int64           `json:"on_leave"`
	PendingTimeOff   int64           `json:"pending_time_off"`
	PayrollScheduled decimal.Decimal `json:"payroll_scheduled"`
	PayrollPaid      decimal.Decimal `json:"payroll_paid"`
	AttendanceToday  int64           `json:"attendance_today"`
	OpenOnboarding   int64           `json:"open_onboarding"`
	OpenReviews      int64           `json:"open_reviews"`
	Recognitions7d   int64           `json:"recognitions_7d"`
	BenefitsActive   int64           `json:"benefits_active"`
}

type Portal struct {
	Employees     []employee.Employee
	Announcements []communication.Announcement
	Tasks         []onboarding.Task
	Recognitions  []recognition.Recognition
}

type Service struct {
	src    Sources
	logger *slog.Logger
	now    func() time.Time
}

func NewService(src Sources, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{src: src, logger: logger, now: time.Now}
}

// WithClock replaces the time source used for "today" and the recognition
// window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// counter collects counts and keeps the first error so a page can be built
// with one check at the end.
type counter struct {
	ctx context.Context
	err error
}

func (c *counter) count(what string, fn func(context.Context, ...record.Cond) (int64, error), conds ...record.Cond) int64 {
	if c.err != nil {
		return 0
	}
	n, err := fn(c.ctx, conds...)
	if err != nil {
		c.err = fmt.Errorf("count %s: %w", what, err)
	}
	return n
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := datatype.DateOf(s.now())
	c := &counter{ctx: ctx}
	d := &Dashboard{
		EmployeeCount:   c.count("employees", s.src.Employees.Count),
		DepartmentCount: c.count("departments", s.src.Departments.Count),
		PendingRequests: c.count("pending requests", s.src.TimeOff.Count, record.Where("status = ?", timeoff.StatusPending)),
		OpenPayroll:     c.count("scheduled payroll", s.src.Payroll.Count, record.Where("status = ?", payroll.StatusScheduled)),
		ActiveProjects:  c.count("active projects", s.src.Projects.Count, record.Where("status <> ?", project.StatusDone)),
		TodaysLogs:      c.count("attendance", s.src.Attendance.Count, attendance.OnDay(today)),
	}
	if c.err != nil {
		s.logger.Error("failed to build dashboard", "error", c.err)
		return nil, c.err
	}

	recent, err := s.src.TimeOff.List(ctx, record.ListOptions{
		Order:   []string{"created_at DESC", "id DESC"},
		Limit:   recentRequests,
		Preload: []string{"Employee"},
	})
	if err != nil {
		s.logger.Error("failed to list recent requests", "error", err)
		return nil, err
	}
	d.RecentRequests = recent
	return d, nil
}

func (s *Service) Metrics(ctx context.Context) (*Metrics, error) {
	now := s.now()
	c := &counter{ctx: ctx}
	m := &Metrics{
		EmployeeTotal:   c.count("employees", s.src.Employees.Count),
		ActiveEmployees: c.count("active employees", s.src.Employees.Count, record.Where("status = ?", employee.StatusActive)),
		OnLeave:         c.count("employees on leave", s.src.Employees.Count, record.Where("status = ?", employee.StatusOnLeave)),
		PendingTimeOff:  c.count("pending time off", s.src.TimeOff.Count, record.Where("status = ?", timeoff.StatusPending)),
		AttendanceToday: c.count("attendance", s.src.Attendance.Count, attendance.OnDay(datatype.DateOf(now))),
		OpenOnboarding:  c.count("open onboarding", s.src.Onboarding.Count, record.Where("status <> ?", onboarding.StatusDone)),
		OpenReviews:     c.count("open reviews", s.src.Reviews.Count, record.Where("status <> ?", performance.StatusSubmitted)),
		Recognitions7d:  c.count("recognitions", s.src.Recognitions.Count, record.Where("created_at >= ?", now.UTC().Add(-recognitionWindow))),
		BenefitsActive:  c.count("active benefits", s.src.Benefits.Count, record.Where("status = ?", benefit.StatusActive)),
	}
	if c.err != nil {
		s.logger.Error("failed to build metrics", "error", c.err)
		return nil, c.err
	}

	var err error
	if m.PayrollScheduled, err = s.src.Payroll.Sum(ctx, "gross_pay", record.Where("status = ?", payroll.StatusScheduled)); err != nil {
		s.logger.Error("failed to sum scheduled payroll", "error", err)
		return nil, err
	}
	if m.PayrollPaid, err = s.src.Payroll.Sum(ctx, "gross_pay", record.Where("status = ?", payroll.StatusPaid)); err != nil {
		s.logger.Error("failed to sum paid payroll", "error", err)
		return nil, err
	}
	return m, nil
}

func (s *Service) Portal(ctx context.Context) (*Portal, error) {
	p := &Portal{}
	var err error

	if p.Employees, err = s.src.Employees.List(ctx, employee.ListOrder); err != nil {
		return nil, s.portalFailure("employees", err)
	}

	announcements := communication.LatestAnnouncements
	announcements.Limit = portalAnnouncements
	if p.Announcements, err = s.src.Announcements.List(ctx, announcements); err != nil {
		return nil, s.portalFailure("announcements", err)
	}

	tasks := onboarding.ByDueDate
	tasks.Limit = portalTasks
	if p.Tasks, err = s.src.Onboarding.List(ctx, tasks); err != nil {
		return nil, s.portalFailure("onboarding tasks", err)
	}

	kudos := recognition.Latest
	kudos.Limit = portalRecognitions
	if p.Recognitions, err = s.src.Recognitions.List(ctx, kudos); err != nil {
		return nil, s.portalFailure("recognitions", err)
	}
	return p, nil
}

func (s *Service) portalFailure(what string, err error) error {
	s.logger.Error("failed to build self-service portal", "section", what, "error", err)
	return err
}
