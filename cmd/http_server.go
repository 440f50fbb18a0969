package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/hr-portal/db"
	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/attendance"
	"github.com/frahmantamala/hr-portal/internal/auth"
	authpg "github.com/frahmantamala/hr-portal/internal/auth/postgres"
	"github.com/frahmantamala/hr-portal/internal/benefit"
	"github.com/frahmantamala/hr-portal/internal/chat"
	"github.com/frahmantamala/hr-portal/internal/communication"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/onboarding"
	"github.com/frahmantamala/hr-portal/internal/payroll"
	"github.com/frahmantamala/hr-portal/internal/performance"
	"github.com/frahmantamala/hr-portal/internal/project"
	"github.com/frahmantamala/hr-portal/internal/recognition"
	"github.com/frahmantamala/hr-portal/internal/report"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/timeoff"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/middleware"
	"github.com/frahmantamala/hr-portal/internal/transport/rest"
	"github.com/frahmantamala/hr-portal/internal/transport/swagger"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/frahmantamala/hr-portal/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const metricsNamespace = "hr_portal"

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that serves the admin pages and the JSON endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

func startHTTPServer() {
	cfg, err := loadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lg := logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	gdb, err := db.Open(cfg.Database, lg)
	if err != nil {
		lg.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		lg.Error("Failed to access database handle", "error", err)
		os.Exit(1)
	}

	handler, err := NewApp(context.Background(), cfg, gdb, lg)
	if err != nil {
		lg.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lg.Info("Starting HTTP server", "address", addr, "driver", cfg.Database.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		lg.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			lg.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	if err := sqlDB.Close(); err != nil {
		lg.Error("Database close error", "error", err)
	}
	lg.Info("Server stopped")
}

// NewApp builds the complete HTTP handler on top of an open database.
func NewApp(ctx context.Context, cfg *internal.Config, gdb *gorm.DB, lg *slog.Logger) (http.Handler, error) {
	if _, err := swagger.Load(ctx); err != nil {
		return nil, err
	}

	views, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}
	driverName := "sqlite3"
	if cfg.Database.Driver == internal.DriverPostgres {
		driverName = "pgx"
	}

	sessions := session.NewManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL,
		session.WithSecureCookie(cfg.Security.SecureCookie))
	base := transport.NewBaseHandler(lg, sessions, views)

	stores := newStores(gdb)

	authService := auth.NewService(authpg.NewRepository(gdb), cfg.Security.BCryptCost, lg)

	gemini := chat.NewGeminiGenerator(chat.GeminiConfig{APIKey: cfg.Chat.APIKey, Model: cfg.Chat.Model}, lg)
	chatService := chat.NewService(gemini, cfg.Chat.Timeout, lg)

	reports := report.NewService(report.Sources{
		Employees:     stores.employees,
		Departments:   stores.departments,
		TimeOff:       stores.timeOff,
		Payroll:       stores.payroll,
		Projects:      stores.projects,
		Attendance:    stores.attendance,
		Announcements: stores.announcements,
		Onboarding:    stores.onboarding,
		Reviews:       stores.reviews,
		Recognitions:  stores.recognitions,
		Benefits:      stores.benefits,
	}, lg)

	var metrics *middleware.Metrics
	if cfg.Observability.Metrics.Enabled {
		metrics = middleware.NewMetrics(metricsNamespace, prometheus.NewRegistry())
	}

	employees := stores.employees
	return rest.NewRouter(rest.Dependencies{
		Base:        base,
		Logger:      lg,
		DB:          sqlx.NewDb(sqlDB, driverName),
		Auth:        auth.NewHandler(base, authService),
		Metrics:     metrics,
		MetricsPath: cfg.Observability.Metrics.Path,
		Pages: []rest.Mounter{
			report.NewHandler(base, reports),
			employee.NewHandler(base,
				record.NewService[employee.Employee]("employee", employees, lg),
				record.NewService[employee.Department]("department", stores.departments, lg),
				record.NewService[employee.Role]("role", stores.roles, lg)),
			timeoff.NewHandler(base, record.NewService[timeoff.Request]("time_off", stores.timeOff, lg), employees),
			payroll.NewHandler(base, record.NewService[payroll.Entry]("payroll", stores.payroll, lg), employees),
			project.NewHandler(base,
				record.NewService[project.Project]("project", stores.projects, lg),
				record.NewService[project.Assignment]("assignment", stores.assignments, lg),
				employees),
			attendance.NewHandler(base, record.NewService[attendance.Log]("attendance", stores.attendance, lg), employees),
			communication.NewHandler(base,
				record.NewService[communication.Announcement]("announcement", stores.announcements, lg),
				record.NewService[communication.ChannelMessage]("message", stores.messages, lg)),
			onboarding.NewHandler(base, record.NewService[onboarding.Task]("onboarding_task", stores.onboarding, lg), employees),
			performance.NewHandler(base, record.NewService[performance.Review]("performance_review", stores.reviews, lg), employees),
			recognition.NewHandler(base, record.NewService[recognition.Recognition]("recognition", stores.recognitions, lg), employees),
			benefit.NewHandler(base, record.NewService[benefit.Enrollment]("benefit_enrollment", stores.benefits, lg), employees),
			chat.NewHandler(base, chatService),
		},
	}), nil
}

type stores struct {
	departments   *record.Store[employee.Department]
	roles         *record.Store[employee.Role]
	employees     *record.Store[employee.Employee]
	timeOff       *record.Store[timeoff.Request]
	payroll       *record.Store[payroll.Entry]
	projects      *record.Store[project.Project]
	assignments   *record.Store[project.Assignment]
	attendance    *record.Store[attendance.Log]
	announcements *record.Store[communication.Announcement]
	messages      *record.Store[communication.ChannelMessage]
	onboarding    *record.Store[onboarding.Task]
	reviews       *record.Store[performance.Review]
	recognitions  *record.Store[recognition.Recognition]
	benefits      *record.Store[benefit.Enrollment]
}

func newStores(gdb *gorm.DB) stores {
	return stores{
		departments:   record.NewStore[employee.Department](gdb),
		roles:         record.NewStore[employee.Role](gdb),
		employees:     record.NewStore[employee.Employee](gdb),
		timeOff:       record.NewStore[timeoff.Request](gdb),
		payroll:       record.NewStore[payroll.Entry](gdb),
		projects:      record.NewStore[project.Project](gdb),
		assignments:   record.NewStore[project.Assignment](gdb),
		attendance:    record.NewStore[attendance.Log](gdb),
		announcements: record.NewStore[communication.Announcement](gdb),
		messages:      record.NewStore[communication.ChannelMessage](gdb),
		onboarding:    record.NewStore[onboarding.Task](gdb),
		reviews:       record.NewStore[performance.Review](gdb),
		recognitions:  record.NewStore[recognition.Recognition](gdb),
		benefits:      record.NewStore[benefit.Enrollment](gdb),
	}
}
