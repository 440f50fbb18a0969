package rest_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/auth"
	authpg "github.com/frahmantamala/hr-portal/internal/auth/postgres"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport/middleware"
	"github.com/frahmantamala/hr-portal/internal/transport/rest"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ = Describe("Router", func() {
	var (
		gdb    *gorm.DB
		router http.Handler
		logs   bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := gdb.DB()
		Expect(err).NotTo(HaveOccurred())

		logs.Reset()
		lg := slog.New(slog.NewTextHandler(&logs, nil))
		base := transporttest.NewBase()
		authHandler := auth.NewHandler(base, auth.NewService(authpg.NewRepository(gdb), bcrypt.MinCost, lg))
		employees := employee.NewHandler(base,
			record.NewService[employee.Employee]("employee", record.NewStore[employee.Employee](gdb), lg),
			record.NewService[employee.Department]("department", record.NewStore[employee.Department](gdb), lg),
			record.NewService[employee.Role]("role", record.NewStore[employee.Role](gdb), lg),
		)

		router = rest.NewRouter(rest.Dependencies{
			Base:        base,
			Logger:      lg,
			DB:          sqlx.NewDb(sqlDB, "sqlite3"),
			Auth:        authHandler,
			Metrics:     middleware.NewMetrics("hr", prometheus.NewRegistry()),
			MetricsPath: "/metrics",
			Pages:       []rest.Mounter{employees},
		})
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	It("reports a healthy database without a session", func() {
		w := transporttest.Get(router, "/system/health")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp rest.HealthResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Database).To(Equal(rest.DatabaseOK))
		Expect(resp.Timestamp).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`))
	})

	It("reports a database error when the probe fails", func() {
		Expect(gdb.Exec("DROP TABLE employees").Error).To(Succeed())

		w := transporttest.Get(router, "/system/health")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"database":"error"`))
	})

	It("answers ping", func() {
		w := transporttest.Get(router, "/system/ping")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"OK"`))
	})

	It("guards record pages", func() {
		w := transporttest.Get(router, "/employees")
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(w.Header().Get("Location")).To(Equal(auth.LoginPath))
	})

	It("serves the login page publicly", func() {
		Expect(transporttest.Get(router, auth.LoginPath).Code).To(Equal(http.StatusOK))
	})

	It("renders the not-found page for unknown routes", func() {
		w := transporttest.Get(router, "/no-such-page")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/html"))
	})

	It("serves the API document and metrics", func() {
		Expect(transporttest.Get(router, "/openapi.yml").Code).To(Equal(http.StatusOK))

		transporttest.Get(router, "/system/ping")
		w := transporttest.Get(router, "/metrics")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`route="/system/ping"`))
	})

	It("writes request logs through the configured logger with the trace id", func() {
		req := httptest.NewRequest(http.MethodGet, "/system/ping", nil)
		req.Header.Set(middleware.TraceHeader, "trace-123")
		router.ServeHTTP(httptest.NewRecorder(), req)

		Expect(logs.String()).To(ContainSubstring("incoming request"))
		Expect(logs.String()).To(ContainSubstring("path=/system/ping"))
		Expect(logs.String()).To(ContainSubstring("traceID=trace-123"))
	})
})
