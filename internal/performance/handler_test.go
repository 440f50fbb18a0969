package performance_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/performance"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Performance Handler Integration", func() {
	var (
		gdb     *gorm.DB
		base    *transport.BaseHandler
		router  http.Handler
		reviews *record.Service[performance.Review]
		staffID string
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		employees := record.NewStore[employee.Employee](gdb)
		staff := &employee.Employee{
			FirstName: "Margaret",
			LastName:  "Hamilton",
			Email:     "margaret@example.com",
			StartDate: datatype.NewDate(2019, 8, 12),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, staff)).To(Succeed())
		staffID = strconv.FormatInt(staff.ID, 10)

		reviews = record.NewService[performance.Review]("performance_review", record.NewStore[performance.Review](gdb), transporttest.Logger())
		base = transporttest.NewBase()
		router = transporttest.Router(base, performance.NewHandler(base, reviews, employees).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	It("saves a review as a draft by default", func() {
		w := transporttest.PostForm(router, "/performance/new", url.Values{
			"employee_id":  {staffID},
			"reviewer":     {"Lead"},
			"period_start": {"2024-01-01"},
			"period_end":   {"2024-06-30"},
			"rating":       {"4"},
		})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Performance review saved."))

		list, err := reviews.List(ctx, record.ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Status).To(Equal(performance.StatusDraft))
	})

	It("reports bad period dates before a missing employee", func() {
		w := transporttest.PostForm(router, "/performance/new", url.Values{"period_start": {"2024-01-01"}})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Invalid period dates."))
	})

	It("deletes a review with its own message", func() {
		r := &performance.Review{
			EmployeeID:  mustID(staffID),
			PeriodStart: datatype.NewDate(2023, 1, 1),
			PeriodEnd:   datatype.NewDate(2023, 12, 31),
			Status:      performance.StatusSubmitted,
		}
		Expect(reviews.Create(ctx, r)).To(Succeed())

		w := transporttest.PostForm(router, "/performance/"+strconv.FormatInt(r.ID, 10)+"/delete", nil)
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Review deleted."))
	})

	It("moves a review between statuses in any direction", func() {
		r := &performance.Review{
			EmployeeID:  mustID(staffID),
			PeriodStart: datatype.NewDate(2023, 1, 1),
			PeriodEnd:   datatype.NewDate(2023, 12, 31),
			Status:      performance.StatusSubmitted,
		}
		Expect(reviews.Create(ctx, r)).To(Succeed())

		w := transporttest.PostForm(router, "/performance/"+strconv.FormatInt(r.ID, 10)+"/status", url.Values{"status": {"draft"}})
		Expect(w.Code).To(Equal(http.StatusFound))

		got, err := reviews.Get(ctx, r.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(performance.StatusDraft))
	})
})

func mustID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	Expect(err).NotTo(HaveOccurred())
	return id
}
