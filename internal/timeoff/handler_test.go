package timeoff_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/timeoff"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Time-off Handler Integration", func() {
	var (
		gdb       *gorm.DB
		base      *transport.BaseHandler
		router    http.Handler
		requests  *record.Service[timeoff.Request]
		employees *record.Store[employee.Employee]
		staff     *employee.Employee
		ctx       context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		employees = record.NewStore[employee.Employee](gdb)
		staff = &employee.Employee{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			StartDate: datatype.NewDate(2023, 9, 1),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, staff)).To(Succeed())

		requests = record.NewService[timeoff.Request]("time_off", record.NewStore[timeoff.Request](gdb), transporttest.Logger())
		base = transporttest.NewBase()
		router = transporttest.Router(base, timeoff.NewHandler(base, requests, employees).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	submit := func(start, end string) *http.Response {
		w := transporttest.PostForm(router, "/time-off/new", url.Values{
			"employee_id": {strconv.FormatInt(staff.ID, 10)},
			"start_date":  {start},
			"end_date":    {end},
			"category":    {"sick"},
		})
		return w.Result()
	}

	It("submits a request whose end equals its start", func() {
		res := submit("2024-06-10", "2024-06-10")
		Expect(res.StatusCode).To(Equal(http.StatusFound))

		list, err := requests.List(ctx, record.ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Category).To(Equal(timeoff.CategorySick))
		Expect(list[0].Status).To(Equal(timeoff.StatusPending))
		Expect(list[0].Days()).To(Equal(1))
	})

	It("persists nothing when the end date precedes the start date", func() {
		res := submit("2024-06-10", "2024-06-09")
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		n, err := requests.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("flashes the submission message", func() {
		w := transporttest.PostForm(router, "/time-off/new", url.Values{
			"employee_id": {strconv.FormatInt(staff.ID, 10)},
			"start_date":  {"2024-06-10"},
			"end_date":    {"2024-06-12"},
		})
		Expect(transporttest.Flashes(base, w)).To(ConsistOf(session.Flash{Category: session.FlashSuccess, Message: "Request submitted."}))
	})

	It("treats a missing employee as a validation error", func() {
		w := transporttest.PostForm(router, "/time-off/new", url.Values{
			"employee_id": {"4242"},
			"start_date":  {"2024-06-10"},
			"end_date":    {"2024-06-12"},
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("A referenced record does not exist."))
	})

	Context("status changes", func() {
		var req *timeoff.Request

		BeforeEach(func() {
			req = &timeoff.Request{
				EmployeeID: staff.ID,
				StartDate:  datatype.NewDate(2024, 7, 1),
				EndDate:    datatype.NewDate(2024, 7, 5),
				Category:   timeoff.CategoryPTO,
				Status:     timeoff.StatusPending,
			}
			Expect(requests.Create(ctx, req)).To(Succeed())
		})

		It("accepts any allowed transition", func() {
			target := "/time-off/" + strconv.FormatInt(req.ID, 10) + "/status"

			w := transporttest.PostForm(router, target, url.Values{"status": {"declined"}})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Status updated."))

			w = transporttest.PostForm(router, target, url.Values{"status": {"approved"}})
			Expect(w.Code).To(Equal(http.StatusFound))

			got, err := requests.Get(ctx, req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(timeoff.StatusApproved))
		})

		It("rejects a status outside the allow-list", func() {
			w := transporttest.PostForm(router, "/time-off/"+strconv.FormatInt(req.ID, 10)+"/status", url.Values{"status": {"archived"}})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Flashes(base, w)).To(ConsistOf(session.Flash{Category: session.FlashDanger, Message: "Invalid status."}))

			got, err := requests.Get(ctx, req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(timeoff.StatusPending))
		})

		It("answers 404 for an unknown request", func() {
			w := transporttest.PostForm(router, "/time-off/999/status", url.Values{"status": {"approved"}})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	It("cascades requests when the employee is deleted", func() {
		Expect(requests.Create(ctx, &timeoff.Request{
			EmployeeID: staff.ID,
			StartDate:  datatype.NewDate(2024, 7, 1),
			EndDate:    datatype.NewDate(2024, 7, 2),
			Category:   timeoff.CategoryPTO,
			Status:     timeoff.StatusPending,
		})).To(Succeed())

		Expect(employees.Delete(ctx, staff.ID)).To(Succeed())

		n, err := requests.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})
})
