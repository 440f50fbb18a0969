package attendance_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/attendance"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func clock(h, m int) *datatype.Clock {
	c := datatype.NewClock(h, m)
	return &c
}

var _ = Describe("Log", func() {
	It("derives hours rounded to two decimals", func() {
		l := attendance.Log{CheckIn: clock(9, 0), CheckOut: clock(17, 20)}
		Expect(*l.Hours()).To(BeNumerically("~", 8.33, 0.001))
	})

	It("has no hours without a check-out", func() {
		l := attendance.Log{CheckIn: clock(9, 0)}
		Expect(l.Hours()).To(BeNil())
	})
})

var _ = Describe("Attendance Handler Integration", func() {
	var (
		gdb     *gorm.DB
		base    *transport.BaseHandler
		router  http.Handler
		logs    *record.Service[attendance.Log]
		staffID int64
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		employees := record.NewStore[employee.Employee](gdb)
		staff := &employee.Employee{
			FirstName: "Dorothy",
			LastName:  "Vaughan",
			Email:     "dorothy@example.com",
			StartDate: datatype.NewDate(2020, 2, 17),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, staff)).To(Succeed())
		staffID = staff.ID

		logs = record.NewService[attendance.Log]("attendance", record.NewStore[attendance.Log](gdb), transporttest.Logger())
		base = transporttest.NewBase()
		router = transporttest.Router(base, attendance.NewHandler(base, logs, employees).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	seed := func(day datatype.Date, in *datatype.Clock, notes string) {
		Expect(logs.Create(ctx, &attendance.Log{
			EmployeeID: staffID,
			WorkDate:   day,
			CheckIn:    in,
			Status:     attendance.StatusPresent,
			Notes:      notes,
		})).To(Succeed())
	}

	It("records attendance with clock times", func() {
		w := transporttest.PostForm(router, "/attendance/new", url.Values{
			"employee_id": {strconv.FormatInt(staffID, 10)},
			"work_date":   {"2024-04-02"},
			"check_in":    {"08:45"},
			"check_out":   {"17:15"},
			"status":      {"remote"},
		})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Attendance recorded."))

		list, err := logs.List(ctx, attendance.ListOrder)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].CheckIn.String()).To(Equal("08:45"))
		Expect(*list[0].Hours()).To(BeNumerically("~", 8.5, 0.001))
		Expect(list[0].Status).To(Equal(attendance.StatusRemote))
	})

	It("rejects a missing work date before checking the employee", func() {
		w := transporttest.PostForm(router, "/attendance/new", url.Values{"check_in": {"09:00"}})
		Expect(w.Code).To(Equal(http.StatusOK))

		body := w.Body.String()
		Expect(body).To(ContainSubstring("Invalid work date."))
		Expect(strings.Index(body, "Invalid work date.")).To(BeNumerically("<", strings.Index(body, "Employee is required.")))
	})

	It("filters the list to one day and ignores a malformed filter", func() {
		seed(datatype.NewDate(2024, 4, 1), clock(9, 0), "monday-note")
		seed(datatype.NewDate(2024, 4, 2), clock(9, 0), "tuesday-note")

		w := transporttest.Get(router, "/attendance?date=2024-04-02")
		Expect(w.Body.String()).To(ContainSubstring("2024-04-02"))
		Expect(w.Body.String()).NotTo(ContainSubstring("2024-04-01"))

		w = transporttest.Get(router, "/attendance?date=not-a-date")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("2024-04-01"))
		Expect(w.Body.String()).To(ContainSubstring("2024-04-02"))
	})

	It("orders by day descending then check-in with blanks last", func() {
		day := datatype.NewDate(2024, 4, 3)
		seed(day, nil, "no-check-in")
		seed(day, clock(10, 0), "late")
		seed(day, clock(8, 0), "early")
		seed(datatype.NewDate(2024, 4, 4), clock(9, 0), "next-day")

		list, err := logs.List(ctx, attendance.ListOrder)
		Expect(err).NotTo(HaveOccurred())

		notes := make([]string, len(list))
		for i, l := range list {
			notes[i] = l.Notes
		}
		Expect(notes).To(Equal([]string{"next-day", "early", "late", "no-check-in"}))
	})

	It("updates a log and keeps fields that were not submitted", func() {
		seed(datatype.NewDate(2024, 4, 1), clock(9, 0), "keep me")
		list, err := logs.List(ctx, attendance.ListOrder)
		Expect(err).NotTo(HaveOccurred())
		id := strconv.FormatInt(list[0].ID, 10)

		w := transporttest.PostForm(router, "/attendance/"+id+"/edit", url.Values{"check_out": {"18:00"}})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Attendance updated."))

		got, err := logs.Get(ctx, list[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Notes).To(Equal("keep me"))
		Expect(*got.Hours()).To(BeNumerically("~", 9.0, 0.001))
	})
})
