package onboarding_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/onboarding"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Onboarding Handler Integration", func() {
	var (
		gdb     *gorm.DB
		base    *transport.BaseHandler
		router  http.Handler
		tasks   *record.Service[onboarding.Task]
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
			FirstName: "Annie",
			LastName:  "Easley",
			Email:     "annie@example.com",
			StartDate: datatype.NewDate(2024, 9, 2),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, staff)).To(Succeed())
		staffID = staff.ID

		tasks = record.NewService[onboarding.Task]("onboarding_task", record.NewStore[onboarding.Task](gdb), transporttest.Logger())
		base = transporttest.NewBase()
		router = transporttest.Router(base, onboarding.NewHandler(base, tasks, employees).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	newTask := func(title string, due *datatype.Date) *onboarding.Task {
		t := &onboarding.Task{EmployeeID: staffID, Title: title, Status: onboarding.StatusOpen, DueDate: due}
		Expect(tasks.Create(ctx, t)).To(Succeed())
		return t
	}

	It("saves a task", func() {
		w := transporttest.PostForm(router, "/onboarding/new", url.Values{
			"employee_id": {strconv.FormatInt(staffID, 10)},
			"title":       {"Laptop setup"},
			"due_date":    {"2024-09-03"},
		})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Task saved."))
	})

	It("requires employee and title", func() {
		w := transporttest.PostForm(router, "/onboarding/new", url.Values{"notes": {"x"}})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Employee and title are required."))
	})

	It("rejects an unparseable due date", func() {
		w := transporttest.PostForm(router, "/onboarding/new", url.Values{
			"employee_id": {strconv.FormatInt(staffID, 10)},
			"title":       {"Badge"},
			"due_date":    {"next week"},
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Invalid due date."))
	})

	It("updates status through the status route", func() {
		t := newTask("Accounts", nil)

		w := transporttest.PostForm(router, "/onboarding/"+strconv.FormatInt(t.ID, 10)+"/status", url.Values{"status": {"done"}})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Task updated."))

		got, err := tasks.Get(ctx, t.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Status).To(Equal(onboarding.StatusDone))
	})

	It("refuses a status outside the allow-list", func() {
		t := newTask("Accounts", nil)

		w := transporttest.PostForm(router, "/onboarding/"+strconv.FormatInt(t.ID, 10)+"/status", url.Values{"status": {"blocked"}})
		Expect(transporttest.Flashes(base, w)).To(ConsistOf(session.Flash{Category: session.FlashDanger, Message: "Invalid status."}))
	})

	It("lists dated tasks first, soonest due first", func() {
		later := datatype.NewDate(2024, 10, 1)
		sooner := datatype.NewDate(2024, 9, 5)
		newTask("undated", nil)
		newTask("later", &later)
		newTask("sooner", &sooner)

		list, err := tasks.List(ctx, onboarding.ByDueDate)
		Expect(err).NotTo(HaveOccurred())
		titles := []string{}
		for _, t := range list {
			titles = append(titles, t.Title)
		}
		Expect(titles).To(Equal([]string{"sooner", "later", "undated"}))
	})
})
