package project_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/project"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Project Handler Integration", func() {
	var (
		gdb         *gorm.DB
		base        *transport.BaseHandler
		router      http.Handler
		projects    *record.Service[project.Project]
		assignments *record.Service[project.Assignment]
		staff       *employee.Employee
		ctx         context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		employees := record.NewStore[employee.Employee](gdb)
		staff = &employee.Employee{
			FirstName: "Katherine",
			LastName:  "Johnson",
			Email:     "katherine@example.com",
			StartDate: datatype.NewDate(2021, 6, 1),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, staff)).To(Succeed())

		lg := transporttest.Logger()
		projects = record.NewService[project.Project]("project", record.NewStore[project.Project](gdb), lg)
		assignments = record.NewService[project.Assignment]("assignment", record.NewStore[project.Assignment](gdb), lg)
		base = transporttest.NewBase()
		router = transporttest.Router(base, project.NewHandler(base, projects, assignments, employees).Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	newProject := func(name string) *project.Project {
		p := &project.Project{Name: name, Status: project.StatusPlanned}
		Expect(projects.Create(ctx, p)).To(Succeed())
		return p
	}

	It("requires a project name", func() {
		w := transporttest.PostForm(router, "/projects/new", url.Values{"description": {"No name"}})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Project name is required."))
	})

	It("creates a project with optional dates left empty", func() {
		w := transporttest.PostForm(router, "/projects/new", url.Values{"name": {"Payroll revamp"}})
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(transporttest.Messages(base, w)).To(ConsistOf("Project created."))

		list, err := projects.List(ctx, record.ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].StartDate).To(BeNil())
		Expect(list[0].Status).To(Equal(project.StatusPlanned))
	})

	It("rejects a malformed end date", func() {
		w := transporttest.PostForm(router, "/projects/new", url.Values{"name": {"Portal"}, "end_date": {"someday"}})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Invalid end date."))
	})

	Context("assigning employees", func() {
		It("adds an assignment through the project route", func() {
			p := newProject("Onboarding flow")

			w := transporttest.PostForm(router, "/projects/"+strconv.FormatInt(p.ID, 10)+"/assign", url.Values{
				"employee_id": {strconv.FormatInt(staff.ID, 10)},
				"role":        {"Lead"},
				"allocation":  {"50"},
			})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/projects"))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Assignment added."))

			list, err := assignments.List(ctx, record.ListOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].ProjectID).To(Equal(p.ID))
			Expect(*list[0].Allocation).To(Equal(50))
		})

		It("requires an employee", func() {
			p := newProject("Benefits audit")

			w := transporttest.PostForm(router, "/projects/"+strconv.FormatInt(p.ID, 10)+"/assign", url.Values{"role": {"Analyst"}})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Employee is required."))
		})

		It("rejects an allocation above 100", func() {
			p := newProject("Benefits audit")

			w := transporttest.PostForm(router, "/projects/"+strconv.FormatInt(p.ID, 10)+"/assign", url.Values{
				"employee_id": {strconv.FormatInt(staff.ID, 10)},
				"allocation":  {"150"},
			})
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Allocation must be between 0 and 100."))
		})

		It("answers 404 for an unknown project", func() {
			w := transporttest.PostForm(router, "/projects/999/assign", url.Values{"employee_id": {"1"}})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("removes assignments with their project", func() {
			p := newProject("Short lived")
			Expect(assignments.Create(ctx, &project.Assignment{ProjectID: p.ID, EmployeeID: staff.ID})).To(Succeed())

			w := transporttest.PostForm(router, "/projects/"+strconv.FormatInt(p.ID, 10)+"/delete", nil)
			Expect(w.Code).To(Equal(http.StatusFound))

			n, err := assignments.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})
	})

	It("shows the team on the project list", func() {
		p := newProject("Hiring pipeline")
		half := 50
		Expect(assignments.Create(ctx, &project.Assignment{ProjectID: p.ID, EmployeeID: staff.ID, Allocation: &half})).To(Succeed())

		w := transporttest.Get(router, "/projects")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Katherine Johnson (50%)"))
	})
})
