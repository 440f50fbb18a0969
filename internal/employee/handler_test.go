package employee_test

import (
	"context"
	"net/http"
	"net/url"

	"github.com/frahmantamala/hr-portal/db/dbtest"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/transporttest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		gdb         *gorm.DB
		base        *transport.BaseHandler
		router      http.Handler
		employees   *record.Service[employee.Employee]
		departments *record.Service[employee.Department]
		ctx         context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = dbtest.Open()
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		lg := transporttest.Logger()
		employees = record.NewService[employee.Employee]("employee", record.NewStore[employee.Employee](gdb), lg)
		departments = record.NewService[employee.Department]("department", record.NewStore[employee.Department](gdb), lg)
		roles := record.NewService[employee.Role]("role", record.NewStore[employee.Role](gdb), lg)

		base = transporttest.NewBase()
		handler := employee.NewHandler(base, employees, departments, roles)
		router = transporttest.Router(base, handler.Mount)
	})

	AfterEach(func() {
		dbtest.Close(gdb)
	})

	create := func(first, last, email string) *employee.Employee {
		e := &employee.Employee{
			FirstName: first,
			LastName:  last,
			Email:     email,
			StartDate: datatype.NewDate(2024, 1, 15),
			Status:    employee.StatusActive,
		}
		Expect(employees.Create(ctx, e)).To(Succeed())
		return e
	}

	Context("creating an employee", func() {
		It("stores a valid submission and redirects with a success flash", func() {
			w := transporttest.PostForm(router, "/employees/new", url.Values{
				"first_name": {"Ada"},
				"last_name":  {"Lovelace"},
				"email":      {"  Ada@Example.com "},
				"start_date": {"2024-03-01"},
			})

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/employees"))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Employee created."))

			list, err := employees.List(ctx, employee.ListOrder)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].FullName()).To(Equal("Ada Lovelace"))
			Expect(list[0].Email).To(Equal("ada@example.com"))
			Expect(list[0].Status).To(Equal(employee.StatusActive))
			Expect(list[0].StartDate.String()).To(Equal("2024-03-01"))
		})

		It("re-renders the form with the input preserved when required fields are missing", func() {
			w := transporttest.PostForm(router, "/employees/new", url.Values{
				"first_name": {"Ada"},
				"start_date": {"2024-03-01"},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("First name, last name, email, and start date are required."))
			Expect(w.Body.String()).To(ContainSubstring(`value="Ada"`))

			n, err := employees.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})

		It("rejects a malformed start date", func() {
			w := transporttest.PostForm(router, "/employees/new", url.Values{
				"first_name": {"Ada"},
				"last_name":  {"Lovelace"},
				"email":      {"ada@example.com"},
				"start_date": {"03/01/2024"},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Invalid start date format."))
		})

		It("reports a duplicate email as a form error", func() {
			create("Grace", "Hopper", "grace@example.com")

			w := transporttest.PostForm(router, "/employees/new", url.Values{
				"first_name": {"Grace"},
				"last_name":  {"Hopper"},
				"email":      {"grace@example.com"},
				"start_date": {"2024-03-01"},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Employee already exists."))
		})
	})

	Context("updating an employee", func() {
		It("overwrites only the submitted fields", func() {
			e := create("Alan", "Turing", "alan@example.com")

			w := transporttest.PostForm(router, "/employees/"+itoa(e.ID)+"/edit", url.Values{
				"phone":  {"555-0100"},
				"status": {"on-leave"},
			})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Employee updated."))

			got, err := employees.Get(ctx, e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FirstName).To(Equal("Alan"))
			Expect(got.Phone).To(Equal("555-0100"))
			Expect(got.Status).To(Equal(employee.StatusOnLeave))
		})

		It("renders the not found page for an unknown id", func() {
			w := transporttest.Get(router, "/employees/999/edit")
			Expect(w.Code).To(Equal(http.StatusNotFound))

			w = transporttest.Get(router, "/employees/abc/edit")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("leaves the editing employee out of the manager choices", func() {
			a := create("Alan", "Turing", "alan@example.com")
			create("Grace", "Hopper", "grace@example.com")

			w := transporttest.Get(router, "/employees/"+itoa(a.ID)+"/edit")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Grace Hopper"))
			Expect(w.Body.String()).NotTo(ContainSubstring(">Alan Turing<"))
		})
	})

	Context("deleting an employee", func() {
		It("removes the record and answers 404 the second time", func() {
			e := create("Ada", "Lovelace", "ada@example.com")

			w := transporttest.PostForm(router, "/employees/"+itoa(e.ID)+"/delete", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Employee deleted."))

			w = transporttest.PostForm(router, "/employees/"+itoa(e.ID)+"/delete", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("clears the department of employees when the department goes away", func() {
			d := &employee.Department{Name: "Engineering"}
			Expect(departments.Create(ctx, d)).To(Succeed())
			e := create("Ada", "Lovelace", "ada@example.com")
			e.DepartmentID = &d.ID
			Expect(employees.Update(ctx, e)).To(Succeed())

			w := transporttest.PostForm(router, "/departments/"+itoa(d.ID)+"/delete", nil)
			Expect(w.Code).To(Equal(http.StatusFound))

			got, err := employees.Get(ctx, e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.DepartmentID).To(BeNil())
		})
	})

	Context("departments and roles", func() {
		It("adds a department", func() {
			w := transporttest.PostForm(router, "/departments/new", url.Values{"name": {"People"}, "location": {"Remote"}})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(transporttest.Messages(base, w)).To(ConsistOf("Department added."))
		})

		It("refuses a duplicate department name", func() {
			Expect(departments.Create(ctx, &employee.Department{Name: "People"})).To(Succeed())

			w := transporttest.PostForm(router, "/departments/new", url.Values{"name": {"People"}})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Department already exists."))
		})

		It("requires a role title", func() {
			w := transporttest.PostForm(router, "/roles/new", url.Values{"level": {"L3"}})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Role title is required."))
		})
	})

	It("lists employees ordered by last name", func() {
		create("Grace", "Hopper", "grace@example.com")
		create("Ada", "Lovelace", "ada@example.com")
		create("Charles", "Babbage", "charles@example.com")

		w := transporttest.Get(router, "/employees")
		Expect(w.Code).To(Equal(http.StatusOK))

		body := w.Body.String()
		Expect(indexOf(body, "Charles Babbage")).To(BeNumerically("<", indexOf(body, "Grace Hopper")))
		Expect(indexOf(body, "Grace Hopper")).To(BeNumerically("<", indexOf(body, "Ada Lovelace")))
	})
})
