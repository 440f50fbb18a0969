package employee

import (
	"context"
	"strconv"

	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

// ListOrder is the natural ordering of employees everywhere they are listed.
var ListOrder = record.ListOptions{Order: []string{"last_name ASC", "first_name ASC", "id ASC"}}

type Handler struct {
	Employees   *crud.Resource[Employee, Input]
	Departments *crud.Resource[Department, DepartmentInput]
	Roles       *crud.Resource[Role, RoleInput]
}

func NewHandler(base *transport.BaseHandler, employees *record.Service[Employee], departments *record.Service[Department], roles *record.Service[Role]) *Handler {
	list := ListOrder
	list.Preload = []string{"Department", "Role", "Manager"}

	return &Handler{
		Employees: crud.NewResource(base, employees, crud.Kind[Employee, Input]{
			Singular: "Employee",
			Path:     "/employees",
			List:     list,
			Actions: []view.Link{
				{Label: "Departments", Href: "/departments"},
				{Label: "Roles", Href: "/roles"},
			},
			Fields: []crud.Field{
				{Name: "first_name", Label: "First name", Required: true},
				{Name: "last_name", Label: "Last name", Required: true},
				{Name: "email", Label: "Email", Type: crud.Email, Required: true},
				{Name: "phone", Label: "Phone"},
				{Name: "start_date", Label: "Start date", Type: crud.Date, Required: true},
				{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
				{Name: "department_id", Label: "Department", Type: crud.Select, Options: DepartmentOptions(departments.Repository())},
				{Name: "role_id", Label: "Role", Type: crud.Select, Options: RoleOptions(roles.Repository())},
				{Name: "manager_id", Label: "Manager", Type: crud.Select, Options: Options(employees.Repository())},
			},
			Columns: []crud.Column[Employee]{
				{Header: "Name", Value: func(e *Employee) string { return e.FullName() }},
				{Header: "Email", Value: func(e *Employee) string { return e.Email }},
				{Header: "Department", Value: func(e *Employee) string {
					if e.Department == nil {
						return ""
					}
					return e.Department.Name
				}},
				{Header: "Role", Value: func(e *Employee) string {
					if e.Role == nil {
						return ""
					}
					return e.Role.Title
				}},
				{Header: "Manager", Value: func(e *Employee) string { return NameOf(e.Manager) }},
				{Header: "Start date", Value: func(e *Employee) string { return e.StartDate.String() }},
				{Header: "Status", Value: func(e *Employee) string { return string(e.Status) }},
			},
			Defaults:  form.Values("status", string(StatusActive)),
			Parse:     ParseInput,
			Apply:     Apply,
			Values:    Values,
			Statuses:  crud.Strings(Statuses),
			Status:    func(e *Employee) string { return string(e.Status) },
			SetStatus: func(e *Employee, s string) { e.Status = Status(s) },
		}),
		Departments: crud.NewResource(base, departments, crud.Kind[Department, DepartmentInput]{
			Singular: "Department",
			Path:     "/departments",
			Nav:      "employees",
			List:     record.ListOptions{Order: []string{"name ASC"}},
			Messages: crud.Messages{Created: "Department added."},
			Fields: []crud.Field{
				{Name: "name", Label: "Name", Required: true},
				{Name: "location", Label: "Location"},
			},
			Columns: []crud.Column[Department]{
				{Header: "Name", Value: func(d *Department) string { return d.Name }},
				{Header: "Location", Value: func(d *Department) string { return d.Location }},
			},
			Parse:  ParseDepartment,
			Apply:  ApplyDepartment,
			Values: DepartmentValues,
		}),
		Roles: crud.NewResource(base, roles, crud.Kind[Role, RoleInput]{
			Singular: "Role",
			Path:     "/roles",
			Nav:      "employees",
			List:     record.ListOptions{Order: []string{"title ASC"}},
			Messages: crud.Messages{Created: "Role added."},
			Fields: []crud.Field{
				{Name: "title", Label: "Title", Required: true},
				{Name: "level", Label: "Level"},
			},
			Columns: []crud.Column[Role]{
				{Header: "Title", Value: func(r *Role) string { return r.Title }},
				{Header: "Level", Value: func(r *Role) string { return r.Level }},
			},
			Parse:  ParseRole,
			Apply:  ApplyRole,
			Values: RoleValues,
		}),
	}
}

func (h *Handler) Mount(r chi.Router) {
	h.Employees.Mount(r)
	h.Departments.Mount(r)
	h.Roles.Mount(r)
}

// Options lists employees by last name for select inputs, leaving out the
// record being edited so nobody becomes their own manager directly.
func Options(repo record.Repository[Employee]) crud.OptionsFunc {
	return func(ctx context.Context, self int64) ([]view.Option, error) {
		people, err := repo.List(ctx, ListOrder)
		if err != nil {
			return nil, err
		}
		opts := make([]view.Option, 0, len(people))
		for i := range people {
			if people[i].ID == self {
				continue
			}
			opts = append(opts, view.Option{Value: strconv.FormatInt(people[i].ID, 10), Label: people[i].FullName()})
		}
		return opts, nil
	}
}

// AllOptions is Options without excluding anyone, for records that merely
// reference an employee.
func AllOptions(repo record.Repository[Employee]) crud.OptionsFunc {
	opts := Options(repo)
	return func(ctx context.Context, _ int64) ([]view.Option, error) {
		return opts(ctx, 0)
	}
}

func DepartmentOptions(repo record.Repository[Department]) crud.OptionsFunc {
	return func(ctx context.Context, _ int64) ([]view.Option, error) {
		deps, err := repo.List(ctx, record.ListOptions{Order: []string{"name ASC"}})
		if err != nil {
			return nil, err
		}
		opts := make([]view.Option, len(deps))
		for i, d := range deps {
			opts[i] = view.Option{Value: strconv.FormatInt(d.ID, 10), Label: d.Name}
		}
		return opts, nil
	}
}

func RoleOptions(repo record.Repository[Role]) crud.OptionsFunc {
	return func(ctx context.Context, _ int64) ([]view.Option, error) {
		roles, err := repo.List(ctx, record.ListOptions{Order: []string{"title ASC"}})
		if err != nil {
			return nil, err
		}
		opts := make([]view.Option, len(roles))
		for i, r := range roles {
			label := r.Title
			if r.Level != "" {
				label += " (" + r.Level + ")"
			}
			opts[i] = view.Option{Value: strconv.FormatInt(r.ID, 10), Label: label}
		}
		return opts, nil
	}
}
