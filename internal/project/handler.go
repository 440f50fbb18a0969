package project

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/employee"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/crud"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

type Handler struct {
	Projects    *crud.Resource[Project, Input]
	Assignments *crud.Resource[Assignment, AssignmentInput]
}

func NewHandler(base *transport.BaseHandler, projects *record.Service[Project], assignments *record.Service[Assignment], employees record.Repository[employee.Employee]) *Handler {
	return &Handler{
		Projects: crud.NewResource(base, projects, crud.Kind[Project, Input]{
			Singular: "Project",
			Path:     "/projects",
			List: record.ListOptions{
				Order:   []string{"start_date IS NULL", "start_date DESC", "name ASC"},
				Preload: []string{"Assignments", "Assignments.Employee"},
			},
			Actions: []view.Link{{Label: "Assignments", Href: "/assignments"}},
			Fields: []crud.Field{
				{Name: "name", Label: "Name", Required: true},
				{Name: "description", Label: "Description", Type: crud.TextArea},
				{Name: "status", Label: "Status", Type: crud.Select, Required: true, Choices: crud.Strings(Statuses)},
				{Name: "start_date", Label: "Start date", Type: crud.Date},
				{Name: "end_date", Label: "End date", Type: crud.Date},
			},
			Columns: []crud.Column[Project]{
				{Header: "Name", Value: func(p *Project) string { return p.Name }},
				{Header: "Start", Value: func(p *Project) string { return datatype.FormatDate(p.StartDate) }},
				{Header: "End", Value: func(p *Project) string { return datatype.FormatDate(p.EndDate) }},
				{Header: "Team", Value: team},
			},
			Links: func(p *Project) []view.Link {
				return []view.Link{{Label: "Assign", Href: fmt.Sprintf("/assignments/new?project_id=%d", p.ID)}}
			},
			Defaults:  form.Values("status", string(StatusPlanned)),
			Parse:     ParseInput,
			Apply:     Apply,
			Values:    Values,
			Statuses:  crud.Strings(Statuses),
			Status:    func(p *Project) string { return string(p.Status) },
			SetStatus: func(p *Project, s string) { p.Status = Status(s) },
		}),
		Assignments: crud.NewResource(base, assignments, crud.Kind[Assignment, AssignmentInput]{
			Singular: "Assignment",
			Path:     "/assignments",
			Nav:      "projects",
			List: record.ListOptions{
				Order:   []string{"project_id ASC", "id ASC"},
				Preload: []string{"Project", "Employee"},
			},
			Messages: crud.Messages{
				Created: "Assignment added.",
				Deleted: "Assignment removed.",
			},
			Fields: []crud.Field{
				{Name: "project_id", Label: "Project", Type: crud.Select, Required: true, Options: options(projects.Repository())},
				{Name: "employee_id", Label: "Employee", Type: crud.Select, Required: true, Options: employee.AllOptions(employees)},
				{Name: "role", Label: "Role"},
				{Name: "allocation", Label: "Allocation (%)", Type: crud.Number},
			},
			Columns: []crud.Column[Assignment]{
				{Header: "Project", Value: func(a *Assignment) string {
					if a.Project == nil {
						return ""
					}
					return a.Project.Name
				}},
				{Header: "Employee", Value: func(a *Assignment) string { return employee.NameOf(a.Employee) }},
				{Header: "Role", Value: func(a *Assignment) string { return a.Role }},
				{Header: "Allocation", Value: func(a *Assignment) string { return allocation(a.Allocation) }},
			},
			Parse:  ParseAssignment,
			Apply:  ApplyAssignment,
			Values: AssignmentValues,
		}),
	}
}

func (h *Handler) Mount(r chi.Router) {
	h.Projects.Mount(r, func(sr chi.Router) {
		sr.Post("/{id}/assign", h.Assign)
	})
	h.Assignments.Mount(r)
}

// Assign adds an assignment to the project named in the path and returns to
// the project list either way.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.Projects.NotFound(w, r)
		return
	}
	if _, err := h.Projects.Service.Get(r.Context(), id); err != nil {
		h.Projects.Fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Projects.Fail(w, r, internal.NewValidationError("malformed form body", internal.ErrCodeValidationFailed))
		return
	}

	values := form.Merge(r.PostForm, form.Values("project_id", strconv.FormatInt(id, 10)))
	_, errs, err := h.Assignments.Insert(r.Context(), values)
	if err != nil {
		h.Projects.Fail(w, r, err)
		return
	}
	if !errs.Empty() {
		h.Projects.FlashRedirect(w, r, session.FlashDanger, strings.Join(errs.Messages(), " "), "/projects")
		return
	}
	h.Projects.FlashRedirect(w, r, session.FlashSuccess, "Assignment added.", "/projects")
}

func options(repo record.Repository[Project]) crud.OptionsFunc {
	return func(ctx context.Context, _ int64) ([]view.Option, error) {
		projects, err := repo.List(ctx, record.ListOptions{Order: []string{"name ASC"}})
		if err != nil {
			return nil, err
		}
		opts := make([]view.Option, len(projects))
		for i, p := range projects {
			opts[i] = view.Option{Value: strconv.FormatInt(p.ID, 10), Label: p.Name}
		}
		return opts, nil
	}
}

func team(p *Project) string {
	names := make([]string, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		if a.Employee == nil {
			continue
		}
		name := a.Employee.FullName()
		if a.Allocation != nil {
			name += " (" + allocation(a.Allocation) + ")"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func allocation(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n) + "%"
}
