// Package crud serves the list, create, update and delete pages of a record
// kind. A kind only describes its fields, columns and parsing; the request
// flow is the same for all of them.
package crud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/form"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

// Field input types understood by the form page.
const (
	Text     = "text"
	Email    = "email"
	Date     = "date"
	Time     = "time"
	Number   = "number"
	TextArea = "textarea"
	Select   = "select"
)

// OptionsFunc loads select options. self is the identity of the record being
// edited, zero on create.
type OptionsFunc func(ctx context.Context, self int64) ([]view.Option, error)

type Field struct {
	Name     string
	Label    string
	Type     string
	Required bool
	Choices  []string
	Options  OptionsFunc
}

type Column[T any] struct {
	Header string
	Value  func(*T) string
}

type Messages struct {
	Created   string
	Updated   string
	Deleted   string
	Duplicate string
	Status    string
}

type Kind[T record.Record, In any] struct {
	// Singular is the human name of one record, e.g. "Employee".
	Singular string
	Title    string
	Path     string
	Nav      string
	Fields   []Field
	Columns  []Column[T]
	List     record.ListOptions
	Preload  []string
	Defaults url.Values
	Messages Messages

	Parse  func(url.Values) (In, form.Errors)
	Apply  func(In, *T)
	Values func(*T) url.Values

	// Enrich fills request-derived defaults into a create submission.
	Enrich func(ctx context.Context, values url.Values)
	Filter func(r *http.Request, opts record.ListOptions) (record.ListOptions, *view.Filter)
	Links  func(*T) []view.Link
	// Actions are extra links shown next to the "new" button.
	Actions []view.Link

	Statuses  []string
	Status    func(*T) string
	SetStatus func(*T, string)

	// Return is where writes redirect to, Path when empty.
	Return string
}

type Resource[T record.Record, In any] struct {
	*transport.BaseHandler
	Kind    Kind[T, In]
	Service *record.Service[T]
}

func NewResource[T record.Record, In any](base *transport.BaseHandler, svc *record.Service[T], kind Kind[T, In]) *Resource[T, In] {
	if kind.Title == "" {
		kind.Title = kind.Singular + "s"
	}
	if kind.Return == "" {
		kind.Return = kind.Path
	}
	if kind.Nav == "" {
		kind.Nav = strings.TrimPrefix(kind.Path, "/")
	}
	m := &kind.Messages
	if m.Created == "" {
		m.Created = kind.Singular + " created."
	}
	if m.Updated == "" {
		m.Updated = kind.Singular + " updated."
	}
	if m.Deleted == "" {
		m.Deleted = kind.Singular + " deleted."
	}
	if m.Duplicate == "" {
		m.Duplicate = kind.Singular + " already exists."
	}
	if m.Status == "" {
		m.Status = "Status updated."
	}
	return &Resource[T, In]{BaseHandler: base, Kind: kind, Service: svc}
}

// Mount registers the record routes under Kind.Path. extra adds routes to
// the same sub-router.
func (res *Resource[T, In]) Mount(r chi.Router, extra ...func(chi.Router)) {
	r.Route(res.Kind.Path, func(sr chi.Router) {
		sr.Get("/", res.List)
		sr.Post("/", res.Create)
		sr.Get("/new", res.New)
		sr.Post("/new", res.Create)
		sr.Get("/{id}/edit", res.Edit)
		sr.Post("/{id}/edit", res.Update)
		sr.Post("/{id}/delete", res.Delete)
		if res.Kind.SetStatus != nil {
			sr.Post("/{id}/status", res.UpdateStatus)
		}
		for _, fn := range extra {
			fn(sr)
		}
	})
}

// Insert parses values and persists a new record. Validation and storage
// constraint problems come back as form errors; anything else as err.
func (res *Resource[T, In]) Insert(ctx context.Context, values url.Values) (*T, form.Errors, error) {
	values = form.Merge(url.Values{}, values)
	if res.Kind.Enrich != nil {
		res.Kind.Enrich(ctx, values)
	}

	in, errs := res.Kind.Parse(values)
	if !errs.Empty() {
		return nil, errs, nil
	}

	rec := new(T)
	res.Kind.Apply(in, rec)
	if err := res.Service.Create(ctx, rec); err != nil {
		if msg, ok := res.constraintMessage(err); ok {
			return nil, form.Errors{{Message: msg}}, nil
		}
		return nil, nil, err
	}
	return rec, nil, nil
}

// Modify applies values over the stored record as a partial overwrite.
// It returns the merged values so a failed submission can be re-rendered.
func (res *Resource[T, In]) Modify(ctx context.Context, id int64, values url.Values) (*T, url.Values, form.Errors, error) {
	rec, err := res.Service.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	merged := form.Merge(res.Kind.Values(rec), values)
	in, errs := res.Kind.Parse(merged)
	if !errs.Empty() {
		return nil, merged, errs, nil
	}

	res.Kind.Apply(in, rec)
	if err := res.Service.Update(ctx, rec); err != nil {
		if msg, ok := res.constraintMessage(err); ok {
			return nil, merged, form.Errors{{Message: msg}}, nil
		}
		return nil, merged, nil, err
	}
	return rec, merged, nil, nil
}

func (res *Resource[T, In]) List(w http.ResponseWriter, r *http.Request) {
	opts := res.Kind.List
	var filter *view.Filter
	if res.Kind.Filter != nil {
		opts, filter = res.Kind.Filter(r, opts)
	}

	recs, err := res.Service.List(r.Context(), opts)
	if err != nil {
		res.Fail(w, r, err)
		return
	}

	lv := view.ListView{
		Heading:  res.Kind.Title,
		Path:     res.Kind.Path,
		NewLabel: "New " + strings.ToLower(res.Kind.Singular),
		Actions:  res.Kind.Actions,
		Filter:   filter,
		Empty:    fmt.Sprintf("No %s yet.", strings.ToLower(res.Kind.Title)),
	}
	for _, c := range res.Kind.Columns {
		lv.Columns = append(lv.Columns, c.Header)
	}
	for i := range recs {
		lv.Rows = append(lv.Rows, res.row(&recs[i]))
	}

	res.Render(w, r, http.StatusOK, "list", view.Page{Title: res.Kind.Title, Nav: res.Kind.Nav, Data: lv})
}

func (res *Resource[T, In]) New(w http.ResponseWriter, r *http.Request) {
	values := form.Merge(res.Kind.Defaults, r.URL.Query())
	res.renderForm(w, r, 0, values, nil)
}

func (res *Resource[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		res.Fail(w, r, internal.NewValidationError("malformed form body", internal.ErrCodeValidationFailed))
		return
	}

	_, errs, err := res.Insert(r.Context(), r.PostForm)
	if err != nil {
		res.Fail(w, r, err)
		return
	}
	if !errs.Empty() {
		res.renderForm(w, r, 0, r.PostForm, errs)
		return
	}
	res.FlashRedirect(w, r, session.FlashSuccess, res.Kind.Messages.Created, res.Kind.Return)
}

func (res *Resource[T, In]) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	rec, err := res.Service.Get(r.Context(), id)
	if err != nil {
		res.Fail(w, r, err)
		return
	}
	res.renderForm(w, r, id, res.Kind.Values(rec), nil)
}

func (res *Resource[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		res.Fail(w, r, internal.NewValidationError("malformed form body", internal.ErrCodeValidationFailed))
		return
	}

	_, merged, errs, err := res.Modify(r.Context(), id, r.PostForm)
	if err != nil {
		res.Fail(w, r, err)
		return
	}
	if !errs.Empty() {
		res.renderForm(w, r, id, merged, errs)
		return
	}
	res.FlashRedirect(w, r, session.FlashSuccess, res.Kind.Messages.Updated, res.Kind.Return)
}

func (res *Resource[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	if err := res.Service.Delete(r.Context(), id); err != nil {
		res.Fail(w, r, err)
		return
	}
	res.FlashRedirect(w, r, session.FlashInfo, res.Kind.Messages.Deleted, res.Kind.Return)
}

// UpdateStatus changes only the status of a record, checked against the
// kind's allow-list. Any transition between allowed values is accepted.
func (res *Resource[T, In]) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	rec, err := res.Service.Get(r.Context(), id)
	if err != nil {
		res.Fail(w, r, err)
		return
	}

	status := strings.TrimSpace(r.PostFormValue("status"))
	if status == "" && res.Kind.Status != nil {
		status = res.Kind.Status(rec)
	}
	if !contains(res.Kind.Statuses, status) {
		res.FlashRedirect(w, r, session.FlashDanger, "Invalid status.", res.Kind.Return)
		return
	}

	res.Kind.SetStatus(rec, status)
	if err := res.Service.Update(r.Context(), rec); err != nil {
		res.Fail(w, r, err)
		return
	}
	res.FlashRedirect(w, r, session.FlashInfo, res.Kind.Messages.Status, res.Kind.Return)
}

func (res *Resource[T, In]) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		res.NotFound(w, r)
		return 0, false
	}
	return id, true
}

func (res *Resource[T, In]) row(rec *T) view.Row {
	id := (*rec).RecordID()
	row := view.Row{ID: id}
	for _, c := range res.Kind.Columns {
		row.Cells = append(row.Cells, c.Value(rec))
	}
	if res.Kind.SetStatus != nil && res.Kind.Status != nil {
		row.Status = &view.StatusControl{
			Action:  fmt.Sprintf("%s/%d/status", res.Kind.Path, id),
			Current: res.Kind.Status(rec),
			Options: res.Kind.Statuses,
		}
	}
	if res.Kind.Links != nil {
		row.Links = res.Kind.Links(rec)
	}
	return row
}

func (res *Resource[T, In]) renderForm(w http.ResponseWriter, r *http.Request, id int64, values url.Values, errs form.Errors) {
	fv := view.FormView{
		Heading: "New " + strings.ToLower(res.Kind.Singular),
		Action:  res.Kind.Path + "/new",
		Cancel:  res.Kind.Return,
		Submit:  "Save",
		Errors:  errs.Messages(),
	}
	if id > 0 {
		fv.Heading = "Edit " + strings.ToLower(res.Kind.Singular)
		fv.Action = fmt.Sprintf("%s/%d/edit", res.Kind.Path, id)
	}

	fields, err := BuildFields(r.Context(), res.Kind.Fields, id, values, errs)
	if err != nil {
		res.Fail(w, r, err)
		return
	}
	fv.Fields = fields

	res.Render(w, r, http.StatusOK, "form", view.Page{Title: fv.Heading, Nav: res.Kind.Nav, Data: fv})
}

// BuildFields turns field descriptors into form inputs carrying the current
// values and error markers.
func BuildFields(ctx context.Context, fields []Field, id int64, values url.Values, errs form.Errors) ([]view.FieldView, error) {
	out := make([]view.FieldView, 0, len(fields))
	for _, f := range fields {
		fv := view.FieldView{
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Type,
			Value:    values.Get(f.Name),
			Required: f.Required,
			Invalid:  errs.Has(f.Name),
		}
		if fv.Type == "" {
			fv.Type = Text
		}

		var opts []view.Option
		switch {
		case f.Options != nil:
			loaded, err := f.Options(ctx, id)
			if err != nil {
				return nil, err
			}
			opts = loaded
		case len(f.Choices) > 0:
			for _, c := range f.Choices {
				opts = append(opts, view.Option{Value: c, Label: c})
			}
		}
		for i := range opts {
			opts[i].Selected = opts[i].Value == fv.Value
		}
		fv.Options = opts
		out = append(out, fv)
	}
	return out, nil
}

func (res *Resource[T, In]) constraintMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, internal.ErrDuplicateRecord):
		return res.Kind.Messages.Duplicate, true
	case errors.Is(err, internal.ErrInvalidReference):
		return internal.ErrInvalidReference.Message, true
	}
	return "", false
}

// Strings converts a typed enumeration into its string values.
func Strings[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
