// Package view renders the server-side HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Page is the data every template receives.
type Page struct {
	Title   string
	Nav     string
	User    *internal.Principal
	Flashes []session.Flash
	Data    any
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout once per page so that each page can define its own
// "content" block.
func New() (*Renderer, error) {
	entries, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		if entry == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(entry), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(files, layoutFile, entry)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew is New for wiring code and tests that cannot continue without views.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render executes the named page into w. Output is buffered so a template
// error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("view: render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"date":  formatDate,
	"clock": formatClock,
	"money": formatMoney,
	"hours": formatHours,
}

func formatDate(v any) string {
	switch d := v.(type) {
	case datatype.Date:
		return d.String()
	case *datatype.Date:
		return datatype.FormatDate(d)
	default:
		return ""
	}
}

func formatClock(v any) string {
	switch c := v.(type) {
	case datatype.Clock:
		return c.String()
	case *datatype.Clock:
		return datatype.FormatClock(c)
	default:
		return ""
	}
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatHours(h *float64) string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *h)
}
