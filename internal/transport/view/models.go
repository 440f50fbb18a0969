package view

// ListView is the generic table page shared by every record kind.
type ListView struct {
	Heading  string
	Path     string
	NewLabel string
	Actions  []Link
	Columns  []string
	Rows     []Row
	Filter   *Filter
	Empty    string
}

type Row struct {
	ID     int64
	Cells  []string
	Status *StatusControl
	Links  []Link
}

// StatusControl renders an inline status-only update form for a row.
type StatusControl struct {
	Action  string
	Current string
	Options []string
}

type Link struct {
	Label string
	Href  string
}

// Filter is a single GET query parameter narrowing a list.
type Filter struct {
	Name  string
	Label string
	Type  string
	Value string
}

// FormView is the generic create/edit page.
type FormView struct {
	Heading string
	Action  string
	Cancel  string
	Submit  string
	Errors  []string
	Fields  []FieldView
	Hidden  []Hidden
}

type FieldView struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
	Invalid  bool
	Options  []Option
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Hidden struct {
	Name  string
	Value string
}
