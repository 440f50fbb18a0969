// Package form coerces submitted url.Values into typed fields and collects
// field-level errors instead of failing on the first one.
package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/datatype"
	"github.com/shopspring/decimal"
)

// Errors is the ordered list of problems found while parsing one submission.
type Errors []internal.ValidationError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), " ")
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Has reports whether field has at least one error.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns each distinct message once, in the order found.
func (e Errors) Messages() []string {
	seen := make(map[string]bool, len(e))
	out := make([]string, 0, len(e))
	for _, fe := range e {
		if seen[fe.Message] {
			continue
		}
		seen[fe.Message] = true
		out = append(out, fe.Message)
	}
	return out
}

// AppError wraps the errors in the validation envelope, or returns nil.
func (e Errors) AppError() *internal.AppError {
	if e.Empty() {
		return nil
	}
	return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
		WithDetails(internal.ValidationErrors{Errors: e})
}

type Parser struct {
	values url.Values
	errs   Errors
}

func NewParser(values url.Values) *Parser {
	if values == nil {
		values = url.Values{}
	}
	return &Parser{values: values}
}

func (p *Parser) add(field, message string, code internal.ErrorCode) {
	p.errs = append(p.errs, internal.ValidationError{Field: field, Message: message, Code: string(code)})
}

// Fail records a form-level or field-level error.
func (p *Parser) Fail(field, message string) {
	p.add(field, message, internal.ErrCodeValidationFailed)
}

// Check records message against field when ok is false.
func (p *Parser) Check(ok bool, field, message string) {
	if !ok {
		p.add(field, message, internal.ErrCodeInvalidRange)
	}
}

func (p *Parser) Errors() Errors {
	return p.errs
}

func (p *Parser) Valid() bool {
	return len(p.errs) == 0
}

// Has reports whether the field was submitted at all, blank or not.
func (p *Parser) Has(field string) bool {
	_, ok := p.values[field]
	return ok
}

// String returns the trimmed value of field.
func (p *Parser) String(field string) string {
	return strings.TrimSpace(p.values.Get(field))
}

// Text returns the untrimmed value of a free-text field.
func (p *Parser) Text(field string) string {
	return p.values.Get(field)
}

// Default returns the trimmed value of field or def when it is blank.
func (p *Parser) Default(field, def string) string {
	if v := p.String(field); v != "" {
		return v
	}
	return def
}

func (p *Parser) Required(field, message string) string {
	v := p.String(field)
	if v == "" {
		p.add(field, message, internal.ErrCodeRequired)
	}
	return v
}

// Email returns the trimmed, lower-cased value of a required field.
func (p *Parser) Email(field, message string) string {
	return strings.ToLower(p.Required(field, message))
}

// RequiredDate records missing for a blank field and invalid for one that
// does not parse as YYYY-MM-DD.
func (p *Parser) RequiredDate(field, missing, invalid string) datatype.Date {
	raw := p.String(field)
	if raw == "" {
		p.add(field, missing, internal.ErrCodeRequired)
		return datatype.Date{}
	}
	d, err := datatype.ParseDate(raw)
	if err != nil {
		p.add(field, invalid, internal.ErrCodeInvalidDate)
		return datatype.Date{}
	}
	return d
}

// OptionalDate returns nil for a blank field and records message when the
// value does not parse.
func (p *Parser) OptionalDate(field, message string) *datatype.Date {
	raw := p.String(field)
	if raw == "" {
		return nil
	}
	d, err := datatype.ParseDate(raw)
	if err != nil {
		p.add(field, message, internal.ErrCodeInvalidDate)
		return nil
	}
	return &d
}

func (p *Parser) OptionalClock(field, message string) *datatype.Clock {
	raw := p.String(field)
	if raw == "" {
		return nil
	}
	c, err := datatype.ParseClock(raw)
	if err != nil {
		p.add(field, message, internal.ErrCodeInvalidTime)
		return nil
	}
	return &c
}

// RequiredID parses a positive record identity.
func (p *Parser) RequiredID(field, message string) int64 {
	raw := p.String(field)
	id, err := strconv.ParseInt(raw, 10, 64)
	if raw == "" || err != nil || id <= 0 {
		p.add(field, message, internal.ErrCodeRequired)
		return 0
	}
	return id
}

// OptionalID returns nil for a blank reference.
func (p *Parser) OptionalID(field, message string) *int64 {
	raw := p.String(field)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		p.add(field, message, internal.ErrCodeInvalidNumber)
		return nil
	}
	return &id
}

func (p *Parser) OptionalInt(field, message string) *int {
	raw := p.String(field)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.add(field, message, internal.ErrCodeInvalidNumber)
		return nil
	}
	return &n
}

// Decimal parses a money amount, returning def for a blank field.
func (p *Parser) Decimal(field string, def decimal.Decimal, message string) decimal.Decimal {
	raw := p.String(field)
	if raw == "" {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.add(field, message, internal.ErrCodeInvalidNumber)
		return def
	}
	return d
}

func (p *Parser) RequiredDecimal(field, message string) decimal.Decimal {
	if p.String(field) == "" {
		p.add(field, message, internal.ErrCodeRequired)
		return decimal.Zero
	}
	return p.Decimal(field, decimal.Zero, message)
}

// Choice returns the value of field when it belongs to allowed, def when the
// field is blank, and records message otherwise.
func Choice[S ~string](p *Parser, field string, def S, allowed []S, message string) S {
	raw := p.String(field)
	if raw == "" {
		return def
	}
	for _, a := range allowed {
		if string(a) == raw {
			return a
		}
	}
	p.add(field, message, internal.ErrCodeInvalidChoice)
	return def
}

// Merge overlays submitted on top of base. Keys absent from submitted keep the
// base value, which gives updates their partial-overwrite behaviour.
func Merge(base, submitted url.Values) url.Values {
	out := make(url.Values, len(base)+len(submitted))
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range submitted {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Values builds url.Values from alternating key/value pairs.
func Values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func FormatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func FormatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
