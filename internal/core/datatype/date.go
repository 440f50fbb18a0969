// Package datatype holds the column types shared by every record kind.
package datatype

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or zone, always held at UTC
// midnight. Storage goes through datatypes.Date.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return datatypes.Date(d.Time).Value()
}

// Scan accepts whatever datatypes.Date accepts. Plain YYYY-MM-DD text is
// also read, for rows written by other tools into TEXT columns.
func (d *Date) Scan(value any) error {
	var stored datatypes.Date
	if err := stored.Scan(value); err == nil {
		t := time.Time(stored)
		if t.IsZero() {
			*d = Date{}
			return nil
		}
		*d = DateOf(t)
		return nil
	}

	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("datatype: cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("datatype: invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// FormatDate renders an optional date, empty when absent.
func FormatDate(d *Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
