package datatype

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strings"
	"time"
)

// ClockLayout is the accepted time-of-day format.
const ClockLayout = "15:04"

// Clock is a time of day with minute precision.
type Clock struct {
	minutes int
}

func NewClock(hour, minute int) Clock {
	return Clock{minutes: hour*60 + minute}
}

func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		// postgres TIME columns and browsers with step=1 send seconds
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return Clock{}, err
		}
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) Minutes() int {
	return c.minutes
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *Clock) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*c = NewClock(v.Hour(), v.Minute())
		return nil
	default:
		return fmt.Errorf("datatype: cannot scan %T into Clock", value)
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return fmt.Errorf("datatype: invalid clock %q: %w", s, err)
	}
	*c = parsed
	return nil
}

// FormatClock renders an optional clock, empty when absent.
func FormatClock(c *Clock) string {
	if c == nil {
		return ""
	}
	return c.String()
}

// Hours returns the span between two clocks in hours rounded to two decimals,
// or nil when either side is missing.
func Hours(in, out *Clock) *float64 {
	if in == nil || out == nil {
		return nil
	}
	h := float64(out.minutes-in.minutes) / 60
	h = math.Round(h*100) / 100
	return &h
}
