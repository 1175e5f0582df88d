package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is returned when a text can't be parsed as a Timestamp.
var ErrFormat = errors.New("invalid timestamp format")

// Timestamp is a UTC civil calendar date and time, without timezone.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// IsZero returns true when the timestamp is the zero value, this is what a
// degraded clock read returns.
func (t Timestamp) IsZero() bool { return t == Timestamp{} }

// String formats the timestamp as `YYYY-MM-DDThh:mm:ssZ`.
func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Compare returns -1, 0 or +1 depending on t being before, equal or after u.
func (t Timestamp) Compare(u Timestamp) int {
	a := [...]int{t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second}
	b := [...]int{u.Year, u.Month, u.Day, u.Hour, u.Minute, u.Second}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Before returns true when t is before u.
func (t Timestamp) Before(u Timestamp) bool { return t.Compare(u) < 0 }

// Time converts the timestamp to a UTC time.Time. The zero timestamp
// converts to the zero time.
func (t Timestamp) Time() time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// FromTime converts a time.Time to a timestamp in UTC, sub second precision is dropped.
func FromTime(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	t = t.UTC()
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

type timestampField struct {
	name  string
	width int
	min   int
	max   int
	set   func(t *Timestamp, v int)
}

// Order matters, it's the order the values appear in the text.
var timestampFields = []timestampField{
	{name: "year", width: 4, min: epochYear, max: 9999, set: func(t *Timestamp, v int) { t.Year = v }},
	{name: "month", width: 2, min: 1, max: 12, set: func(t *Timestamp, v int) { t.Month = v }},
	{name: "day", width: 2, min: 1, max: 31, set: func(t *Timestamp, v int) { t.Day = v }},
	{name: "hour", width: 2, min: 0, max: 23, set: func(t *Timestamp, v int) { t.Hour = v }},
	{name: "minute", width: 2, min: 0, max: 59, set: func(t *Timestamp, v int) { t.Minute = v }},
	{name: "second", width: 2, min: 0, max: 59, set: func(t *Timestamp, v int) { t.Second = v }},
}

// Parse parses a `YYYY-MM-DDThh:mm:ssZ` text. Only the `Z` suffix is accepted,
// fractional seconds and offsets are not. Every field must be in its
// calendar range, except for the all zero timestamp that is accepted as is.
// Fields have a fixed width (four digits for the year, two for the rest) so
// a parsed text always formats back to the same bytes.
func Parse(s string) (Timestamp, error) {
	raw, ok := strings.CutSuffix(s, "Z")
	if !ok {
		return Timestamp{}, fmt.Errorf("%q missing 'Z' suffix: %w", s, ErrFormat)
	}

	date, tm, ok := strings.Cut(raw, "T")
	if !ok {
		return Timestamp{}, fmt.Errorf("%q missing 'T' separator: %w", s, ErrFormat)
	}

	parts := append(strings.Split(date, "-"), strings.Split(tm, ":")...)
	if len(parts) != len(timestampFields) {
		return Timestamp{}, fmt.Errorf("%q must have %d fields: %w", s, len(timestampFields), ErrFormat)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != timestampFields[i].width {
			return Timestamp{}, fmt.Errorf("%q %s %q must have %d digits: %w", s, timestampFields[i].name, p, timestampFields[i].width, ErrFormat)
		}
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%q invalid %s %q: %w", s, timestampFields[i].name, p, ErrFormat)
		}
		values[i] = int(v)
	}

	var ts Timestamp
	for i, f := range timestampFields {
		f.set(&ts, values[i])
	}
	if ts.IsZero() {
		return ts, nil
	}

	for i, f := range timestampFields {
		if values[i] < f.min || values[i] > f.max {
			return Timestamp{}, fmt.Errorf("%q %s %d out of range [%d, %d]: %w", s, f.name, values[i], f.min, f.max, ErrFormat)
		}
	}

	return ts, nil
}
