package availability

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day. All range checks in this package work at day
// granularity; any time-of-day component is truncated on the way in so
// midnight boundaries can never shift an overlap by one day.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts the two formats the booking API emits: a bare
// "2006-01-02" day or a full RFC3339 timestamp.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q", value)
}

// MustDate is a test / seed helper; it panics on a malformed value.
func MustDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON tolerates null, empty strings and malformed values by
// leaving the date zero; a missing date disables range checks for the
// record instead of failing the whole payload.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints (checkout day equals the
// next check-in day) do not count. Ranges with a missing endpoint
// never overlap anything.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	if aStart.IsZero() || aEnd.IsZero() || bStart.IsZero() || bEnd.IsZero() {
		return false
	}
	return aStart.Before(bEnd.Time) && bStart.Before(aEnd.Time)
}
