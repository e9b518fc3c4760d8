package model

import (
	"bytes"
	"encoding/json"
	"time"
)

const calendarDateLayout = "2006-01-02"

// CalendarDate is the day a booking falls on. It holds either a plain day
// ("2026-05-10") or a full instant; an instant names whatever day it falls on in
// the zone it is projected into. Input that is neither is kept verbatim and
// reported by Invalid, so decoding never fails on a bad date.
type CalendarDate struct {
	t        time.Time
	dateOnly bool
	raw      string
}

// DateOf is the plain calendar day y-m-d.
func DateOf(y int, m time.Month, d int) CalendarDate {
	return CalendarDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), dateOnly: true}
}

// DateAt is the day containing instant t.
func DateAt(t time.Time) CalendarDate {
	return CalendarDate{t: t}
}

func (c CalendarDate) IsZero() bool {
	return c.t.IsZero() && c.raw == ""
}

// Invalid reports input that could not be read as a date.
func (c CalendarDate) Invalid() bool {
	return c.t.IsZero() && c.raw != ""
}

// Raw is the unreadable input behind an invalid date.
func (c CalendarDate) Raw() string {
	return c.raw
}

// Midnight is the start of this day in loc. A plain day keeps its year, month
// and day; an instant is moved into loc first.
func (c CalendarDate) Midnight(loc *time.Location) time.Time {
	if c.t.IsZero() {
		return time.Time{}
	}
	t := c.t
	if !c.dateOnly {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (c CalendarDate) String() string {
	switch {
	case c.Invalid():
		return c.raw
	case c.IsZero():
		return ""
	case c.dateOnly:
		return c.t.Format(calendarDateLayout)
	default:
		return c.t.Format(time.RFC3339Nano)
	}
}

func (c CalendarDate) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

func (c *CalendarDate) UnmarshalJSON(data []byte) error {
	*c = CalendarDate{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		c.raw = string(data)
		return nil
	}
	if s == "" {
		return nil
	}
	if t, err := time.Parse(calendarDateLayout, s); err == nil {
		*c = CalendarDate{t: t, dateOnly: true}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*c = CalendarDate{t: t}
		return nil
	}
	c.raw = s
	return nil
}
