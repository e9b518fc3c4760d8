// Package timezone projects absolute instants into the fixed reference zone used by
// bookings and delivery slots, and converts 12-hour "H:MM AM" labels to and from
// minutes since midnight.
//
// The reference zone is a plain UTC offset. It never follows DST rules and never
// depends on the host's local zone.
package timezone

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// NotATime is returned alongside a ParseError so a failed parse can never be
	// mistaken for a real minute of the day.
	NotATime = -1

	// DefaultOffset and DefaultName describe India Standard Time, the deployment's
	// reference zone unless configured otherwise.
	DefaultOffset = 5*time.Hour + 30*time.Minute
	DefaultName   = "IST"

	MinutesPerDay  = 24 * 60
	minutesPerHalf = 12 * 60

	labelLayout = "3:04 PM"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrMissingDate      = errors.New("missing calendar date")
	ErrInvalidDate      = errors.New("invalid calendar date")

	timeOfDayRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2}) ?([AaPp][Mm])$`)
)

// ParseError describes an input that could not be read as a time of day or date.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Normalizer struct {
	loc *time.Location
}

// New builds a normalizer for a fixed offset east of UTC, e.g. 5h30m for IST.
func New(offset time.Duration, name string) *Normalizer {
	return &Normalizer{loc: time.FixedZone(name, int(offset/time.Second))}
}

// Default returns the deployment's reference zone, UTC+05:30.
func Default() *Normalizer {
	return New(DefaultOffset, DefaultName)
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToReferenceZone returns the same instant expressed in the reference zone.
func (n *Normalizer) ToReferenceZone(t time.Time) time.Time {
	return t.In(n.loc)
}

// StartOfDay is reference-zone midnight of the day containing t.
func (n *Normalizer) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(n.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, n.loc)
}

// Combine places a time-of-day label on the reference-zone day containing date.
// The zone date happens to carry never matters: the same instant always lands
// on the same day.
func (n *Normalizer) Combine(date time.Time, label string) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, &ParseError{Input: "", Reason: "date is required", Err: ErrMissingDate}
	}

	minutes, err := ParseTimeOfDay(label)
	if err != nil {
		return time.Time{}, err
	}

	return n.StartOfDay(date).Add(time.Duration(minutes) * time.Minute), nil
}

// FormatRange renders both endpoints in the reference zone for display, e.g.
// "9:00 AM - 10:30 AM IST". It is not meant for comparisons.
func (n *Normalizer) FormatRange(start, end time.Time) string {
	s := n.ToReferenceZone(start)
	e := n.ToReferenceZone(end)
	zone, _ := e.Zone()
	return fmt.Sprintf("%s - %s %s", s.Format(labelLayout), e.Format(labelLayout), zone)
}

// ParseTimeOfDay converts "H:MM AM|PM" into minutes since midnight. The hour may
// carry a leading zero, the space before the meridiem is optional and the
// meridiem is case-insensitive. 12 AM is 0 and 12 PM is 720.
func ParseTimeOfDay(label string) (int, error) {
	match := timeOfDayRegex.FindStringSubmatch(label)
	if match == nil {
		return NotATime, &ParseError{Input: label, Reason: "expected H:MM AM or H:MM PM", Err: ErrInvalidTimeOfDay}
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])

	if hour < 1 || hour > 12 {
		return NotATime, &ParseError{Input: label, Reason: "hour must be between 1 and 12", Err: ErrInvalidTimeOfDay}
	}
	if minute > 59 {
		return NotATime, &ParseError{Input: label, Reason: "minute must be between 00 and 59", Err: ErrInvalidTimeOfDay}
	}

	total := (hour%12)*60 + minute
	if strings.EqualFold(match[3], "PM") {
		total += minutesPerHalf
	}
	return total, nil
}

// FormatTimeOfDay is the inverse of ParseTimeOfDay and yields the canonical label.
func FormatTimeOfDay(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is outside a day", ErrInvalidTimeOfDay, minutes)
	}

	meridiem := "AM"
	if minutes >= minutesPerHalf {
		meridiem = "PM"
	}

	hour := (minutes / 60) % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minutes%60, meridiem), nil
}

// MinuteOfDay reports how many minutes past reference-zone midnight t falls.
func (n *Normalizer) MinuteOfDay(t time.Time) int {
	local := n.ToReferenceZone(t)
	return local.Hour()*60 + local.Minute()
}
