package document

import (
	"fmt"
	"strings"
	"time"
)

// Date is a TOML local date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a TOML local time.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Offset is a UTC offset in minutes.
type Offset struct {
	Minutes int
}

// DateTime is a TOML date-time. A nil Offset denotes a local date-time.
type DateTime struct {
	Date   Date
	Time   Time
	Offset *Offset
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// TimeOf returns the clock time of t in t's location.
func TimeOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// DateTimeOf returns an offset date-time for t.
func DateTimeOf(t time.Time) DateTime {
	_, secs := t.Zone()
	return DateTime{Date: DateOf(t), Time: TimeOf(t), Offset: &Offset{Minutes: secs / 60}}
}

// ToTime returns midnight UTC of d.
func (d Date) ToTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// ToTime returns dt as a time.Time. Local date-times are interpreted as UTC.
func (dt DateTime) ToTime() time.Time {
	loc := time.UTC
	if dt.Offset != nil && dt.Offset.Minutes != 0 {
		loc = time.FixedZone("", dt.Offset.Minutes*60)
	}
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, loc)
}

// Equal compares two date-times field by field. Offsets compare by value.
func (dt DateTime) Equal(o DateTime) bool {
	if dt.Date != o.Date || dt.Time != o.Time {
		return false
	}
	if dt.Offset == nil || o.Offset == nil {
		return dt.Offset == nil && o.Offset == nil
	}
	return *dt.Offset == *o.Offset
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

func (o Offset) String() string {
	if o.Minutes == 0 {
		return "Z"
	}
	sign := '+'
	m := o.Minutes
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
}

func (dt DateTime) String() string {
	var b strings.Builder
	b.WriteString(dt.Date.String())
	b.WriteByte('T')
	b.WriteString(dt.Time.String())
	if dt.Offset != nil {
		b.WriteString(dt.Offset.String())
	}
	return b.String()
}
