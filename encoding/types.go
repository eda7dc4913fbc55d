// Package encoding implements the per-type payload codecs used inside a
// dyncol column's data region: variable-width integers, the fixed
// 8-byte double, charset-prefixed strings, and the bit-packed calendar
// types. Each codec only ever sees and produces the bytes for a single
// column's payload; directory bookkeeping lives in package section.
package encoding

import "fmt"

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock is a wall-clock time of day, optionally carrying microseconds.
type Clock struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

func (c Clock) String() string {
	if c.Microsecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", c.Hour, c.Minute, c.Second, c.Microsecond)
	}

	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// DateTime is a combined calendar date and wall-clock time.
type DateTime struct {
	Date
	Clock
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Clock.String()
}
