// Package calendar implements the date arithmetic used for stay
// durations and availability windows. Dates are plain (day, month,
// year) triples compared through an absolute day count rather than
// time.Time, so the package never applies timezone or normalization
// rules to its input.
package calendar

import (
	"errors"  // errors defines the parse failure sentinel
	"fmt"     // fmt formats dates back into DD/MM/YYYY
	"strconv" // strconv parses the numeric date components
	"strings" // strings splits the DD/MM/YYYY form
	"time"    // time supplies the current date for Today
)

// daysPerMonth holds the day count of each month in a common year.
// Index 0 is unused so that month numbers index directly.
var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ErrInvalidDate is returned by Parse when the input is not three
// numeric fields separated by slashes.
var ErrInvalidDate = errors.New("invalid date, want DD/MM/YYYY")

// Date is a Gregorian calendar date. The zero value is not a valid
// date; callers obtain dates from Parse, New or Today.
type Date struct {
	Day   int
	Month int
	Year  int
}

// New builds a Date from its components without validating them.
func New(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// Parse converts a DD/MM/YYYY string into a Date. Only the shape of
// the input is checked; calendar plausibility (such as day 31 in
// February) is deliberately not validated, matching AbsoluteDay.
func Parse(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, ErrInvalidDate
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	if day <= 0 || month <= 0 || year <= 0 {
		return Date{}, ErrInvalidDate
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return Date{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
}

// String renders the date in the DD/MM/YYYY wire format.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible
// by 4 and not by 100, unless also divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// AbsoluteDay maps a date to a monotonically increasing day count
// since year 0: 365 days per completed year plus one per prior leap
// year, plus the completed months of the current year, plus the day
// of month. The input is taken at face value; an implausible date
// still yields a numerically consistent count.
func AbsoluteDay(d Date) int {
	days := 0
	for y := 0; y < d.Year; y++ {
		days += 365
		if IsLeapYear(y) {
			days++
		}
	}
	for m := 1; m < d.Month && m < len(daysPerMonth); m++ {
		days += daysPerMonth[m]
	}
	if d.Month > 2 && IsLeapYear(d.Year) {
		days++
	}
	return days + d.Day
}

// NightsBetween returns the number of nights separating two dates as
// an absolute difference. It carries no ordering information; callers
// that care which date comes first must compare AbsoluteDay values
// themselves.
func NightsBetween(a, b Date) int {
	n := AbsoluteDay(b) - AbsoluteDay(a)
	if n < 0 {
		n = -n
	}
	return n
}

// Before reports whether a falls strictly earlier than b in absolute
// day terms.
func Before(a, b Date) bool {
	return AbsoluteDay(a) < AbsoluteDay(b)
}
