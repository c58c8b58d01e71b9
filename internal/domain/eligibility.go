package domain

import "time"

// Residency rule constants. Permanent residents may file Form N-400 after five
// years of residency, and USCIS accepts filings up to 90 days early.
const (
	ResidencyYears  = 5
	EarlyFilingDays = 90
)

// Earliest accepted green card issue date (01/01/1900).
const (
	MinGreenCardYear  = 1900
	MinGreenCardMonth = time.January
	MinGreenCardDay   = 1
)

// Clock abstracts time.Now() so "today" can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// EligibilityInput is a validated permanent-residency issuance date.
type EligibilityInput struct {
	GreenCardDate time.Time
}

// EligibilityResult is the outcome of one eligibility calculation.
// swagger:model EligibilityResult
type EligibilityResult struct {
	EligibilityDate time.Time `json:"eligibility_date"`
	DaysRemaining   int       `json:"days_remaining"`
	CanApplyNow     bool      `json:"can_apply_now"`
}

// CalculateEligibility returns the earliest N-400 filing date for the given
// green card date: five calendar years later, minus 90 calendar days.
// today is normalized to the start of its day. The caller is responsible for
// range-checking greenCardDate; any calendar date is accepted.
func CalculateEligibility(greenCardDate, today time.Time) EligibilityResult {
	start := StartOfDay(greenCardDate)
	fiveYearsLater := AddYearsClamped(start, ResidencyYears)
	eligibilityDate := fiveYearsLater.AddDate(0, 0, -EarlyFilingDays)
	days := DaysBetween(StartOfDay(today), eligibilityDate)
	return EligibilityResult{
		EligibilityDate: eligibilityDate,
		DaysRemaining:   days,
		CanApplyNow:     days <= 0,
	}
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddYearsClamped adds years to t keeping month and day. A Feb 29 source date
// lands on Feb 28 when the target year is not a leap year, instead of rolling
// over into March the way time.AddDate does.
func AddYearsClamped(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	target := y + years
	if m == time.February && d == 29 && !isLeapYear(target) {
		d = 28
	}
	hh, mm, ss := t.Clock()
	return time.Date(target, m, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// MinGreenCardDate returns 01/01/1900 at midnight in loc.
func MinGreenCardDate(loc *time.Location) time.Time {
	return time.Date(MinGreenCardYear, MinGreenCardMonth, MinGreenCardDay, 0, 0, 0, 0, loc)
}

// InGreenCardRange reports whether d falls on a calendar day between
// 01/01/1900 and today, both inclusive.
func InGreenCardRange(d, today time.Time) bool {
	return DaysBetween(MinGreenCardDate(d.Location()), d) >= 0 && DaysBetween(d, today) >= 0
}

// DaysBetween counts calendar days from 'from' to 'to'. The result is negative
// when 'to' is before 'from'. Only the calendar dates matter, so DST shifts in
// the location do not produce off-by-one results.
func DaysBetween(from, to time.Time) int {
	return civilDays(to.Date()) - civilDays(from.Date())
}

// civilDays is the number of days since 1970-01-01 in the proleptic Gregorian
// calendar.
func civilDays(y int, m time.Month, d int) int {
	if m <= time.February {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (int(m) + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
