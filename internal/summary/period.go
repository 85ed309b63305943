package summary

import (
	"errors"
	"time"
)

var (
	errBadMonth = errors.New("month must be between 1 and 12")
	errBadDay   = errors.New("day is out of range for that month")
	errBadWeek  = errors.New("week must be at least 1")
)

// Window is a half-open date range [Start, End): start inclusive, end
// exclusive, so adjacent periods never double-count a boundary.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Empty reports whether the window covers no time at all.
func (w Window) Empty() bool {
	return !w.Start.Before(w.End)
}

// MonthWindow is the calendar month [1st, 1st of next month).
func MonthWindow(year, month int) (Window, error) {
	if month < 1 || month > 12 {
		return Window{}, errBadMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// DayWindow is the single calendar day [d, d+1).
func DayWindow(year, month, day int) (Window, error) {
	if month < 1 || month > 12 {
		return Window{}, errBadMonth
	}
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject that.
	if start.Day() != day || start.Month() != time.Month(month) {
		return Window{}, errBadDay
	}
	return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
}

// WeekWindow is week number `week` of the year under the house convention:
// weeks are 7-day blocks aligned so that Jan 1 always lands in week 1 and a
// new week begins each Sunday. Equivalently, for a date d,
//
//	week(d) = ceil((daysSinceJan1(d) + weekday(Jan1) + 1) / 7)
//
// with Sunday = 0. Not ISO 8601; the first and last weeks of a year may be
// shorter than seven days once clamped to the year.
func WeekWindow(year, week int) (Window, error) {
	if week < 1 {
		return Window{}, errBadWeek
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := int(jan1.Weekday())

	start := jan1.AddDate(0, 0, 7*(week-1)-offset)
	end := start.AddDate(0, 0, 7)
	if start.Before(jan1) {
		start = jan1
	}
	return Window{Start: start, End: end}, nil
}

// MonthWeekWindow scopes a week of the year to a calendar month. A week that
// does not touch the month yields an empty window.
func MonthWeekWindow(year, month, week int) (Window, error) {
	mw, err := MonthWindow(year, month)
	if err != nil {
		return Window{}, err
	}
	ww, err := WeekWindow(year, week)
	if err != nil {
		return Window{}, err
	}
	return mw.intersect(ww), nil
}

func (w Window) intersect(o Window) Window {
	out := w
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out
}

// WeekOf returns the week number of d under the same convention.
func WeekOf(d time.Time) int {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceJan1 := int(d.Sub(jan1).Hours() / 24)
	offset := int(jan1.Weekday())
	return (daysSinceJan1+offset)/7 + 1
}
