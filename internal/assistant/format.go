package assistant

import (
	"fmt"
	"time"
)

const (
	// StoreDateLayout is the ISO calendar-date format used by the record store.
	StoreDateLayout = "2006-01-02"
	// DisplayDateLayout is the Brazilian display convention.
	DisplayDateLayout = "02/01/2006"
)

// ParseStoreDate parses a YYYY-MM-DD date from the store.
func ParseStoreDate(s string) (time.Time, error) {
	return time.Parse(StoreDateLayout, s)
}

// FormatDisplay renders a date as DD/MM/YYYY.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatStore renders a date as YYYY-MM-DD.
func FormatStore(t time.Time) string {
	return t.Format(StoreDateLayout)
}

// displayPeriod renders a range as a single date or "start a end".
func displayPeriod(r DateRange) string {
	if r.Start.Equal(r.End) {
		return FormatDisplay(r.Start)
	}
	return fmt.Sprintf("%s a %s", FormatDisplay(r.Start), FormatDisplay(r.End))
}

// agendaCount returns "1 agenda" or "N agendas".
func agendaCount(n int) string {
	if n == 1 {
		return "1 agenda"
	}
	return fmt.Sprintf("%d agendas", n)
}

// dateOnly truncates a timestamp to a UTC calendar date so day-granularity
// comparisons are location-independent.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
