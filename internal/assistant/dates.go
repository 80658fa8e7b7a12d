package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is an inclusive calendar-date interval. Start <= End always
// holds for ranges produced by ExtractDates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two inclusive date ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !(r.End.Before(o.Start) || r.Start.After(o.End))
}

// weekdayEntry maps a Portuguese weekday token to Monday-based index 0-6.
// Full names come before abbreviations so the longest token wins.
type weekdayEntry struct {
	token string
	day   int
}

var weekdays = []weekdayEntry{
	{"segunda", 0}, {"segunda-feira", 0}, {"seg", 0},
	{"terça", 1}, {"terca", 1}, {"terça-feira", 1}, {"terca-feira", 1}, {"ter", 1},
	{"quarta", 2}, {"quarta-feira", 2}, {"qua", 2},
	{"quinta", 3}, {"quinta-feira", 3}, {"qui", 3},
	{"sexta", 4}, {"sexta-feira", 4}, {"sex", 4},
	{"sábado", 5}, {"sabado", 5}, {"sab", 5},
	{"domingo", 6}, {"dom", 6},
}

type monthEntry struct {
	token string
	month time.Month
}

var monthNames = []monthEntry{
	{"janeiro", time.January}, {"jan", time.January},
	{"fevereiro", time.February}, {"fev", time.February},
	{"março", time.March}, {"marco", time.March}, {"mar", time.March},
	{"abril", time.April}, {"abr", time.April},
	{"maio", time.May}, {"mai", time.May},
	{"junho", time.June}, {"jun", time.June},
	{"julho", time.July}, {"jul", time.July},
	{"agosto", time.August}, {"ago", time.August},
	{"setembro", time.September}, {"set", time.September},
	{"outubro", time.October}, {"out", time.October},
	{"novembro", time.November}, {"nov", time.November},
	{"dezembro", time.December}, {"dez", time.December},
}

var (
	explicitDateRe = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?`)
	singleDayRe    = regexp.MustCompile(`dia\s+(\d{1,2})(?:\s|$|,|\?|!)`)
	dayRangeRe     = regexp.MustCompile(`dias?\s+(\d+)\s+a(?:té)?\s+(\d+)`)
)

// pyWeekday converts Go's Sunday-based weekday to the Monday-based index the
// weekday table uses.
func pyWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// monthEnd returns the last day of the month containing t's year/month.
func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// validDay reports whether day exists in the given month.
func validDay(year int, month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d.Day() == day && d.Month() == month
}

// ExtractDates resolves a date range mentioned in text, relative to today.
// Rules fire in a fixed priority order; the first match wins. A nil result
// means the text mentions no recognizable date, which is a normal outcome.
func ExtractDates(text string, today time.Time) *DateRange {
	today = dateOnly(today)
	lower := strings.ToLower(text)

	// Literal relative tokens.
	if strings.Contains(lower, "depois de amanhã") || strings.Contains(lower, "depois de amanha") {
		d := today.AddDate(0, 0, 2)
		return &DateRange{d, d}
	}
	for _, w := range []string{"hoje", "hje"} {
		if strings.Contains(lower, w) {
			return &DateRange{today, today}
		}
	}
	for _, w := range []string{"amanhã", "amanha"} {
		if strings.Contains(lower, w) {
			d := today.AddDate(0, 0, 1)
			return &DateRange{d, d}
		}
	}

	// Weekday names: always the next occurrence strictly after today.
	for _, wd := range weekdays {
		if strings.Contains(lower, wd.token) {
			delta := (wd.day - pyWeekday(today)) % 7
			if delta < 0 {
				delta += 7
			}
			if delta == 0 {
				delta = 7
			}
			d := today.AddDate(0, 0, delta)
			return &DateRange{d, d}
		}
	}

	// Week ranges (Monday through Sunday).
	if strings.Contains(lower, "próxima semana") || strings.Contains(lower, "proxima semana") || strings.Contains(lower, "semana que vem") {
		start := today.AddDate(0, 0, 7-pyWeekday(today))
		return &DateRange{start, start.AddDate(0, 0, 6)}
	}
	if strings.Contains(lower, "esta semana") || strings.Contains(lower, "essa semana") {
		start := today.AddDate(0, 0, -pyWeekday(today))
		return &DateRange{start, start.AddDate(0, 0, 6)}
	}

	// Month by name: whole month, rolling to next year when already past.
	for _, m := range monthNames {
		if strings.Contains(lower, m.token) {
			year := today.Year()
			if m.month < time.Month(today.Month()) {
				year++
			} else if m.month == today.Month() && strings.Contains(lower, "próximo") {
				year++
			}
			start := time.Date(year, m.month, 1, 0, 0, 0, 0, time.UTC)
			return &DateRange{start, monthEnd(year, m.month)}
		}
	}

	// Current / next month.
	if strings.Contains(lower, "este mês") || strings.Contains(lower, "esse mês") || strings.Contains(lower, "este mes") {
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &DateRange{start, monthEnd(today.Year(), today.Month())}
	}
	if strings.Contains(lower, "próximo mês") || strings.Contains(lower, "mês que vem") || strings.Contains(lower, "proximo mes") {
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		return &DateRange{start, monthEnd(start.Year(), start.Month())}
	}

	// Explicit dd/mm[/yyyy] dates; one date becomes a single-day range, two
	// become (min, max) regardless of textual order.
	if matches := explicitDateRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		var dates []time.Time
		for _, m := range matches {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year := m[3]
			if year == "" {
				ref := today.Year()
				// Without a year, a date already past rolls to next year.
				if month < int(today.Month()) || (month == int(today.Month()) && day < today.Day()) {
					ref++
				}
				year = strconv.Itoa(ref)
			} else if len(year) == 2 {
				year = "20" + year
			}
			y, _ := strconv.Atoi(year)
			if month < 1 || month > 12 || !validDay(y, time.Month(month), day) {
				continue
			}
			dates = append(dates, time.Date(y, time.Month(month), day, 0, 0, 0, 0, time.UTC))
		}
		if len(dates) >= 2 {
			lo, hi := dates[0], dates[0]
			for _, d := range dates[1:] {
				if d.Before(lo) {
					lo = d
				}
				if d.After(hi) {
					hi = d
				}
			}
			return &DateRange{lo, hi}
		}
		if len(dates) == 1 {
			return &DateRange{dates[0], dates[0]}
		}
	}

	// Bare "dia NN", only when no slash/hyphen date could be present. A day
	// already past this month rolls to the same day next month.
	if !strings.Contains(text, "/") && !strings.Contains(text, "-") {
		if m := singleDayRe.FindStringSubmatch(lower); m != nil {
			day, _ := strconv.Atoi(m[1])
			if validDay(today.Year(), today.Month(), day) {
				d := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, time.UTC)
				if !d.Before(today) {
					return &DateRange{d, d}
				}
				next := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
				if validDay(next.Year(), next.Month(), day) {
					d = time.Date(next.Year(), next.Month(), day, 0, 0, 0, 0, time.UTC)
					return &DateRange{d, d}
				}
			}
		}
	}

	// "dias X a Y" / "dias X até Y": literal days of the current month. No
	// past-date rollover here, unlike the bare "dia NN" rule above.
	if m := dayRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if validDay(today.Year(), today.Month(), lo) && validDay(today.Year(), today.Month(), hi) {
			return &DateRange{
				time.Date(today.Year(), today.Month(), lo, 0, 0, 0, 0, time.UTC),
				time.Date(today.Year(), today.Month(), hi, 0, 0, 0, 0, time.UTC),
			}
		}
	}

	return nil
}
