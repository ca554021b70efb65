// File: services/assistant/dates.go
package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthsByName resolves month names and common abbreviations ("sept" included).
var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

const monthNamesAlt = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var (
	reInDays      = regexp.MustCompile(`in\s+(\d{1,2})\s+days?`)
	reDayMonYear  = regexp.MustCompile(`(\d{1,2})\s+(` + monthNamesAlt + `)\s*,?\s*(\d{4})`)
	reISO         = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reMonthDay    = regexp.MustCompile(`([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?`)
	reDayMonth    = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)`)
	reSlashedDate = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
)

// makeDate builds a calendar date, rejecting combinations Go's time package
// would silently normalize (e.g. February 30).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// inferYear applies the single governing year-inference rule: a (month, day)
// on or after the anchor keeps the anchor's year, otherwise it rolls to the
// next year. Every other date-producing path defers to this.
func inferYear(today time.Time, month time.Month, day int) (time.Time, bool) {
	if d, ok := makeDate(today.Year(), month, day); ok && !d.Before(today) {
		return d, true
	}
	return makeDate(today.Year()+1, month, day)
}

// NormalizeDate resolves a free-text date expression against the anchor date.
// It returns an ISO calendar date and true, or "" and false when the
// expression matches no rule. Callers treat failure as "date not provided".
func NormalizeDate(text string, today time.Time) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	lower := strings.ToLower(text)

	switch lower {
	case "today":
		return today.Format("2006-01-02"), true
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format("2006-01-02"), true
	case "next week":
		return today.AddDate(0, 0, 7).Format("2006-01-02"), true
	}

	if m := reInDays.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, n).Format("2006-01-02"), true
	}

	// Fully qualified "11 december 2025".
	if m := reDayMonYear.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthsByName[m[2]]
		year, _ := strconv.Atoi(m[3])
		d, ok := makeDate(year, month, day)
		if !ok {
			return "", false
		}
		if d.Before(today) {
			d, ok = inferYear(today, month, day)
			if !ok {
				return "", false
			}
		}
		return d.Format("2006-01-02"), true
	}

	// ISO YYYY-MM-DD.
	if m := reISO.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		d, ok := makeDate(year, time.Month(mo), day)
		if !ok {
			return "", false
		}
		if d.Before(today) {
			d, ok = inferYear(today, time.Month(mo), day)
			if !ok {
				return "", false
			}
		}
		return d.Format("2006-01-02"), true
	}

	// Partial dates: "december 4", "4th december".
	if month, day, ok := matchPartialDate(lower); ok {
		if d, ok := inferYear(today, month, day); ok {
			return d.Format("2006-01-02"), true
		}
		return "", false
	}

	// DD/MM/YYYY.
	if m := reSlashedDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		d, ok := makeDate(year, time.Month(mo), day)
		if !ok {
			return "", false
		}
		if d.Before(today) {
			d, ok = makeDate(year+1, time.Month(mo), day)
			if !ok {
				return "", false
			}
		}
		return d.Format("2006-01-02"), true
	}

	return "", false
}

func matchPartialDate(lower string) (time.Month, int, bool) {
	if m := reMonthDay.FindStringSubmatch(lower); m != nil {
		if month, ok := monthsByName[m[1]]; ok {
			day, _ := strconv.Atoi(m[2])
			return month, day, true
		}
	}
	if m := reDayMonth.FindStringSubmatch(lower); m != nil {
		if month, ok := monthsByName[m[2]]; ok {
			day, _ := strconv.Atoi(m[1])
			return month, day, true
		}
	}
	return 0, 0, false
}

// addDaysISO returns the ISO date n days after the given ISO date.
func addDaysISO(iso string, n int) (string, bool) {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", false
	}
	return d.AddDate(0, 0, n).Format("2006-01-02"), true
}

// formatTravelDate renders an ISO date with its weekday name for prompts.
func formatTravelDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("Monday, January 02, 2006")
}
