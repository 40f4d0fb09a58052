package engine

import (
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// Indonesian short month labels, January first.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// parseDate parses an ISO calendar date. The second return value is false
// for empty or malformed input; callers must treat any comparison against
// such a date as false instead of failing the derivation.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// startOfDay truncates a timestamp to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysUntil returns the whole number of days from "now" (at midnight) to
// the given date, negative for past dates. It returns nil when the date is
// missing or unparseable.
func daysUntil(value string, now time.Time) *int {
	target, ok := parseDate(value)
	if !ok {
		return nil
	}
	today := startOfDay(now)
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())
	days := int(target.Sub(today) / (24 * time.Hour))
	return &days
}

// dateBeforeToday reports whether the date falls strictly before "now"'s
// calendar day. Unparseable dates are never "before" anything.
func dateBeforeToday(value string, now time.Time) bool {
	d := daysUntil(value, now)
	return d != nil && *d < 0
}

// monthKey renders the YYYY-MM prefix used for calendar-month bucketing.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// monthLabel returns the localized short name for a month.
func monthLabel(t time.Time) string {
	return monthLabels[int(t.Month())-1]
}
