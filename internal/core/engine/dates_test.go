package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, ok := parseDate("2025-08-15")
	require.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 15, d.Day())

	_, ok = parseDate("")
	assert.False(t, ok)

	_, ok = parseDate("not-a-date")
	assert.False(t, ok)

	_, ok = parseDate("15/08/2025")
	assert.False(t, ok)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  *int
	}{
		{"today", "2025-08-15", intPtr(0)},
		{"tomorrow", "2025-08-16", intPtr(1)},
		{"yesterday", "2025-08-14", intPtr(-1)},
		{"next month", "2025-09-15", intPtr(31)},
		{"missing", "", nil},
		{"garbage", "soon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daysUntil(tt.value, now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDateBeforeToday(t *testing.T) {
	now := time.Date(2025, 8, 15, 23, 59, 0, 0, time.UTC)

	assert.True(t, dateBeforeToday("2025-08-14", now))
	// The current day is not "before" today even late in the evening.
	assert.False(t, dateBeforeToday("2025-08-15", now))
	assert.False(t, dateBeforeToday("2025-08-16", now))
	assert.False(t, dateBeforeToday("", now))
	assert.False(t, dateBeforeToday("garbage", now))
}

func TestMonthKeyAndLabel(t *testing.T) {
	aug := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-08", monthKey(aug))
	assert.Equal(t, "Agu", monthLabel(aug))

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan", monthLabel(jan))
	des := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Des", monthLabel(des))
}

func intPtr(v int) *int {
	return &v
}
