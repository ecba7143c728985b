package analytics_test

import (
	"testing"
	"time"

	"github.com/limbo/timeflow/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekRange(t *testing.T) {
	testCases := []struct {
		Desc       string
		Date       time.Time
		Start, End string
	}{
		{"midweek", day(2025, time.March, 5), "2025-03-03", "2025-03-09"},
		{"monday is its own start", day(2025, time.March, 3), "2025-03-03", "2025-03-09"},
		{"sunday belongs to the preceding monday", day(2025, time.March, 9), "2025-03-03", "2025-03-09"},
		{"week across a year boundary", day(2025, time.January, 1), "2024-12-30", "2025-01-05"},
		{"week across a month boundary", day(2025, time.July, 31), "2025-07-28", "2025-08-03"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := analytics.WeekRange(tc.Date)
			assert.Equal(t, tc.Start, r.Start)
			assert.Equal(t, tc.End, r.End)
		})
	}
}

func TestMonthRange(t *testing.T) {
	testCases := []struct {
		Desc       string
		Date       time.Time
		Start, End string
	}{
		{"thirty-one days", day(2025, time.March, 15), "2025-03-01", "2025-03-31"},
		{"leap february", day(2024, time.February, 10), "2024-02-01", "2024-02-29"},
		{"plain february", day(2025, time.February, 10), "2025-02-01", "2025-02-28"},
		{"december", day(2025, time.December, 31), "2025-12-01", "2025-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := analytics.MonthRange(tc.Date)
			assert.Equal(t, tc.Start, r.Start)
			assert.Equal(t, tc.End, r.End)
		})
	}
}

func TestDates(t *testing.T) {
	r := analytics.DateRange{Start: "2025-02-27", End: "2025-03-02"}
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, r.Dates())

	single := analytics.DateRange{Start: "2025-03-01", End: "2025-03-01"}
	assert.Equal(t, []string{"2025-03-01"}, single.Dates())

	week := analytics.WeekRange(day(2025, time.March, 5)).Dates()
	require.Len(t, week, 7)

	month := analytics.MonthRange(day(2024, time.February, 1)).Dates()
	require.Len(t, month, 29)

	inverted := analytics.DateRange{Start: "2025-03-02", End: "2025-03-01"}
	assert.Empty(t, inverted.Dates())
}
