package analytics_test

import (
	"strings"
	"testing"

	"github.com/limbo/timeflow/internal/analytics"
	"github.com/limbo/timeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekWithThreeDays is a Monday-Sunday range (2025-03-03..09) with data
// on three days: a perfect day, a half day and an unproductive day.
func weekWithThreeDays() map[string][]entity.Entry {
	return map[string][]entity.Entry{
		"2025-03-03": {
			entry("09:00", "Code", "deep-work"),
			entry("09:15", "Code", "deep-work"),
		},
		"2025-03-04": {},
		"2025-03-05": {
			entry("10:00", "Code", "deep-work"),
			entry("20:00", "Games", "leisure"),
		},
		"2025-03-06": {},
		"2025-03-07": {
			entry("20:00", "Games", "leisure"),
			entry("20:15", "Games", "leisure"),
		},
		"2025-03-08": {},
		"2025-03-09": {},
	}
}

func TestComputePeriod(t *testing.T) {
	m := analytics.ComputePeriod(weekWithThreeDays())

	assert.Equal(t, 7, m.TotalDays)
	assert.Equal(t, 3, m.DaysWithData)
	require.Len(t, m.DailySummaries, 7)

	// Aggregate over the union: 6 filled slots, 3 productive.
	assert.Equal(t, 6, m.TotalSlots)
	assert.Equal(t, 90, m.TotalMinutes)
	assert.Equal(t, 50, m.ProductivityScore)

	// round(90 / 3) and round((100 + 50 + 0) / 3)
	assert.Equal(t, 30, m.AvgMinutesPerDay)
	assert.Equal(t, 50, m.AvgProductivityScore)
}

func TestComputePeriodSummaries(t *testing.T) {
	m := analytics.ComputePeriod(weekWithThreeDays())

	// Ascending date order, zero-data days included.
	assert.Equal(t, "2025-03-03", m.DailySummaries[0].Date)
	assert.Equal(t, "2025-03-09", m.DailySummaries[6].Date)

	monday := m.DailySummaries[0]
	assert.Equal(t, "Mon Mar 3", monday.DayLabel)
	assert.Equal(t, 3, monday.DayNumber)
	assert.Equal(t, 1, monday.DayOfWeek)
	assert.Equal(t, 2, monday.TotalSlots)
	assert.Equal(t, 2, monday.ProductiveSlots)
	assert.Equal(t, 100, monday.ProductivityScore)

	tuesday := m.DailySummaries[1]
	assert.Zero(t, tuesday.TotalSlots)
	assert.Zero(t, tuesday.ProductivityScore)

	sunday := m.DailySummaries[6]
	assert.Equal(t, 0, sunday.DayOfWeek)
}

func TestComputePeriodMatchesFlattenedDaily(t *testing.T) {
	dateEntries := weekWithThreeDays()
	var flat []entity.Entry
	for _, d := range []string{"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07", "2025-03-08", "2025-03-09"} {
		flat = append(flat, dateEntries[d]...)
	}
	daily := analytics.ComputeDaily(flat)
	period := analytics.ComputePeriod(dateEntries)

	assert.Equal(t, daily.ProductivityScore, period.ProductivityScore)
	assert.Equal(t, daily.TotalMinutes, period.TotalMinutes)
	assert.Equal(t, daily.CategoryBreakdown, period.CategoryBreakdown)
	assert.Equal(t, daily.MaxStreak, period.MaxStreak)
}

func TestComputePeriodInsights(t *testing.T) {
	t.Run("partial logging", func(t *testing.T) {
		m := analytics.ComputePeriod(weekWithThreeDays())
		require.NotEmpty(t, m.Insights)
		assert.Equal(t, entity.InsightNeutral, m.Insights[0].Type)
		assert.Equal(t, "You logged data on 3 of 7 days in this period.", m.Insights[0].Text)
	})

	t.Run("perfect logging streak", func(t *testing.T) {
		m := analytics.ComputePeriod(map[string][]entity.Entry{
			"2025-03-03": {entry("09:00", "Code", "deep-work")},
			"2025-03-04": {entry("09:00", "Code", "deep-work")},
		})
		require.NotEmpty(t, m.Insights)
		assert.Equal(t, entity.InsightPositive, m.Insights[0].Type)
		assert.Contains(t, m.Insights[0].Text, "all 2 days")
	})

	t.Run("most productive day needs two days with data", func(t *testing.T) {
		m := analytics.ComputePeriod(weekWithThreeDays())
		found := ""
		for _, in := range m.Insights {
			if strings.Contains(in.Text, "Most productive day") {
				found = in.Text
			}
		}
		assert.Equal(t, "Most productive day: Mon Mar 3 at 100%.", found)

		single := analytics.ComputePeriod(map[string][]entity.Entry{
			"2025-03-03": {entry("09:00", "Code", "deep-work")},
			"2025-03-04": {},
		})
		for _, in := range single.Insights {
			assert.NotContains(t, in.Text, "Most productive day")
		}
	})

	t.Run("meeting hours over the period", func(t *testing.T) {
		dateEntries := make(map[string][]entity.Entry)
		// 11 meeting slots a day over two days: 330 minutes total.
		slots := []string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30"}
		for _, d := range []string{"2025-03-03", "2025-03-04"} {
			for _, id := range slots {
				dateEntries[d] = append(dateEntries[d], entry(id, "Sync", "meeting"))
			}
		}
		m := analytics.ComputePeriod(dateEntries)
		found := false
		for _, in := range m.Insights {
			if in.Type == entity.InsightWarning && strings.Contains(in.Text, "5.5 hours in meetings") {
				found = true
			}
		}
		assert.True(t, found, "expected period meeting warning, got %v", m.Insights)
	})

	t.Run("no data at all", func(t *testing.T) {
		m := analytics.ComputePeriod(map[string][]entity.Entry{
			"2025-03-03": {},
			"2025-03-04": nil,
		})
		assert.Empty(t, m.Insights)
		assert.Equal(t, 2, m.TotalDays)
		assert.Zero(t, m.DaysWithData)
		assert.Zero(t, m.AvgMinutesPerDay)
		assert.Zero(t, m.AvgProductivityScore)
	})
}

func TestComputePeriodEmptyMap(t *testing.T) {
	m := analytics.ComputePeriod(map[string][]entity.Entry{})
	assert.Zero(t, m.TotalDays)
	assert.Zero(t, m.DaysWithData)
	assert.Empty(t, m.DailySummaries)
	assert.Empty(t, m.Insights)
}
