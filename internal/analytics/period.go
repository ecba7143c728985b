package analytics

import (
	"sort"
	"time"

	"github.com/limbo/timeflow/pkg/entity"
	"github.com/limbo/timeflow/pkg/timeslot"
)

// ComputePeriod computes the aggregate bundle for a contiguous date range.
// dateEntries must hold a key for every date in the range; dates with no
// logged entries map to an empty (or nil) slice and still produce a
// zero-valued summary line. The aggregate is ComputeDaily over the union
// of all entries; its insights are replaced with period-level ones.
func ComputePeriod(dateEntries map[string][]entity.Entry) entity.PeriodMetrics {
	dates := make([]string, 0, len(dateEntries))
	for d := range dateEntries {
		dates = append(dates, d)
	}
	// Lexicographic order is chronological for ISO dates.
	sort.Strings(dates)

	var all []entity.Entry
	for _, d := range dates {
		all = append(all, dateEntries[d]...)
	}
	aggregated := ComputeDaily(all)

	summaries := make([]entity.DaySummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, summarizeDay(d, dateEntries[d]))
	}

	daysWithData := 0
	scoreSum := 0
	for _, s := range summaries {
		if s.TotalSlots > 0 {
			daysWithData++
			scoreSum += s.ProductivityScore
		}
	}
	avgMinutes, avgScore := 0, 0
	if daysWithData > 0 {
		avgMinutes = roundDiv(aggregated.TotalMinutes, daysWithData)
		avgScore = roundDiv(scoreSum, daysWithData)
	}

	meetingMinutes := 0
	for _, c := range aggregated.CategoryBreakdown {
		if c.ID == timeslot.MeetingCategoryID {
			meetingMinutes = c.Minutes
		}
	}

	facts := periodFacts{
		TotalDays:      len(summaries),
		DaysWithData:   daysWithData,
		TotalMinutes:   aggregated.TotalMinutes,
		Score:          aggregated.ProductivityScore,
		MeetingMinutes: meetingMinutes,
	}
	if best, ok := mostProductiveDay(summaries); ok {
		facts.BestDayLabel = best.DayLabel
		facts.BestDayScore = best.ProductivityScore
		facts.HasBestDay = true
	}
	aggregated.Insights = periodInsights(facts)

	return entity.PeriodMetrics{
		DailyMetrics:         aggregated,
		DailySummaries:       summaries,
		DaysWithData:         daysWithData,
		TotalDays:            len(summaries),
		AvgMinutesPerDay:     avgMinutes,
		AvgProductivityScore: avgScore,
	}
}

// summarizeDay builds the per-day line of the period bundle. Dates that
// fail to parse keep zero display fields; the counts are still correct.
func summarizeDay(date string, entries []entity.Entry) entity.DaySummary {
	filled, productive := 0, 0
	for _, e := range entries {
		if !e.Filled() {
			continue
		}
		filled++
		if timeslot.IsProductive(e.Category) {
			productive++
		}
	}
	score := 0
	if filled > 0 {
		score = roundDiv(productive*100, filled)
	}
	s := entity.DaySummary{
		Date:              date,
		TotalSlots:        filled,
		TotalMinutes:      filled * timeslot.SlotMinutes,
		ProductiveSlots:   productive,
		ProductiveMinutes: productive * timeslot.SlotMinutes,
		ProductivityScore: score,
		Entries:           entries,
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		s.DayLabel = t.Format("Mon Jan 2")
		s.DayNumber = t.Day()
		s.DayOfWeek = int(t.Weekday())
	}
	return s
}

// mostProductiveDay picks the highest-scoring day with data, ties going
// to the earlier date. Reported only when at least two days have data.
func mostProductiveDay(summaries []entity.DaySummary) (entity.DaySummary, bool) {
	withData := make([]entity.DaySummary, 0, len(summaries))
	for _, s := range summaries {
		if s.TotalSlots > 0 {
			withData = append(withData, s)
		}
	}
	if len(withData) < 2 {
		return entity.DaySummary{}, false
	}
	best := withData[0]
	for _, s := range withData[1:] {
		if s.ProductivityScore > best.ProductivityScore {
			best = s
		}
	}
	return best, true
}

func roundDiv(num, den int) int {
	return int(float64(num)/float64(den) + 0.5)
}
