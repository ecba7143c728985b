// Package analytics turns raw slot entries into derived metrics bundles.
// Every function here is pure and total: no state, no errors, identical
// output for identical input.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/limbo/timeflow/pkg/entity"
	"github.com/limbo/timeflow/pkg/timeslot"
)

// ComputeDaily computes the single-day metrics bundle from one day's
// entries. Entries may be sparse (filled slots only) or the full 72-slot
// array with empty activities mixed in; an entry counts iff its activity
// is non-empty.
//
// The streak scan walks entries in the order given. Callers that care
// about streaks must supply slot-chronological order; the repository's
// ReadDay guarantees it.
func ComputeDaily(entries []entity.Entry) entity.DailyMetrics {
	totalSlots := 0
	categoryMinutes := make(map[string]int)
	for _, e := range entries {
		if !e.Filled() {
			continue
		}
		totalSlots++
		if e.Category != "" {
			categoryMinutes[e.Category] += timeslot.SlotMinutes
		}
	}
	totalMinutes := totalSlots * timeslot.SlotMinutes

	breakdown := categoryBreakdown(categoryMinutes, totalMinutes)

	productiveMinutes := 0
	for id, mins := range categoryMinutes {
		if timeslot.IsProductive(id) {
			productiveMinutes += mins
		}
	}
	score := 0
	if totalMinutes > 0 {
		score = roundPct(productiveMinutes, totalMinutes)
	}

	maxStreak := longestProductiveStreak(entries)

	return entity.DailyMetrics{
		TotalSlots:        totalSlots,
		TotalMinutes:      totalMinutes,
		TotalHours:        formatHours(totalMinutes),
		CategoryBreakdown: breakdown,
		ProductivityScore: score,
		ProductiveMinutes: productiveMinutes,
		MaxStreak:         maxStreak * timeslot.SlotMinutes,
		PeakHourLabel:     peakHourLabel(entries),
		HourlyData:        hourlyData(entries),
		Insights: dailyInsights(dailyFacts{
			TotalMinutes:    totalMinutes,
			Score:           score,
			MaxStreakSlots:  maxStreak,
			MeetingMinutes:  categoryMinutes[timeslot.MeetingCategoryID],
			BreakMinutes:    categoryMinutes[timeslot.BreakCategoryID],
			ExerciseMinutes: categoryMinutes[timeslot.ExerciseCategoryID],
		}),
	}
}

// categoryBreakdown builds the non-zero category rows sorted descending by
// minutes, ties broken by taxonomy order.
func categoryBreakdown(categoryMinutes map[string]int, totalMinutes int) []entity.CategoryTime {
	rows := make([]entity.CategoryTime, 0, len(categoryMinutes))
	for _, c := range timeslot.Categories {
		mins := categoryMinutes[c.ID]
		if mins == 0 {
			continue
		}
		pct := 0
		if totalMinutes > 0 {
			pct = roundPct(mins, totalMinutes)
		}
		rows = append(rows, entity.CategoryTime{
			ID:         c.ID,
			Label:      c.Label,
			Color:      c.Color,
			Emoji:      c.Emoji,
			Minutes:    mins,
			Hours:      formatHours(mins),
			Percentage: pct,
		})
	}
	// Rows start in taxonomy order, so a stable sort keeps that as the tie-break.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Minutes > rows[j].Minutes
	})
	return rows
}

// longestProductiveStreak counts the longest run of consecutive filled,
// productive entries, in slots.
func longestProductiveStreak(entries []entity.Entry) int {
	maxStreak, current := 0, 0
	for _, e := range entries {
		if e.Filled() && timeslot.IsProductive(e.Category) {
			current++
			if current > maxStreak {
				maxStreak = current
			}
		} else {
			current = 0
		}
	}
	return maxStreak
}

// peakHourLabel finds the hour with the most filled entries. Ties go to
// the earliest hour; "N/A" when nothing is filled.
func peakHourLabel(entries []entity.Entry) string {
	counts := make(map[int]int)
	for _, e := range entries {
		if !e.Filled() {
			continue
		}
		counts[slotHour(e.SlotID)]++
	}
	best, bestCount := 0, 0
	for h := 0; h < 24; h++ {
		if counts[h] > bestCount {
			best, bestCount = h, counts[h]
		}
	}
	if bestCount == 0 {
		return "N/A"
	}
	return timeslot.HourLabel(best)
}

// hourlyData builds the 18 chart buckets (hours 6..23), splitting each
// hour's filled entries into productive and other minutes.
func hourlyData(entries []entity.Entry) []entity.HourlyBucket {
	type split struct{ productive, other int }
	perHour := make(map[int]split)
	for _, e := range entries {
		if !e.Filled() {
			continue
		}
		h := slotHour(e.SlotID)
		s := perHour[h]
		if timeslot.IsProductive(e.Category) {
			s.productive++
		} else {
			s.other++
		}
		perHour[h] = s
	}
	buckets := make([]entity.HourlyBucket, 0, timeslot.LastHour-timeslot.FirstHour+1)
	for h := timeslot.FirstHour; h <= timeslot.LastHour; h++ {
		buckets = append(buckets, entity.HourlyBucket{
			Hour:       timeslot.ShortHourLabel(h),
			Productive: perHour[h].productive * timeslot.SlotMinutes,
			Other:      perHour[h].other * timeslot.SlotMinutes,
		})
	}
	return buckets
}

// slotHour parses the hour prefix of a slot id. Malformed ids land in
// hour 0, outside the trackable range, so they never displace a real
// hour's chart bucket.
func slotHour(slotID string) int {
	prefix, _, ok := strings.Cut(slotID, ":")
	if !ok {
		return 0
	}
	h, err := strconv.Atoi(prefix)
	if err != nil || h < 0 || h > 23 {
		return 0
	}
	return h
}

// formatHours renders minutes as hours with one decimal, rounding half
// away from zero so 15 minutes reads "0.3", not "0.2".
func formatHours(minutes int) string {
	return fmt.Sprintf("%.1f", math.Round(float64(minutes)/60*10)/10)
}

// roundPct is round(part/whole*100) with half away from zero, matching
// how every score and percentage in the bundle is rounded.
func roundPct(part, whole int) int {
	return int(float64(part)/float64(whole)*100 + 0.5)
}
