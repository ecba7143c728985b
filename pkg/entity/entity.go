package entity

// Entry is one logged activity for a single 15-minute slot on a given date.
// An entry counts as filled iff Activity is non-empty; Category may be empty
// even on a filled entry.
type Entry struct {
	SlotID   string `json:"slotId"`
	Activity string `json:"activity"`
	Category string `json:"category"`
}

// Filled reports whether the entry holds a logged activity.
func (e Entry) Filled() bool {
	return e.Activity != ""
}

// DayData is the persisted shape of one day: only filled entries are stored.
type DayData struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}

// CategoryTime is one row of the per-category breakdown. Hours is
// pre-formatted to one decimal place for display.
type CategoryTime struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	Emoji      string `json:"emoji"`
	Minutes    int    `json:"minutes"`
	Hours      string `json:"hours"`
	Percentage int    `json:"percentage"`
}

// HourlyBucket is the productive/other minute split of one hour, for charting.
type HourlyBucket struct {
	Hour       string `json:"hour"`
	Productive int    `json:"productive"`
	Other      int    `json:"other"`
}

type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightNeutral  InsightType = "neutral"
)

// Insight is one natural-language observation about the computed metrics.
type Insight struct {
	Type InsightType `json:"type"`
	Text string      `json:"text"`
}

// DailyMetrics is the full analytics bundle for one day's entries.
// It is a plain value recomputed on every call, never mutated in place.
type DailyMetrics struct {
	TotalSlots        int            `json:"totalSlots"`
	TotalMinutes      int            `json:"totalMinutes"`
	TotalHours        string         `json:"totalHours"`
	CategoryBreakdown []CategoryTime `json:"categoryBreakdown"`
	ProductivityScore int            `json:"productivityScore"`
	ProductiveMinutes int            `json:"productiveMinutes"`
	MaxStreak         int            `json:"maxStreak"`
	PeakHourLabel     string         `json:"peakHourLabel"`
	HourlyData        []HourlyBucket `json:"hourlyData"`
	Insights          []Insight      `json:"insights"`
}

// DaySummary is the per-day line of a period bundle. DayOfWeek is 0 for
// Sunday, matching the calendar grid the UI renders.
type DaySummary struct {
	Date              string  `json:"date"`
	DayLabel          string  `json:"dayLabel"`
	DayNumber         int     `json:"dayNumber"`
	DayOfWeek         int     `json:"dayOfWeek"`
	TotalSlots        int     `json:"totalSlots"`
	TotalMinutes      int     `json:"totalMinutes"`
	ProductiveSlots   int     `json:"productiveSlots"`
	ProductiveMinutes int     `json:"productiveMinutes"`
	ProductivityScore int     `json:"productivityScore"`
	Entries           []Entry `json:"entries"`
}

// PeriodMetrics is the aggregate bundle over a contiguous date range. The
// embedded DailyMetrics is computed over the union of all entries in the
// range; Insights inside it are replaced with period-level ones.
type PeriodMetrics struct {
	DailyMetrics
	DailySummaries       []DaySummary `json:"dailySummaries"`
	DaysWithData         int          `json:"daysWithData"`
	TotalDays            int          `json:"totalDays"`
	AvgMinutesPerDay     int          `json:"avgMinutesPerDay"`
	AvgProductivityScore int          `json:"avgProductivityScore"`
}

// BackupPayload is the versioned export format of the whole store.
// Version and Data are pointers so an import can tell "absent" from "zero".
type BackupPayload struct {
	Version    *int               `json:"version"`
	ExportDate string             `json:"exportDate"`
	Data       map[string]DayData `json:"data"`
}
