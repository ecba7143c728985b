// Package timeslot defines the fixed universe of loggable time slots
// (06:00–23:45, 15-minute granularity) and the category taxonomy. It is
// pure and stateless; every other package depends on it.
package timeslot

import (
	"fmt"
	"time"
)

const (
	FirstHour   = 6
	LastHour    = 23
	SlotMinutes = 15
	// SlotsPerDay is the number of loggable slots: 18 hours * 4 quarters.
	SlotsPerDay = (LastHour - FirstHour + 1) * 4
)

// Slot is one fixed 15-minute interval of the trackable day. ID is the
// zero-padded 24-hour "HH:MM" key; Label is the 12-hour display form.
type Slot struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// Category is one taxonomy entry. Color and Emoji are display-only.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// Categories is the fixed, ordered taxonomy. Order matters: it is the
// stable tie-break for the category breakdown sort.
var Categories = []Category{
	{ID: "deep-work", Label: "Deep Work", Color: "#6366f1", Emoji: "🧠"},
	{ID: "meeting", Label: "Meeting", Color: "#f59e0b", Emoji: "👥"},
	{ID: "email", Label: "Email / Comms", Color: "#3b82f6", Emoji: "📧"},
	{ID: "admin", Label: "Admin", Color: "#f472b6", Emoji: "📋"},
	{ID: "learning", Label: "Learning", Color: "#8b5cf6", Emoji: "📚"},
	{ID: "creative", Label: "Creative", Color: "#14b8a6", Emoji: "🎨"},
	{ID: "exercise", Label: "Exercise", Color: "#ef4444", Emoji: "💪"},
	{ID: "break", Label: "Break", Color: "#10b981", Emoji: "☕"},
	{ID: "leisure", Label: "Leisure", Color: "#f97316", Emoji: "🎮"},
	{ID: "chores", Label: "Chores", Color: "#a3e635", Emoji: "🧹"},
	{ID: "morning-ritual", Label: "Morning Ritual", Color: "#fbbf24", Emoji: "🌅"},
	{ID: "night-ritual", Label: "Night Ritual", Color: "#818cf8", Emoji: "🌙"},
	{ID: "startup-ritual", Label: "Startup Ritual", Color: "#34d399", Emoji: "🚀"},
	{ID: "shutdown-ritual", Label: "Shutdown Ritual", Color: "#fb923c", Emoji: "🔒"},
	{ID: "commute", Label: "Commute", Color: "#38bdf8", Emoji: "🚗"},
	{ID: "social", Label: "Social", Color: "#e879f9", Emoji: "🤝"},
	{ID: "other", Label: "Other", Color: "#64748b", Emoji: "📌"},
}

// BreakCategoryID is the single category counted as rest time.
const BreakCategoryID = "break"

// MeetingCategoryID and ExerciseCategoryID feed dedicated insight rules.
const (
	MeetingCategoryID  = "meeting"
	ExerciseCategoryID = "exercise"
)

// productiveIDs is the hardcoded policy partition: categories counted
// toward the productivity score. Everything else is neutral or break.
var productiveIDs = map[string]struct{}{
	"deep-work": {},
	"meeting":   {},
	"email":     {},
	"admin":     {},
	"learning":  {},
	"creative":  {},
	"exercise":  {},
}

// IsProductive reports whether the category id counts toward the
// productivity score. Unknown and empty ids are not productive.
func IsProductive(categoryID string) bool {
	_, ok := productiveIDs[categoryID]
	return ok
}

// CategoryByID looks up a taxonomy entry. The second return is false for
// unknown ids.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryOrder returns the position of id in the fixed taxonomy, or
// len(Categories) for unknown ids so they sort last.
func CategoryOrder(id string) int {
	for i, c := range Categories {
		if c.ID == id {
			return i
		}
	}
	return len(Categories)
}

// Slots regenerates the full chronological sequence of the day's 72 slots.
// The sequence is identical for every day and is never persisted.
func Slots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for h := FirstHour; h <= LastHour; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			slots = append(slots, Slot{
				ID:     fmt.Sprintf("%02d:%02d", h, m),
				Label:  fmt.Sprintf("%d:%02d %s", hour12(h), m, ampm(h)),
				Hour:   h,
				Minute: m,
			})
		}
	}
	return slots
}

// CurrentSlotID floors now's minute to the lower multiple of 15 and
// formats the slot key. Used only to highlight "now" in a UI.
func CurrentSlotID(now time.Time) string {
	m := now.Minute() / SlotMinutes * SlotMinutes
	return fmt.Sprintf("%02d:%02d", now.Hour(), m)
}

// HourLabel formats a 24-hour value as the 12-hour peak-hour label,
// e.g. 9 -> "9:00 AM", 13 -> "1:00 PM".
func HourLabel(h int) string {
	return fmt.Sprintf("%d:00 %s", hour12(h), ampm(h))
}

// ShortHourLabel is the compact chart-axis form, e.g. "6a", "12p", "11p".
func ShortHourLabel(h int) string {
	suffix := "p"
	if h < 12 {
		suffix = "a"
	}
	return fmt.Sprintf("%d%s", hour12(h), suffix)
}

func hour12(h int) int {
	if r := h % 12; r != 0 {
		return r
	}
	return 12
}

func ampm(h int) string {
	if h < 12 {
		return "AM"
	}
	return "PM"
}
