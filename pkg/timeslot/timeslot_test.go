package timeslot_test

import (
	"testing"
	"time"

	"github.com/limbo/timeflow/pkg/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	slots := timeslot.Slots()
	require.Len(t, slots, 72)
	assert.Equal(t, "06:00", slots[0].ID)
	assert.Equal(t, "6:00 AM", slots[0].Label)
	assert.Equal(t, "23:45", slots[71].ID)
	assert.Equal(t, "11:45 PM", slots[71].Label)
	// Chronological and unique
	seen := make(map[string]bool)
	prev := ""
	for _, s := range slots {
		assert.Greater(t, s.ID, prev)
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
		assert.Contains(t, []int{0, 15, 30, 45}, s.Minute)
		assert.GreaterOrEqual(t, s.Hour, 6)
		assert.LessOrEqual(t, s.Hour, 23)
		prev = s.ID
	}
}

func TestSlotsDeterministic(t *testing.T) {
	assert.Equal(t, timeslot.Slots(), timeslot.Slots())
}

func TestCurrentSlotID(t *testing.T) {
	testCases := []struct {
		Desc     string
		Time     time.Time
		Expected string
	}{
		{"on the hour", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), "09:00"},
		{"floors to lower quarter", time.Date(2025, 3, 10, 9, 14, 59, 0, time.UTC), "09:00"},
		{"quarter boundary", time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC), "09:15"},
		{"late evening", time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), "23:45"},
		{"single digit padding", time.Date(2025, 3, 10, 6, 7, 0, 0, time.UTC), "06:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, timeslot.CurrentSlotID(tc.Time))
		})
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := timeslot.CategoryByID("deep-work")
	require.True(t, ok)
	assert.Equal(t, "Deep Work", c.Label)

	_, ok = timeslot.CategoryByID("nonsense")
	assert.False(t, ok)
}

func TestProductivePartition(t *testing.T) {
	productive := []string{"deep-work", "meeting", "email", "admin", "learning", "creative", "exercise"}
	for _, id := range productive {
		assert.True(t, timeslot.IsProductive(id), id)
	}
	for _, id := range []string{"break", "leisure", "other", "chores", "commute", "social", ""} {
		assert.False(t, timeslot.IsProductive(id), id)
	}
	// Every productive id must exist in the taxonomy
	for _, id := range productive {
		_, ok := timeslot.CategoryByID(id)
		assert.True(t, ok, id)
	}
}

func TestHourLabels(t *testing.T) {
	assert.Equal(t, "6:00 AM", timeslot.HourLabel(6))
	assert.Equal(t, "12:00 PM", timeslot.HourLabel(12))
	assert.Equal(t, "1:00 PM", timeslot.HourLabel(13))
	assert.Equal(t, "11:00 PM", timeslot.HourLabel(23))
	assert.Equal(t, "6a", timeslot.ShortHourLabel(6))
	assert.Equal(t, "12p", timeslot.ShortHourLabel(12))
	assert.Equal(t, "11p", timeslot.ShortHourLabel(23))
}
