package analytics

import "time"

const dateLayout = "2006-01-02"

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekRange returns the Monday-through-Sunday week containing t.
func WeekRange(t time.Time) DateRange {
	// Weekday() is 0 for Sunday; shift so Monday starts the week.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return DateRange{
		Start: monday.Format(dateLayout),
		End:   monday.AddDate(0, 0, 6).Format(dateLayout),
	}
}

// MonthRange returns the first-through-last calendar day of t's month.
func MonthRange(t time.Time) DateRange {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{
		Start: first.Format(dateLayout),
		End:   last.Format(dateLayout),
	}
}

// Dates enumerates every date string in the range, inclusive. An end
// before the start yields an empty slice.
func (r DateRange) Dates() []string {
	start, err := time.Parse(dateLayout, r.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, r.End)
	if err != nil {
		return nil
	}
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}
