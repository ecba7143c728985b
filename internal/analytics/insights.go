package analytics

import (
	"fmt"

	"github.com/limbo/timeflow/pkg/entity"
)

// dailyFacts is the aggregate view the daily insight rules read.
type dailyFacts struct {
	TotalMinutes    int
	Score           int
	MaxStreakSlots  int
	MeetingMinutes  int
	BreakMinutes    int
	ExerciseMinutes int
}

// dailyRule is one independent insight predicate plus its message. Rules
// are evaluated in order and are not mutually exclusive, except where a
// predicate itself excludes an earlier rule's condition.
type dailyRule struct {
	When func(f dailyFacts) bool
	Emit func(f dailyFacts) entity.Insight
}

var dailyRules = []dailyRule{
	{
		When: func(f dailyFacts) bool { return f.Score >= 70 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: "Incredible focus today! You spent over 70% of your time on productive tasks."}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.Score >= 50 && f.Score < 70 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: "Solid day! Over half your time went to productive work."}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.Score < 50 && f.TotalMinutes > 0 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightNeutral,
				Text: "Consider blocking off more time for deep work tomorrow."}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.MaxStreakSlots >= 4 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: fmt.Sprintf("Great focus streak! You had %d minutes of uninterrupted productive time.", f.MaxStreakSlots*15)}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.MeetingMinutes > 120 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightWarning,
				Text: fmt.Sprintf("You spent %s hours in meetings. Consider protecting more focus time.", formatHours(f.MeetingMinutes))}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.BreakMinutes == 0 && f.TotalMinutes > 120 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightWarning,
				Text: "No breaks logged! Remember to take breaks for sustained productivity."}
		},
	},
	{
		When: func(f dailyFacts) bool { return f.ExerciseMinutes > 0 },
		Emit: func(f dailyFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: "Nice work fitting in exercise today!"}
		},
	},
}

func dailyInsights(f dailyFacts) []entity.Insight {
	insights := make([]entity.Insight, 0, len(dailyRules))
	for _, r := range dailyRules {
		if r.When(f) {
			insights = append(insights, r.Emit(f))
		}
	}
	return insights
}

// periodFacts is the aggregate view the period insight rules read.
type periodFacts struct {
	TotalDays      int
	DaysWithData   int
	TotalMinutes   int
	Score          int
	MeetingMinutes int
	// BestDay is the highest-scoring day with data, set only when at
	// least two days have data.
	BestDayLabel string
	BestDayScore int
	HasBestDay   bool
}

type periodRule struct {
	When func(f periodFacts) bool
	Emit func(f periodFacts) entity.Insight
}

var periodRules = []periodRule{
	{
		When: func(f periodFacts) bool { return f.DaysWithData < f.TotalDays },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightNeutral,
				Text: fmt.Sprintf("You logged data on %d of %d days in this period.", f.DaysWithData, f.TotalDays)}
		},
	},
	{
		When: func(f periodFacts) bool { return f.DaysWithData == f.TotalDays },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: fmt.Sprintf("Perfect logging streak! You tracked all %d days.", f.TotalDays)}
		},
	},
	{
		When: func(f periodFacts) bool { return f.Score >= 70 },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: fmt.Sprintf("Strong period! %d%% of your logged time was productive.", f.Score)}
		},
	},
	{
		When: func(f periodFacts) bool { return f.Score >= 50 && f.Score < 70 },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: fmt.Sprintf("Solid productivity at %d%% across the period.", f.Score)}
		},
	},
	{
		When: func(f periodFacts) bool { return f.Score < 50 && f.TotalMinutes > 0 },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightNeutral,
				Text: "Consider blocking off more time for deep work."}
		},
	},
	{
		When: func(f periodFacts) bool { return f.HasBestDay },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightPositive,
				Text: fmt.Sprintf("Most productive day: %s at %d%%.", f.BestDayLabel, f.BestDayScore)}
		},
	},
	{
		When: func(f periodFacts) bool { return f.MeetingMinutes > 300 },
		Emit: func(f periodFacts) entity.Insight {
			return entity.Insight{Type: entity.InsightWarning,
				Text: fmt.Sprintf("%s hours in meetings this period. Consider protecting more focus blocks.", formatHours(f.MeetingMinutes))}
		},
	},
}

// periodInsights evaluates the period rule table. A period with no logged
// days produces no insights at all.
func periodInsights(f periodFacts) []entity.Insight {
	insights := make([]entity.Insight, 0, len(periodRules))
	if f.DaysWithData == 0 {
		return insights
	}
	for _, r := range periodRules {
		if r.When(f) {
			insights = append(insights, r.Emit(f))
		}
	}
	return insights
}
