package service

import (
	"context"

	"github.com/limbo/timeflow/pkg/entity"
)

type SaveEntryRequest struct {
	Date     string `validate:"required,datetime=2006-01-02"`
	SlotID   string `validate:"required,slot_id"`
	Activity string `validate:"max=200"`
	Category string `validate:"omitempty,category_id"`
}

type TrackerServiceI interface {
	// Returns the day's persisted entries wrapped as DayData. Unknown
	// dates yield an empty entry list
	GetDay(ctx context.Context, date string) (*entity.DayData, error)
	// Validates and stores one slot entry. An empty activity clears the
	// slot instead: only filled entries are ever persisted
	SaveEntry(ctx context.Context, req *SaveEntryRequest) error
}

type AnalyticsServiceI interface {
	// Metrics bundle for a single day
	DailyMetrics(ctx context.Context, date string) (*entity.DailyMetrics, error)
	// Aggregate bundle for the Monday-start week containing date
	WeeklyMetrics(ctx context.Context, date string) (*entity.PeriodMetrics, error)
	// Aggregate bundle for the calendar month containing date
	MonthlyMetrics(ctx context.Context, date string) (*entity.PeriodMetrics, error)
}

type BackupServiceI interface {
	// Dumps the whole store as a versioned payload
	Export(ctx context.Context) (*entity.BackupPayload, error)
	// Validates the payload and atomically replaces the store contents.
	// Returns ErrInvalidBackupFormat when version or data is missing;
	// the store is left untouched on any error
	Import(ctx context.Context, payload *entity.BackupPayload) error
}
