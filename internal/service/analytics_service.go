package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/timeflow/internal/analytics"
	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/internal/repository"
	"github.com/limbo/timeflow/pkg/entity"
)

// AnalyticsService feeds store snapshots into the pure analytics core.
// It owns range derivation and the normalization the core relies on:
// every date of a requested range gets a key, logged or not.
type AnalyticsService struct {
	repo repository.EntriesRepositoryI
}

func NewAnalyticsService(entriesRepo repository.EntriesRepositoryI) *AnalyticsService {
	if entriesRepo == nil {
		log.Fatal("provided nil entriesRepo")
	}
	return &AnalyticsService{
		repo: entriesRepo,
	}
}

func (as *AnalyticsService) DailyMetrics(ctx context.Context, date string) (*entity.DailyMetrics, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	entries, err := as.repo.ReadDay(ctx, date)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	metrics := analytics.ComputeDaily(entries)
	return &metrics, nil
}

func (as *AnalyticsService) WeeklyMetrics(ctx context.Context, date string) (*entity.PeriodMetrics, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	return as.periodMetrics(ctx, analytics.WeekRange(t))
}

func (as *AnalyticsService) MonthlyMetrics(ctx context.Context, date string) (*entity.PeriodMetrics, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	return as.periodMetrics(ctx, analytics.MonthRange(t))
}

func (as *AnalyticsService) periodMetrics(ctx context.Context, r analytics.DateRange) (*entity.PeriodMetrics, error) {
	stored, err := as.repo.ReadRange(ctx, r.Start, r.End)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	dateEntries := make(map[string][]entity.Entry)
	for _, date := range r.Dates() {
		dateEntries[date] = stored[date]
	}
	metrics := analytics.ComputePeriod(dateEntries)
	return &metrics, nil
}
