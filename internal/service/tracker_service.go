package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/internal/repository"
	"github.com/limbo/timeflow/pkg/entity"
)

type TrackerService struct {
	repo repository.EntriesRepositoryI
}

func NewTrackerService(entriesRepo repository.EntriesRepositoryI) *TrackerService {
	if entriesRepo == nil {
		log.Fatal("provided nil entriesRepo")
	}
	return &TrackerService{
		repo: entriesRepo,
	}
}

func (ts *TrackerService) GetDay(ctx context.Context, date string) (*entity.DayData, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	entries, err := ts.repo.ReadDay(ctx, date)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return &entity.DayData{
		Date:    date,
		Entries: entries,
	}, nil
}

func (ts *TrackerService) SaveEntry(ctx context.Context, req *SaveEntryRequest) error {
	if err := validate.Struct(*req); err != nil {
		return validationError(err)
	}
	// Clearing the activity removes the row: the store holds filled
	// entries only.
	if req.Activity == "" {
		err := ts.repo.DeleteEntry(ctx, req.Date, req.SlotID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrEntryNotFound) {
				return err
			}
			return errors.New("entries repository error: " + err.Error())
		}
		return nil
	}
	err := ts.repo.UpsertEntry(ctx, req.Date, entity.Entry{
		SlotID:   req.SlotID,
		Activity: req.Activity,
		Category: req.Category,
	})
	if err != nil {
		return errors.New("entries repository error: " + err.Error())
	}
	return nil
}

// validationError joins field errors onto the ErrValidation sentinel so
// callers can match the whole class with errors.Is.
func validationError(err error) error {
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		joined := errorvalues.ErrValidation
		for _, fieldErr := range fieldErrors {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.New("validation unexpected error: " + err.Error())
}
