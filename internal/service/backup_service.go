package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/internal/repository"
	"github.com/limbo/timeflow/pkg/entity"
)

// BackupFormatVersion is the only export format this build produces.
const BackupFormatVersion = 1

type BackupService struct {
	repo repository.EntriesRepositoryI
}

func NewBackupService(entriesRepo repository.EntriesRepositoryI) *BackupService {
	if entriesRepo == nil {
		log.Fatal("provided nil entriesRepo")
	}
	return &BackupService{
		repo: entriesRepo,
	}
}

func (bs *BackupService) Export(ctx context.Context) (*entity.BackupPayload, error) {
	data, err := bs.repo.ExportAll(ctx)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	version := BackupFormatVersion
	return &entity.BackupPayload{
		Version:    &version,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}, nil
}

func (bs *BackupService) Import(ctx context.Context, payload *entity.BackupPayload) error {
	if payload == nil || payload.Version == nil || payload.Data == nil {
		return errorvalues.ErrInvalidBackupFormat
	}
	err := bs.repo.ReplaceAll(ctx, payload.Data)
	if err != nil {
		return errors.New("entries repository error: " + err.Error())
	}
	return nil
}
