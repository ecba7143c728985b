package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/internal/service"
	"github.com/limbo/timeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("successful", func(t *testing.T) {
		backupService := service.NewBackupService(&entriesRepoMock{})
		payload, err := backupService.Export(ctx)
		require.NoError(t, err)
		require.NotNil(t, payload.Version)
		assert.Equal(t, 1, *payload.Version)
		require.Len(t, payload.Data, 1)
		assert.Equal(t, testEntries, payload.Data[testDate].Entries)
		_, err = time.Parse(time.RFC3339, payload.ExportDate)
		assert.NoError(t, err)
	})

	t.Run("empty store", func(t *testing.T) {
		backupService := service.NewBackupService(&entriesRepoMock{state: stateEmptyStore})
		payload, err := backupService.Export(ctx)
		require.NoError(t, err)
		assert.Empty(t, payload.Data)
	})

	t.Run("repository error", func(t *testing.T) {
		backupService := service.NewBackupService(&entriesRepoMock{state: stateDBError})
		_, err := backupService.Export(ctx)
		assert.EqualError(t, err, "entries repository error: db error")
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	version := 1
	valid := &entity.BackupPayload{
		Version:    &version,
		ExportDate: "2025-03-03T12:00:00Z",
		Data: map[string]entity.DayData{
			testDate: {Date: testDate, Entries: testEntries},
		},
	}

	t.Run("successful", func(t *testing.T) {
		repoMock := &entriesRepoMock{}
		backupService := service.NewBackupService(repoMock)
		require.NoError(t, backupService.Import(ctx, valid))
		assert.Equal(t, valid.Data, repoMock.replaced)
	})

	t.Run("missing version", func(t *testing.T) {
		repoMock := &entriesRepoMock{}
		backupService := service.NewBackupService(repoMock)
		err := backupService.Import(ctx, &entity.BackupPayload{Data: valid.Data})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidBackupFormat)
		assert.Nil(t, repoMock.replaced)
	})

	t.Run("missing data", func(t *testing.T) {
		repoMock := &entriesRepoMock{}
		backupService := service.NewBackupService(repoMock)
		err := backupService.Import(ctx, &entity.BackupPayload{Version: &version})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidBackupFormat)
		assert.Nil(t, repoMock.replaced)
	})

	t.Run("repository error", func(t *testing.T) {
		backupService := service.NewBackupService(&entriesRepoMock{state: stateDBError})
		err := backupService.Import(ctx, valid)
		assert.EqualError(t, err, "entries repository error: db error")
	})
}
