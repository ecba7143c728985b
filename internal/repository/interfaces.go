package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/timeflow/pkg/entity"
)

type EntriesRepositoryI interface {
	// Reads one day's filled entries, ordered by slot id (chronological)
	ReadDay(ctx context.Context, date string) ([]entity.Entry, error)
	// Reads all entries between start and end inclusive, grouped by date.
	// Dates without rows are absent from the map
	ReadRange(ctx context.Context, start, end string) (map[string][]entity.Entry, error)
	// Inserts or overwrites the entry for (date, slot)
	UpsertEntry(ctx context.Context, date string, e entity.Entry) error
	// Removes the entry for (date, slot)
	DeleteEntry(ctx context.Context, date, slotID string) error
	// Dumps the whole store keyed by date, for backup export
	ExportAll(ctx context.Context) (map[string]entity.DayData, error)
	// Replaces the whole store in a single transaction, for backup import
	ReplaceAll(ctx context.Context, data map[string]entity.DayData) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
