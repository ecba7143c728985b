package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/timeflow/internal/error_values"
	"github.com/limbo/timeflow/pkg/cleanup"
	"github.com/limbo/timeflow/pkg/entity"
)

const dateLayout = "2006-01-02"

// EntriesRepository is the entry store: one row per (date, slot), filled
// entries only. Slot-grid gaps are represented by absent rows, never by
// rows with empty activity.
type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) ReadDay(ctx context.Context, date string) ([]entity.Entry, error) {
	entries := make([]entity.Entry, 0, 8)
	rows, err := er.conn.Query(ctx,
		`SELECT slot_id, activity, category FROM day_entries WHERE entry_date = $1 ORDER BY slot_id;`, date)
	if err != nil {
		return nil, errors.New("reading day entries error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.Entry
		err = rows.Scan(&e.SlotID, &e.Activity, &e.Category)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return entries, nil
}

func (er *EntriesRepository) ReadRange(ctx context.Context, start, end string) (map[string][]entity.Entry, error) {
	rows, err := er.conn.Query(ctx,
		`SELECT entry_date, slot_id, activity, category FROM day_entries
		WHERE entry_date >= $1 AND entry_date <= $2 ORDER BY entry_date, slot_id;`, start, end)
	if err != nil {
		return nil, errors.New("reading range entries error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[string][]entity.Entry)
	for rows.Next() {
		var (
			entryDate time.Time
			e         entity.Entry
		)
		err = rows.Scan(&entryDate, &e.SlotID, &e.Activity, &e.Category)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		date := entryDate.Format(dateLayout)
		result[date] = append(result[date], e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (er *EntriesRepository) UpsertEntry(ctx context.Context, date string, e entity.Entry) error {
	_, err := er.conn.Exec(ctx,
		`INSERT INTO day_entries (entry_date, slot_id, activity, category) VALUES ($1, $2, $3, $4)
		ON CONFLICT (entry_date, slot_id) DO UPDATE SET activity = $3, category = $4;`,
		date, e.SlotID, e.Activity, e.Category,
	)
	if err != nil {
		return errors.New("upserting entry error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) DeleteEntry(ctx context.Context, date, slotID string) error {
	ct, err := er.conn.Exec(ctx,
		`DELETE FROM day_entries WHERE entry_date = $1 AND slot_id = $2;`, date, slotID)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) ExportAll(ctx context.Context) (map[string]entity.DayData, error) {
	rows, err := er.conn.Query(ctx,
		`SELECT entry_date, slot_id, activity, category FROM day_entries ORDER BY entry_date, slot_id;`)
	if err != nil {
		return nil, errors.New("exporting entries error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[string]entity.DayData)
	for rows.Next() {
		var (
			entryDate time.Time
			e         entity.Entry
		)
		err = rows.Scan(&entryDate, &e.SlotID, &e.Activity, &e.Category)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		date := entryDate.Format(dateLayout)
		dd := result[date]
		dd.Date = date
		dd.Entries = append(dd.Entries, e)
		result[date] = dd
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}

// ReplaceAll wipes the store and loads data inside one transaction, so a
// failed import leaves the previous contents untouched.
func (er *EntriesRepository) ReplaceAll(ctx context.Context, data map[string]entity.DayData) error {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting import transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `DELETE FROM day_entries;`)
	if err != nil {
		return errors.New("clearing store error: " + err.Error())
	}
	for date, dd := range data {
		for _, e := range dd.Entries {
			if !e.Filled() {
				continue
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO day_entries (entry_date, slot_id, activity, category) VALUES ($1, $2, $3, $4);`,
				date, e.SlotID, e.Activity, e.Category,
			)
			if err != nil {
				return errors.New("loading imported entry error: " + err.Error())
			}
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing import error: " + err.Error())
	}
	return nil
}
