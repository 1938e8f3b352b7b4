package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"
)

type historyRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *historyRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *historyRepo) Append(ctx context.Context, runID, line string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO input_history (run_id, line, created_at) VALUES (?, ?, ?)`,
		runID, line, r.clock().UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, run_id, line, created_at FROM input_history ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e  HistoryEntry
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Line, &ts); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.CreatedAt = time.Unix(0, ts).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	slices.Reverse(entries)
	return entries, nil
}

func (r *historyRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM input_history`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return n, nil
}
