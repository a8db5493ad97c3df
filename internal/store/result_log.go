package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"docket/internal/domain"
)

// SQLiteResultLog persists routing attempts in a SQLite table.
type SQLiteResultLog struct {
	db *sql.DB
}

// NewSQLiteResultLog opens (or creates) the database at dbPath and migrates it.
func NewSQLiteResultLog(dbPath string, cfg SQLiteConfig) (*SQLiteResultLog, error) {
	db, err := openSQLite(dbPath, cfg)
	if err != nil {
		return nil, err
	}
	l := &SQLiteResultLog{db: db}
	if err := l.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return l, nil
}

// Close closes the database connection.
func (l *SQLiteResultLog) Close() error {
	return l.db.Close()
}

func (l *SQLiteResultLog) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS task_results (
		id TEXT PRIMARY KEY,
		task TEXT NOT NULL,
		model TEXT NOT NULL,
		success INTEGER NOT NULL CHECK(success IN (0, 1)),
		output TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		duration_ns INTEGER NOT NULL,
		tokens_used INTEGER NOT NULL DEFAULT 0,
		started_utc INTEGER NOT NULL,
		seq INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_task_results_seq ON task_results(seq);
	CREATE INDEX IF NOT EXISTS idx_task_results_model ON task_results(model);
	`
	_, err := l.db.Exec(schema)
	return err
}

// AppendResult inserts r at the end of the log.
func (l *SQLiteResultLog) AppendResult(ctx context.Context, r domain.TaskResult) error {
	success := 0
	if r.Success {
		success = 1
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO task_results (id, task, model, success, output, error, duration_ns, tokens_used, started_utc, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM task_results))`,
		r.ID, string(r.Task), string(r.Model), success, r.Output, r.Error,
		r.Duration.Nanoseconds(), r.TokensUsed, r.StartedUTC,
	)
	if err != nil {
		return fmt.Errorf("insert task result: %w", err)
	}
	return nil
}

// ListResults returns the whole log in insertion order.
func (l *SQLiteResultLog) ListResults(ctx context.Context) ([]domain.TaskResult, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, task, model, success, output, error, duration_ns, tokens_used, started_utc
		FROM task_results ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query task results: %w", err)
	}
	defer rows.Close()

	var out []domain.TaskResult
	for rows.Next() {
		var (
			r          domain.TaskResult
			task       string
			model      string
			success    int
			durationNS int64
		)
		if err := rows.Scan(&r.ID, &task, &model, &success, &r.Output, &r.Error,
			&durationNS, &r.TokensUsed, &r.StartedUTC); err != nil {
			return nil, err
		}
		r.Task = domain.TaskType(task)
		r.Model = domain.ModelID(model)
		r.Success = success == 1
		r.Duration = time.Duration(durationNS)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Compile-time assertion that SQLiteResultLog implements domain.ResultLog.
var _ domain.ResultLog = (*SQLiteResultLog)(nil)
