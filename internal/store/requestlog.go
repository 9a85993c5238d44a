package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"studyforge/internal/llm"
)

// RequestLogRepo is the SQLite sink for the completion request log. It
// satisfies llm.RequestLog.
type RequestLogRepo struct {
	db *sql.DB
}

// Record appends one completion call record.
func (r *RequestLogRepo) Record(ctx context.Context, rec llm.RequestRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens,
		rec.LatencyMs, rec.Success, rec.ErrorMessage, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save request record: %w", err)
	}
	return nil
}

// Count returns the number of logged completion calls, optionally filtered
// by purpose.
func (r *RequestLogRepo) Count(ctx context.Context, purpose string) (int, error) {
	query := `SELECT COUNT(*) FROM llm_requests`
	args := []any{}
	if purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, purpose)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count request records: %w", err)
	}
	return n, nil
}
