package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"studyforge/internal/quiz"
	"studyforge/internal/session"
)

// AttemptRepo persists completed quiz attempts. It satisfies
// session.Recorder.
type AttemptRepo struct {
	db *sql.DB
}

// Save inserts one attempt. Answer rows travel as a JSON blob; they are
// read back whole, never queried by column.
func (r *AttemptRepo) Save(ctx context.Context, rec session.AttemptRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, subject_id, material_id, score, total, percentage, taken_at, answers_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SubjectID, rec.MaterialID, rec.Score, rec.Total, rec.Percentage,
		rec.TakenAt.Unix(), string(answers))
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// Record satisfies session.Recorder.
func (r *AttemptRepo) Record(ctx context.Context, rec session.AttemptRecord) error {
	return r.Save(ctx, rec)
}

// BySubject returns attempts newest first. An empty subjectID returns all
// attempts.
func (r *AttemptRepo) BySubject(ctx context.Context, subjectID string) ([]session.AttemptRecord, error) {
	query := `SELECT id, subject_id, material_id, score, total, percentage, taken_at, answers_json
		FROM attempts`
	args := []any{}
	if subjectID != "" {
		query += ` WHERE subject_id = ?`
		args = append(args, subjectID)
	}
	query += ` ORDER BY taken_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []session.AttemptRecord
	for rows.Next() {
		var rec session.AttemptRecord
		var takenAt int64
		var answers string
		if err := rows.Scan(&rec.ID, &rec.SubjectID, &rec.MaterialID, &rec.Score,
			&rec.Total, &rec.Percentage, &takenAt, &answers); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.TakenAt = time.Unix(takenAt, 0).UTC()
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("parse answers for attempt %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TierStats is the correct/attempted breakdown for one difficulty.
type TierStats struct {
	Correct   int `json:"correct"`
	Attempted int `json:"attempted"`
}

// Stats summarizes a subject's attempt history.
type Stats struct {
	TotalAttempts  int                     `json:"total_attempts"`
	MeanPercentage float64                 `json:"mean_percentage"`
	Tiers          map[quiz.Tier]TierStats `json:"tiers"`
}

// Stats aggregates the subject's history. The per-tier breakdown comes from
// the stored answer rows, so it reflects individual questions rather than
// whole attempts.
func (r *AttemptRepo) Stats(ctx context.Context, subjectID string) (Stats, error) {
	attempts, err := r.BySubject(ctx, subjectID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Tiers: make(map[quiz.Tier]TierStats)}
	stats.TotalAttempts = len(attempts)
	if len(attempts) == 0 {
		return stats, nil
	}

	var pctSum float64
	for _, a := range attempts {
		pctSum += a.Percentage
		for _, ans := range a.Answers {
			ts := stats.Tiers[ans.Tier]
			ts.Attempted++
			if ans.IsCorrect {
				ts.Correct++
			}
			stats.Tiers[ans.Tier] = ts
		}
	}
	stats.MeanPercentage = math.Round(pctSum/float64(len(attempts))*10) / 10
	return stats, nil
}
