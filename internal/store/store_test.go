package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyforge/internal/answers"
	"studyforge/internal/llm"
	"studyforge/internal/quiz"
	"studyforge/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAttempt(id, subject string, takenAt time.Time) session.AttemptRecord {
	return session.AttemptRecord{
		ID:         id,
		SubjectID:  subject,
		MaterialID: "chapter-3",
		Score:      4,
		Total:      5,
		Percentage: 80,
		TakenAt:    takenAt,
		Answers: []session.AnswerDetail{
			{
				Prompt:    "Capital of France?",
				Kind:      quiz.KindMultipleChoice,
				Choices:   []string{"Paris", "Lyon", "Nice", "Lille"},
				Given:     answers.Text("Paris"),
				Correct:   answers.Text("Paris"),
				IsCorrect: true,
				Tier:      quiz.TierEasy,
				Cognitive: quiz.LevelRemember,
			},
			{
				Prompt:    "The Seine freezes every winter.",
				Kind:      quiz.KindTrueFalse,
				Given:     answers.Bool(true),
				Correct:   answers.Bool(false),
				IsCorrect: false,
				Tier:      quiz.TierMedium,
				Cognitive: quiz.LevelUnderstand,
			},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestAttempts_SaveAndListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, sampleAttempt("a1", "biology", base)))
	require.NoError(t, repo.Save(ctx, sampleAttempt("a2", "biology", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, sampleAttempt("a3", "history", base.Add(2*time.Hour))))

	got, err := repo.BySubject(ctx, "biology")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "a1", got[1].ID)

	// The answer rows round-trip intact, value kinds included.
	require.Len(t, got[0].Answers, 2)
	assert.Equal(t, answers.Text("Paris"), got[0].Answers[0].Given)
	assert.Equal(t, answers.Bool(false), got[0].Answers[1].Correct)
	assert.Equal(t, base.Add(time.Hour), got[0].TakenAt)

	all, err := repo.BySubject(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAttempts_Stats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := sampleAttempt("a1", "biology", base)
	b := sampleAttempt("a2", "biology", base.Add(time.Minute))
	b.Percentage = 60
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	stats, err := repo.Stats(ctx, "biology")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAttempts)
	assert.Equal(t, 70.0, stats.MeanPercentage)
	assert.Equal(t, TierStats{Correct: 2, Attempted: 2}, stats.Tiers[quiz.TierEasy])
	assert.Equal(t, TierStats{Correct: 0, Attempted: 2}, stats.Tiers[quiz.TierMedium])
}

func TestAttempts_StatsEmptySubject(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Attempts().Stats(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0.0, stats.MeanPercentage)
	assert.Empty(t, stats.Tiers)
}

func TestRequestLog_RecordAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.RequestLog()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "quiz",
		InputTokens: 120, OutputTokens: 340, LatencyMs: 15, Success: true,
	}))
	require.NoError(t, repo.Record(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "notes",
		Success: false, ErrorMessage: "rate limited",
	}))

	n, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.Count(ctx, "quiz")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAttemptRepoIsRecorder(t *testing.T) {
	var _ session.Recorder = (*AttemptRepo)(nil)
}
