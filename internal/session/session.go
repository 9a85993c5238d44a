// Package session runs a learner through a generated question batch and
// emits a single attempt record when the last answer lands.
package session

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"studyforge/internal/answers"
	"studyforge/internal/quiz"
)

// State is the session lifecycle phase.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// AnswerDetail is the per-question row of an attempt record. It carries
// enough to replay the question in a review screen without the quiz batch.
type AnswerDetail struct {
	Prompt      string              `json:"question"`
	Kind        quiz.Kind           `json:"kind"`
	Choices     []string            `json:"options,omitempty"`
	Given       answers.Value       `json:"given"`
	Correct     answers.Value       `json:"correct"`
	IsCorrect   bool                `json:"is_correct"`
	Tier        quiz.Tier           `json:"difficulty"`
	Cognitive   quiz.CognitiveLevel `json:"cognitive_level"`
	Explanation string              `json:"explanation,omitempty"`
}

// AttemptRecord is one completed quiz run.
type AttemptRecord struct {
	ID         string         `json:"id"`
	SubjectID  string         `json:"subject_id"`
	MaterialID string         `json:"material_id,omitempty"`
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage float64        `json:"percentage"`
	TakenAt    time.Time      `json:"taken_at"`
	Answers    []AnswerDetail `json:"answers"`
}

// Recorder persists completed attempts.
type Recorder interface {
	Record(ctx context.Context, rec AttemptRecord) error
}

// Outcome is what Submit reports back for one answer.
type Outcome struct {
	Correct     bool
	Expected    answers.Value
	Explanation string

	// Done is true once this submission completed the session.
	Done bool
}

// Session walks a question batch in order. It is not safe for concurrent
// use; one learner drives one session.
type Session struct {
	subjectID  string
	materialID string
	questions  []quiz.Question
	recorder   Recorder
	logf       func(format string, args ...any)

	state    State
	idx      int
	score    int
	details  []AnswerDetail
	recorded bool
	attempt  *AttemptRecord
}

// Option configures a Session.
type Option func(*Session)

// WithLogf overrides where recorder failures are logged.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Session) { s.logf = logf }
}

// Start opens a session over the given questions. A nil recorder is valid;
// completion then skips persistence.
func Start(subjectID, materialID string, questions []quiz.Question, recorder Recorder, opts ...Option) *Session {
	s := &Session{
		subjectID:  subjectID,
		materialID: materialID,
		questions:  questions,
		recorder:   recorder,
		logf:       log.Printf,
		state:      StateInProgress,
		details:    make([]AnswerDetail, 0, len(questions)),
	}
	if len(questions) == 0 {
		s.state = StateComplete
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the question awaiting an answer. ok is false once the
// session is complete.
func (s *Session) Current() (quiz.Question, bool) {
	if s.state != StateInProgress {
		return quiz.Question{}, false
	}
	return s.questions[s.idx], true
}

// Submit grades one answer against the current question and advances.
// Submitting into a completed session is a no-op with ok false; the attempt
// record is never emitted twice.
func (s *Session) Submit(ctx context.Context, given answers.Value) (Outcome, bool) {
	q, ok := s.Current()
	if !ok {
		return Outcome{}, false
	}

	correct := answers.Match(given, q.Answer)
	if correct {
		s.score++
	}
	s.details = append(s.details, AnswerDetail{
		Prompt:      q.Prompt,
		Kind:        q.Kind,
		Choices:     q.Choices,
		Given:       given,
		Correct:     q.Answer,
		IsCorrect:   correct,
		Tier:        q.Tier,
		Cognitive:   q.Cognitive,
		Explanation: q.Explanation,
	})

	s.idx++
	out := Outcome{Correct: correct, Expected: q.Answer, Explanation: q.Explanation}
	if s.idx == len(s.questions) {
		s.state = StateComplete
		out.Done = true
		s.finish(ctx)
	}
	return out, true
}

// finish emits the attempt record exactly once. Persistence failure does not
// roll the session back; the learner already has their score.
func (s *Session) finish(ctx context.Context) {
	if s.recorded {
		return
	}
	s.recorded = true
	rec := s.buildRecord()
	s.attempt = &rec
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		s.logf("session: record attempt: %v", err)
	}
}

// Record returns the attempt record for this run. Once the session is
// complete this is the exact record that was handed to the recorder, ID and
// timestamp included.
func (s *Session) Record() AttemptRecord {
	if s.attempt != nil {
		return *s.attempt
	}
	return s.buildRecord()
}

func (s *Session) buildRecord() AttemptRecord {
	pct := 0.0
	if len(s.questions) > 0 {
		pct = math.Round(float64(s.score)/float64(len(s.questions))*1000) / 10
	}
	details := make([]AnswerDetail, len(s.details))
	copy(details, s.details)
	return AttemptRecord{
		ID:         uuid.NewString(),
		SubjectID:  s.subjectID,
		MaterialID: s.materialID,
		Score:      s.score,
		Total:      len(s.questions),
		Percentage: pct,
		TakenAt:    time.Now().UTC(),
		Answers:    details,
	}
}

// Restart clears the session for another run over the same questions.
// Valid only from Complete; restarting mid-run is a no-op.
func (s *Session) Restart() bool {
	if s.state != StateComplete || len(s.questions) == 0 {
		return false
	}
	s.state = StateInProgress
	s.idx = 0
	s.score = 0
	s.details = s.details[:0]
	s.recorded = false
	s.attempt = nil
	return true
}

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// Score returns correct answers so far.
func (s *Session) Score() int { return s.score }

// Progress returns answered and total counts.
func (s *Session) Progress() (answered, total int) {
	return s.idx, len(s.questions)
}
