package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"studyforge/internal/feedback"
	"studyforge/internal/llm"
	"studyforge/internal/notes"
	"studyforge/internal/quiz"
	"studyforge/internal/session"
	"studyforge/internal/store"
	"studyforge/internal/suitability"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// generationStatus maps a generation failure to an HTTP status. Input
// problems are the caller's (422); a provider reply we could not use is an
// upstream failure (502).
func generationStatus(err error) int {
	var (
		short       *quiz.ErrInsufficientContent
		cardinality *quiz.ErrWrongCardinality
		badQuestion *quiz.ErrInvalidQuestion
		badAnswer   *quiz.ErrInvalidAnswer
		malformed   *quiz.ErrMalformedResponse
		shortNotes  *notes.ErrContentTooShort
		rateLimit   *llm.ErrRateLimit
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
		truncated   *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.As(err, &short), errors.As(err, &shortNotes):
		return http.StatusUnprocessableEntity
	case errors.As(err, &cardinality), errors.As(err, &badQuestion), errors.As(err, &badAnswer):
		return http.StatusUnprocessableEntity
	case errors.As(err, &malformed), errors.As(err, &invalid), errors.As(err, &truncated):
		return http.StatusBadGateway
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func suitabilityHandler(eval *suitability.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, eval.Evaluate(req.Text))
	}
}

func quizHandler(gen quiz.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text       string    `json:"text"`
			Difficulty quiz.Tier `json:"difficulty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		questions, err := gen.Generate(r.Context(), req.Text, req.Difficulty)
		if err != nil {
			http.Error(w, err.Error(), generationStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
	}
}

func notesHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		result, err := svc.Generate(r.Context(), req.Text)
		if err != nil {
			http.Error(w, err.Error(), generationStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func feedbackHandler(svc *feedback.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Emotion string `json:"emotion"`
			Reason  string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Emotion == "" {
			http.Error(w, "emotion is required", http.StatusBadRequest)
			return
		}
		msg, err := svc.Encourage(r.Context(), req.Emotion, req.Reason)
		if err != nil {
			http.Error(w, err.Error(), generationStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": msg})
	}
}

func saveAttemptHandler(repo *store.AttemptRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec session.AttemptRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if rec.SubjectID == "" || rec.Total == 0 {
			http.Error(w, "subject_id and total are required", http.StatusBadRequest)
			return
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.TakenAt.IsZero() {
			rec.TakenAt = time.Now().UTC()
		}
		if err := repo.Save(r.Context(), rec); err != nil {
			http.Error(w, "save attempt failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
	}
}

func listAttemptsHandler(repo *store.AttemptRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempts, err := repo.BySubject(r.Context(), r.URL.Query().Get("subject"))
		if err != nil {
			http.Error(w, "list attempts failed", http.StatusInternalServerError)
			return
		}
		if attempts == nil {
			attempts = []session.AttemptRecord{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"attempts": attempts})
	}
}

func attemptStatsHandler(repo *store.AttemptRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repo.Stats(r.Context(), r.URL.Query().Get("subject"))
		if err != nil {
			http.Error(w, "stats failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
