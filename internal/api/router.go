// Package api exposes the HTTP surface: suitability checks, quiz and note
// generation, feedback, and attempt history.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"studyforge/internal/feedback"
	"studyforge/internal/notes"
	"studyforge/internal/quiz"
	"studyforge/internal/store"
	"studyforge/internal/suitability"
)

// Deps carries everything the handlers close over.
type Deps struct {
	Suitability *suitability.Evaluator
	Generator   quiz.Generator
	Notes       *notes.Service
	Feedback    *feedback.Service
	Attempts    *store.AttemptRepo

	// AllowedOrigins feeds CORS. Empty means localhost dev defaults.
	AllowedOrigins []string
}

// NewRouter builds the chi router with the standard middleware stack.
func NewRouter(deps Deps) http.Handler {
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// Generation endpoints sit on a completion provider; give them room.
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/suitability", suitabilityHandler(deps.Suitability))
		r.Post("/quiz", quizHandler(deps.Generator))
		r.Post("/notes", notesHandler(deps.Notes))
		r.Post("/feedback", feedbackHandler(deps.Feedback))
		r.Post("/attempts", saveAttemptHandler(deps.Attempts))
		r.Get("/attempts", listAttemptsHandler(deps.Attempts))
		r.Get("/attempts/stats", attemptStatsHandler(deps.Attempts))
	})

	return r
}
