package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyforge/internal/answers"
	"studyforge/internal/feedback"
	"studyforge/internal/llm"
	"studyforge/internal/notes"
	"studyforge/internal/quiz"
	"studyforge/internal/session"
	"studyforge/internal/store"
	"studyforge/internal/suitability"
)

func testRouter(t *testing.T, mock *llm.MockProvider) http.Handler {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return NewRouter(Deps{
		Suitability: suitability.Default(),
		Generator:   quiz.NewGenerator(mock, quiz.DefaultConfig()),
		Notes:       notes.NewService(mock, notes.DefaultConfig()),
		Feedback:    feedback.NewService(mock, feedback.DefaultConfig()),
		Attempts:    s.Attempts(),
	})
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func quizReply(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = `{"kind":"true_false","question":"Plants respire.","answer":true,"difficulty":"easy","cognitive_level":"remember"}`
	}
	return "[" + strings.Join(items, ",") + "]"
}

var apiContent = strings.Repeat("Photosynthesis converts light energy into chemical energy in plants. ", 3)

func TestSuitabilityEndpoint(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider())

	w := postJSON(t, h, "/api/suitability", map[string]string{"text": "lorem ipsum dolor sit amet"})
	require.Equal(t, http.StatusOK, w.Code)

	var verdict suitability.Verdict
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
	assert.False(t, verdict.Worthy)
	assert.NotEmpty(t, verdict.Reasons)
}

func TestQuizEndpoint_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(quizReply(5))})
	h := testRouter(t, mock)

	w := postJSON(t, h, "/api/quiz", map[string]string{"text": apiContent, "difficulty": "easy"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []quiz.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 5)
}

func TestQuizEndpoint_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		body map[string]string
		mock llm.MockResponse
		want int
	}{
		{
			"short content",
			map[string]string{"text": "tiny", "difficulty": "easy"},
			llm.MockResponse{},
			http.StatusUnprocessableEntity,
		},
		{
			"wrong cardinality",
			map[string]string{"text": apiContent, "difficulty": "easy"},
			llm.MockResponse{Content: json.RawMessage(quizReply(3))},
			http.StatusUnprocessableEntity,
		},
		{
			"no array in reply",
			map[string]string{"text": apiContent, "difficulty": "easy"},
			llm.MockResponse{Content: json.RawMessage("no questions today")},
			http.StatusBadGateway,
		},
		{
			"provider down",
			map[string]string{"text": apiContent, "difficulty": "easy"},
			llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
			http.StatusServiceUnavailable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := testRouter(t, llm.NewMockProvider(tc.mock))
			w := postJSON(t, h, "/api/quiz", tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestNotesEndpoint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"summary": "Plants make food from light.",
		"key_concepts": ["photosynthesis"],
		"visual_suggestions": [],
		"notable_insights": []
	}`)})
	h := testRouter(t, mock)

	w := postJSON(t, h, "/api/notes", map[string]string{"text": apiContent})
	require.Equal(t, http.StatusOK, w.Code)

	var got notes.StudyNotes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"photosynthesis"}, got.KeyConcepts)
}

func TestFeedbackEndpoint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("You're closer than you think.")})
	h := testRouter(t, mock)

	w := postJSON(t, h, "/api/feedback", map[string]string{"emotion": "discouraged", "reason": "low score"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])

	w = postJSON(t, h, "/api/feedback", map[string]string{"reason": "no emotion"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttemptEndpoints_RoundTrip(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider())

	rec := session.AttemptRecord{
		SubjectID:  "biology",
		Score:      1,
		Total:      2,
		Percentage: 50,
		TakenAt:    time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Answers: []session.AnswerDetail{
			{Prompt: "Q1", Kind: quiz.KindTrueFalse, Given: answers.Bool(true), Correct: answers.Bool(true), IsCorrect: true, Tier: quiz.TierEasy},
			{Prompt: "Q2", Kind: quiz.KindShortAnswer, Given: answers.Text("x"), Correct: answers.Text("y"), Tier: quiz.TierHard},
		},
	}
	w := postJSON(t, h, "/api/attempts", rec)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])

	req := httptest.NewRequest(http.MethodGet, "/api/attempts?subject=biology", nil)
	lw := httptest.NewRecorder()
	h.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)
	var listed struct {
		Attempts []session.AttemptRecord `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &listed))
	require.Len(t, listed.Attempts, 1)
	assert.Equal(t, created["id"], listed.Attempts[0].ID)

	sreq := httptest.NewRequest(http.MethodGet, "/api/attempts/stats?subject=biology", nil)
	sw := httptest.NewRecorder()
	h.ServeHTTP(sw, sreq)
	require.Equal(t, http.StatusOK, sw.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(sw.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalAttempts)
	assert.Equal(t, 50.0, stats.MeanPercentage)
	assert.Equal(t, store.TierStats{Correct: 1, Attempted: 1}, stats.Tiers[quiz.TierEasy])
}

func TestAttemptEndpoint_RejectsIncomplete(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider())

	w := postJSON(t, h, "/api/attempts", map[string]any{"score": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAttempts_EmptyIsArray(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/api/attempts", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attempts":[]`)
}
