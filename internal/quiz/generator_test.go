package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"studyforge/internal/answers"
	"studyforge/internal/llm"
)

const sampleContent = `Photosynthesis is the process by which green plants
convert light energy into chemical energy. Chlorophyll in the chloroplasts
absorbs light, which drives the conversion of carbon dioxide and water into
glucose and oxygen. The light-dependent reactions occur in the thylakoid
membranes, while the Calvin cycle fixes carbon in the stroma.`

// batchReply renders n valid true/false candidates wrapped in chatty prose,
// the way providers actually reply.
func batchReply(n int) json.RawMessage {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"kind": "true_false",
			"question": "Statement %d about photosynthesis is accurate.",
			"answer": true,
			"difficulty": "easy",
			"cognitive_level": "understand",
			"explanation": "Stated directly in the material."
		}`, i+1)
	}
	reply := "Here are your questions:\n[" + strings.Join(items, ",") + "]\nGood luck!"
	return json.RawMessage(reply)
}

func newTestGenerator(replies ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(replies...)
	return NewGenerator(mock, DefaultConfig()), mock
}

func TestGenerate_HappyPath(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: batchReply(6)})

	qs, err := gen.Generate(context.Background(), sampleContent, TierEasy)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 6 {
		t.Fatalf("got %d questions, want 6", len(qs))
	}
	for i, q := range qs {
		if q.Kind != KindTrueFalse {
			t.Errorf("question %d kind = %q", i, q.Kind)
		}
		if q.Answer != answers.Bool(true) {
			t.Errorf("question %d answer = %v", i, q.Answer)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d", mock.CallCount())
	}
}

func TestGenerate_SixCleanMCQsPassThroughUntouched(t *testing.T) {
	items := make([]string, 6)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"kind": "multiple_choice",
			"question": "Question %d?",
			"answer": "Option A",
			"options": ["Option A", "Option B", "Option C", "Option D"],
			"difficulty": "medium",
			"cognitive_level": "apply"
		}`, i+1)
	}
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage("[" + strings.Join(items, ",") + "]"),
	})

	qs, err := gen.Generate(context.Background(), sampleContent, TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 6 {
		t.Fatalf("got %d questions, want 6", len(qs))
	}
	for i, q := range qs {
		if q.Answer != answers.Text("Option A") {
			t.Errorf("question %d answer = %v, want untouched literal", i, q.Answer)
		}
		if q.Cognitive != LevelApply {
			t.Errorf("question %d cognitive = %q", i, q.Cognitive)
		}
	}
}

func TestGenerate_ShortContentSkipsProvider(t *testing.T) {
	gen, mock := newTestGenerator()

	_, err := gen.Generate(context.Background(), "too short", TierEasy)
	var e *ErrInsufficientContent
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want ErrInsufficientContent", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times for short content", mock.CallCount())
	}
}

func TestGenerate_WrongCardinality(t *testing.T) {
	cases := []int{3, 8}
	for _, n := range cases {
		t.Run(fmt.Sprintf("%d questions", n), func(t *testing.T) {
			gen, _ := newTestGenerator(llm.MockResponse{Content: batchReply(n)})

			_, err := gen.Generate(context.Background(), sampleContent, TierEasy)
			var e *ErrWrongCardinality
			if !errors.As(err, &e) {
				t.Fatalf("error = %v, want ErrWrongCardinality", err)
			}
			if e.Count != n {
				t.Errorf("count = %d, want %d", e.Count, n)
			}
		})
	}
}

func TestGenerate_NoArrayInReply(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage("I'm sorry, I can't create questions from this material."),
	})

	_, err := gen.Generate(context.Background(), sampleContent, TierMedium)
	var e *ErrMalformedResponse
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want ErrMalformedResponse", err)
	}
}

func TestGenerate_OneBadQuestionRejectsBatch(t *testing.T) {
	items := make([]string, 5)
	for i := range items {
		items[i] = `{"kind":"true_false","question":"Fine.","answer":true,"difficulty":"easy","cognitive_level":"remember"}`
	}
	items[2] = `{"kind":"essay","question":"Discuss.","answer":"n/a","difficulty":"easy","cognitive_level":"remember"}`
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage("[" + strings.Join(items, ",") + "]"),
	})

	_, err := gen.Generate(context.Background(), sampleContent, TierEasy)
	var e *ErrInvalidQuestion
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want ErrInvalidQuestion", err)
	}
	if e.Index != 2 {
		t.Errorf("index = %d, want 2", e.Index)
	}
}

func TestGenerate_RepairsNormalizedChoiceAnswer(t *testing.T) {
	mcq := `{
		"kind": "multiple_choice",
		"question": "Where does the Calvin cycle occur?",
		"answer": "the stroma!",
		"options": ["The stroma", "The thylakoid membrane", "The cell wall", "The nucleus"],
		"difficulty": "medium",
		"cognitive_level": "remember"
	}`
	filler := `{"kind":"true_false","question":"Plants produce oxygen.","answer":true,"difficulty":"medium","cognitive_level":"remember"}`
	items := []string{mcq, filler, filler, filler, filler}
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage("[" + strings.Join(items, ",") + "]"),
	})

	qs, err := gen.Generate(context.Background(), sampleContent, TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if qs[0].Answer != answers.Text("The stroma") {
		t.Errorf("answer = %v, want repaired literal option", qs[0].Answer)
	}
}

func TestGenerate_PromptCarriesTierKinds(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: batchReply(5)})

	if _, err := gen.Generate(context.Background(), sampleContent, TierHard); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Use only these question kinds: multiple_choice, fill_blank, short_answer.") {
		t.Error("hard tier prompt is missing its kind constraint")
	}
	if mock.Calls[0].Schema != nil {
		t.Error("quiz generation must not set a response schema")
	}
}
