package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"studyforge/internal/answers"
)

// candidate is one unvalidated question as decoded from the model reply.
// Enum fields stay as raw strings and the answer stays as raw JSON so that
// validation owns every rejection, with the failing index attached.
type candidate struct {
	Kind        string          `json:"kind"`
	Prompt      string          `json:"question"`
	Answer      json.RawMessage `json:"answer"`
	Choices     []string        `json:"options"`
	Tier        string          `json:"difficulty"`
	Cognitive   string          `json:"cognitive_level"`
	Explanation string          `json:"explanation"`
}

// validateCandidate turns a candidate into a Question, repairing what it can
// and rejecting what it cannot. Repairs: a missing or unknown cognitive
// level falls back to "understand"; a multiple choice answer that matches a
// choice only after normalization is replaced with that choice's literal
// text. Everything else is a hard failure.
func validateCandidate(idx int, c candidate) (Question, error) {
	if c.Prompt == "" {
		return Question{}, &ErrInvalidQuestion{Index: idx, Reason: "empty question text"}
	}
	kind := Kind(c.Kind)
	if !knownKinds[kind] {
		return Question{}, &ErrInvalidQuestion{Index: idx, Reason: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
	tier := Tier(c.Tier)
	if !knownTiers[tier] {
		return Question{}, &ErrInvalidQuestion{Index: idx, Reason: fmt.Sprintf("unknown difficulty %q", c.Tier)}
	}

	level := CognitiveLevel(strings.ToLower(strings.TrimSpace(c.Cognitive)))
	if !knownLevels[level] {
		level = LevelUnderstand
	}

	answer, err := decodeAnswer(idx, c.Answer)
	if err != nil {
		return Question{}, err
	}

	q := Question{
		Kind:        kind,
		Prompt:      c.Prompt,
		Answer:      answer,
		Tier:        tier,
		Cognitive:   level,
		Explanation: c.Explanation,
	}

	switch kind {
	case KindTrueFalse:
		if !answer.IsBool() {
			return Question{}, &ErrInvalidAnswer{Index: idx, Reason: "true_false answer must be a boolean"}
		}

	case KindMultipleChoice:
		if answer.IsBool() {
			return Question{}, &ErrInvalidAnswer{Index: idx, Reason: "multiple_choice answer must be text"}
		}
		if len(c.Choices) != ChoiceCount {
			return Question{}, &ErrInvalidQuestion{Index: idx, Reason: fmt.Sprintf("multiple_choice needs %d options, got %d", ChoiceCount, len(c.Choices))}
		}
		repaired, err := repairChoiceAnswer(idx, answer, c.Choices)
		if err != nil {
			return Question{}, err
		}
		q.Answer = repaired
		q.Choices = c.Choices

	default:
		// fill_blank and short_answer take free text.
		if answer.IsBool() {
			return Question{}, &ErrInvalidAnswer{Index: idx, Reason: fmt.Sprintf("%s answer must be text", kind)}
		}
		if answer.Text() == "" {
			return Question{}, &ErrInvalidAnswer{Index: idx, Reason: "empty answer text"}
		}
	}

	return q, nil
}

// decodeAnswer coerces the raw answer into a Value. Numbers, objects and
// nulls are rejected here so the failure carries the candidate's index
// instead of aborting the batch parse.
func decodeAnswer(idx int, raw json.RawMessage) (answers.Value, error) {
	if len(raw) == 0 {
		return answers.Value{}, &ErrInvalidAnswer{Index: idx, Reason: "missing answer"}
	}
	var v answers.Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return answers.Value{}, &ErrInvalidAnswer{Index: idx, Reason: fmt.Sprintf("answer must be a string or boolean: %v", err)}
	}
	return v, nil
}

// repairChoiceAnswer resolves a multiple choice answer against the options.
// An exact match passes through; a normalized match is repaired to the
// option's literal text; duplicate options or an answer matching none of
// them reject the candidate.
func repairChoiceAnswer(idx int, answer answers.Value, choices []string) (answers.Value, error) {
	byKey := make(map[answers.Value]string, len(choices))
	for _, choice := range choices {
		key := answers.Normalize(answers.Text(choice))
		if _, dup := byKey[key]; dup {
			return answers.Value{}, &ErrInvalidQuestion{Index: idx, Reason: fmt.Sprintf("duplicate option %q", choice)}
		}
		byKey[key] = choice
	}

	for _, choice := range choices {
		if answer.Text() == choice {
			return answer, nil
		}
	}
	if literal, ok := byKey[answers.Normalize(answer)]; ok {
		return answers.Text(literal), nil
	}
	return answers.Value{}, &ErrInvalidAnswer{Index: idx, Reason: fmt.Sprintf("answer %q matches no option", answer.Text())}
}
