package quiz

import "fmt"

// ErrInsufficientContent indicates the source text is too short to generate
// from. Checked before any provider call.
type ErrInsufficientContent struct {
	Length int
	Min    int
}

func (e *ErrInsufficientContent) Error() string {
	return fmt.Sprintf("content too short for quiz generation: %d chars, need %d", e.Length, e.Min)
}

// ErrMalformedResponse indicates the provider reply contained no parseable
// JSON array. Reason distinguishes "no array found" from "array found but
// malformed".
type ErrMalformedResponse struct {
	Reason string
	Err    error
}

func (e *ErrMalformedResponse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed generation response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed generation response: %s", e.Reason)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrWrongCardinality indicates the reply parsed but held the wrong number
// of questions.
type ErrWrongCardinality struct {
	Count int
}

func (e *ErrWrongCardinality) Error() string {
	return fmt.Sprintf("expected %d-%d questions, got %d", MinQuestions, MaxQuestions, e.Count)
}

// ErrInvalidQuestion indicates a candidate had a missing prompt or an
// unknown kind/tier. One bad question discards the whole batch.
type ErrInvalidQuestion struct {
	Index  int
	Reason string
}

func (e *ErrInvalidQuestion) Error() string {
	return fmt.Sprintf("invalid question at index %d: %s", e.Index, e.Reason)
}

// ErrInvalidAnswer indicates a candidate's answer could not be validated or
// repaired for its kind. One bad answer discards the whole batch.
type ErrInvalidAnswer struct {
	Index  int
	Reason string
}

func (e *ErrInvalidAnswer) Error() string {
	return fmt.Sprintf("invalid answer at index %d: %s", e.Index, e.Reason)
}
