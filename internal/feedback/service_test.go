package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"studyforge/internal/llm"
)

func TestEncourage_TrimsReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("\n  Feeling stuck before an exam is normal. You've already done the hard part by showing up.  \n"),
	})
	svc := NewService(mock, DefaultConfig())

	msg, err := svc.Encourage(context.Background(), "anxious", "exam tomorrow")
	if err != nil {
		t.Fatalf("Encourage: %v", err)
	}
	if msg == "" || msg[0] == ' ' || msg[len(msg)-1] == ' ' {
		t.Errorf("message not trimmed: %q", msg)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("feedback request must not carry a schema")
	}
}

func TestEncourage_RejectsEmptyInputsAndReplies(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Encourage(context.Background(), "   ", ""); err == nil {
		t.Error("blank emotion accepted")
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	svc = NewService(mock, DefaultConfig())
	_, err := svc.Encourage(context.Background(), "tired", "")
	var e *llm.ErrInvalidResponse
	if !errors.As(err, &e) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}
