package llm

import (
	"context"
	"encoding/json"
	"testing"
)

type captureLog struct {
	records []RequestRecord
}

func (c *captureLog) Record(_ context.Context, rec RequestRecord) error {
	c.records = append(c.records, rec)
	return nil
}

func TestLogging_RecordsBackendNameAndPurpose(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"ok"`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	sink := &captureLog{}
	p := WithLogging(mock, "mock", sink)

	ctx := WithPurpose(context.Background(), "notes")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Provider != "mock" {
		t.Errorf("provider = %q, want backend name", rec.Provider)
	}
	if rec.Model != "mock" {
		t.Errorf("model = %q", rec.Model)
	}
	if rec.Purpose != "notes" {
		t.Errorf("purpose = %q", rec.Purpose)
	}
	if !rec.Success || rec.InputTokens != 12 || rec.OutputTokens != 34 {
		t.Errorf("record = %+v", rec)
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	sink := &captureLog{}
	p := WithLogging(mock, "openai", sink)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error to surface")
	}
	if len(sink.records) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Success || rec.ErrorMessage == "" {
		t.Errorf("failure record = %+v", rec)
	}
}

func TestLogging_NilSinkPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)})
	p := WithLogging(mock, "mock", nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Errorf("content = %s", resp.Content)
	}
}
