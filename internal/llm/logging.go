package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestRecord captures one completion call for the request log.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog is the sink for completion request records. The store package
// provides a SQLite-backed implementation.
type RequestLog interface {
	Record(ctx context.Context, rec RequestRecord) error
}

// LoggingProvider is a decorator that records every completion call.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      RequestLog
}

// WithLogging wraps a Provider with request logging under the given backend
// name ("openai", "anthropic", ...). A nil log disables recording without
// changing behavior.
func WithLogging(p Provider, provider string, log RequestLog) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	if l.log != nil {
		rec := RequestRecord{
			Provider:  l.provider,
			Model:     l.inner.ModelID(),
			Purpose:   PurposeFrom(ctx),
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
		}
		if resp != nil {
			rec.InputTokens = resp.Usage.InputTokens
			rec.OutputTokens = resp.Usage.OutputTokens
			rec.Model = resp.Model
		}
		if err != nil {
			rec.ErrorMessage = err.Error()
		}
		// The log must never fail the request it describes.
		if logErr := l.log.Record(ctx, rec); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record completion request: %v\n", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
