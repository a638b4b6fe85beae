package clarify

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"bean/internal/llm"
	"bean/internal/report"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.response}, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestComposeCompleteSkipsOracle(t *testing.T) {
	fake := &fakeProvider{response: "should not be used"}
	c := NewComposer(fake, "test-model", quietLogger())

	got := c.Compose(context.Background(), nil)
	if got != ReadyMessage {
		t.Errorf("Compose(empty) = %q, want ready message", got)
	}
	if fake.calls != 0 {
		t.Errorf("oracle called %d times for an empty missing set, want 0", fake.calls)
	}
}

func TestComposeUsesOracleQuestion(t *testing.T) {
	fake := &fakeProvider{response: "  Could you share the event date and how long it ran?\n"}
	c := NewComposer(fake, "test-model", quietLogger())

	got := c.Compose(context.Background(), []string{"date", "duration_hours"})
	if got != "Could you share the event date and how long it ran?" {
		t.Errorf("Compose = %q", got)
	}
	if fake.calls != 1 {
		t.Errorf("oracle calls = %d, want 1", fake.calls)
	}
}

func TestComposeFallbackOnError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("credential rejected")}
	c := NewComposer(fake, "test-model", quietLogger())

	missing := []string{"event_title", "date", "key_takeaways"}
	got := c.Compose(context.Background(), missing)

	if got == "" {
		t.Fatal("fallback message must be non-empty")
	}
	for _, f := range missing {
		if !strings.Contains(got, f) {
			t.Errorf("fallback %q does not mention %q", got, f)
		}
	}
}

func TestComposeFallbackOnBlankResponse(t *testing.T) {
	fake := &fakeProvider{response: "   \n"}
	c := NewComposer(fake, "test-model", quietLogger())

	got := c.Compose(context.Background(), []string{"executive_summary"})
	if got != Fallback([]string{"executive_summary"}) {
		t.Errorf("Compose = %q, want fallback", got)
	}
}

func TestComposeWithoutProvider(t *testing.T) {
	c := NewComposer(nil, "test-model", quietLogger())

	got := c.Compose(context.Background(), report.RequiredFields)
	for _, f := range report.RequiredFields {
		if !strings.Contains(got, f) {
			t.Errorf("fallback %q does not mention %q", got, f)
		}
	}
}
