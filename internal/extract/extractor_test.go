package extract

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bean/internal/llm"
	"bean/internal/report"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
	lastReq  *llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.response}, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

const symposiumJSON = `{
	"event_title": "AI Ethics Symposium",
	"date": "2024-03-10",
	"speaker_name": "UNKNOWN",
	"attendance_count": 120,
	"duration_hours": "UNKNOWN",
	"executive_summary": "UNKNOWN",
	"key_takeaways": [],
	"missing_info": ["duration_hours", "executive_summary", "key_takeaways"]
}`

func TestExtractParsesCandidate(t *testing.T) {
	fake := &fakeProvider{response: symposiumJSON}
	e := NewExtractor(fake, "test-model", quietLogger())

	prev := report.Initial()
	candidate := e.Extract(context.Background(), "We hosted the AI Ethics Symposium on 2024-03-10 with 120 attendees", prev)

	assert.Equal(t, "AI Ethics Symposium", candidate.EventTitle)
	assert.Equal(t, "2024-03-10", candidate.Date)
	require.True(t, candidate.AttendanceCount.Known)
	assert.Equal(t, float64(120), candidate.AttendanceCount.Val)

	merged := report.Merge(prev, candidate)
	assert.Equal(t, []string{"duration_hours", "executive_summary", "key_takeaways"}, merged.MissingInfo)
	assert.False(t, merged.IsComplete())
}

func TestExtractHandlesFencedJSON(t *testing.T) {
	fake := &fakeProvider{response: "```json\n" + symposiumJSON + "\n```"}
	e := NewExtractor(fake, "test-model", quietLogger())

	candidate := e.Extract(context.Background(), "notes", report.Initial())
	assert.Equal(t, "AI Ethics Symposium", candidate.EventTitle)
}

func TestExtractFailsSoftOnProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	e := NewExtractor(fake, "test-model", quietLogger())

	prev := report.Initial()
	prev.EventTitle = "Robotics Workshop"

	got := e.Extract(context.Background(), "some text", prev)
	assert.Equal(t, prev, got, "provider failure must return previous record unchanged")
}

func TestExtractFailsSoftOnMalformedResponse(t *testing.T) {
	fake := &fakeProvider{response: "Sorry, I can't produce JSON for that."}
	e := NewExtractor(fake, "test-model", quietLogger())

	prev := report.Initial()
	prev.Date = "2024-03-10"

	got := e.Extract(context.Background(), "some text", prev)
	assert.Equal(t, prev, got)
}

func TestExtractWithoutProvider(t *testing.T) {
	e := NewExtractor(nil, "test-model", quietLogger())

	prev := report.Initial()
	got := e.Extract(context.Background(), "some text", prev)
	assert.Equal(t, prev, got)
}

func TestExtractEmptyInputIsNoOp(t *testing.T) {
	// An empty input should yield an all-UNKNOWN candidate from the model;
	// merging it changes nothing.
	allUnknown := report.Initial()
	b, err := json.Marshal(allUnknown)
	require.NoError(t, err)

	fake := &fakeProvider{response: string(b)}
	e := NewExtractor(fake, "test-model", quietLogger())

	prev := report.Initial()
	prev.EventTitle = "Robotics Workshop"
	prev.MissingInfo = report.Merge(prev, prev).MissingInfo

	candidate := e.Extract(context.Background(), "", prev)
	merged := report.Merge(prev, candidate)
	assert.Equal(t, prev.EventTitle, merged.EventTitle)
	assert.Equal(t, prev.MissingInfo, merged.MissingInfo)
}

func TestExtractRequestsJSONResponse(t *testing.T) {
	fake := &fakeProvider{response: symposiumJSON}
	e := NewExtractor(fake, "test-model", quietLogger())

	e.Extract(context.Background(), "notes", report.Initial())
	require.NotNil(t, fake.lastReq)
	assert.True(t, fake.lastReq.JSONResponse)
	assert.Equal(t, 1, fake.calls)
}
