package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"bean/internal/clarify"
	"bean/internal/extract"
	"bean/internal/llm"
	"bean/internal/report"
)

// Greeting opens every conversation.
const Greeting = "Hello! I'm Bean. Paste your event notes or chat logs, and I'll help you create an IEEE report."

// Message is one entry in the conversation transcript.
type Message struct {
	Role    string
	Content string
}

// Session owns one conversation: the accumulated record and the transcript.
// The conversation surface creates it at session start and discards it at
// session end. Turns are processed one at a time, but a surface may read
// state while a turn is in flight (a spinner re-render, a save), so access
// is guarded by a mutex.
type Session struct {
	mu         sync.Mutex
	rec        report.Record
	transcript []Message

	extractor *extract.Extractor
	composer  *clarify.Composer
}

func New(provider llm.Provider, model string, logger *log.Logger) *Session {
	return &Session{
		rec: report.Initial(),
		transcript: []Message{
			{Role: "assistant", Content: Greeting},
		},
		extractor: extract.NewExtractor(provider, model, logger),
		composer:  clarify.NewComposer(provider, model, logger),
	}
}

// Turn processes one user submission: extract a candidate from the text,
// merge it into the record, then compose the assistant reply from whatever
// is still missing. The two oracle calls are sequential; the reply depends
// on this turn's merge result.
func (s *Session) Turn(ctx context.Context, text string) string {
	s.mu.Lock()
	s.transcript = append(s.transcript, Message{Role: "user", Content: text})
	prev := s.rec
	s.mu.Unlock()

	// The oracle calls block; the lock is not held across them so the
	// surface can keep reading state mid-turn.
	candidate := s.extractor.Extract(ctx, text, prev)
	merged := report.Merge(prev, candidate)

	s.mu.Lock()
	s.rec = merged
	s.mu.Unlock()

	reply := s.composer.Compose(ctx, merged.Missing())

	s.mu.Lock()
	s.transcript = append(s.transcript, Message{Role: "assistant", Content: reply})
	s.mu.Unlock()
	return reply
}

// Record returns the current accumulated record.
func (s *Session) Record() report.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Complete reports whether every required field is resolved.
func (s *Session) Complete() bool {
	return s.Record().IsComplete()
}

// Reset discards the accumulated record and transcript, starting the
// conversation over.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = report.Initial()
	s.transcript = []Message{
		{Role: "assistant", Content: Greeting},
	}
}
