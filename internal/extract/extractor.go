package extract

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"bean/internal/llm"
	"bean/internal/prompts"
	"bean/internal/report"
)

// oracleTimeout bounds a single extraction call. Expiry is treated the same
// as any other oracle failure: the previous record is kept.
const oracleTimeout = 30 * time.Second

// Extractor sends user text plus the current record to the model and returns
// a candidate update. It is stateless; every failure mode degrades to
// returning the previous record unchanged, so a broken oracle can never
// corrupt conversation state.
type Extractor struct {
	provider llm.Provider
	model    string
	log      *log.Logger
}

func NewExtractor(provider llm.Provider, model string, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{
		provider: provider,
		model:    model,
		log:      logger,
	}
}

// Extract returns a candidate record for the Merge step. On any failure
// (no provider, call error, timeout, unparseable response) it returns prev
// unchanged; no error escapes.
func (e *Extractor) Extract(ctx context.Context, rawText string, prev report.Record) report.Record {
	if e.provider == nil {
		e.log.Warn("no extraction provider configured, keeping previous record")
		return prev
	}

	prevJSON, err := json.Marshal(prev)
	if err != nil {
		e.log.Error("failed to serialize record", "err", err)
		return prev
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	req := llm.NewRequest(e.model, prompts.Extraction(), prompts.ExtractionInput(string(prevJSON), rawText))
	req.JSONResponse = true
	req.Temperature = 0.2

	resp, err := e.provider.Complete(ctx, req)
	if err != nil {
		e.log.Warn("extraction call failed, keeping previous record", "err", err)
		return prev
	}

	candidate, err := decodeRecord(resp.Content)
	if err != nil {
		e.log.Warn("extraction response unparseable, keeping previous record", "err", err)
		return prev
	}

	return candidate
}
