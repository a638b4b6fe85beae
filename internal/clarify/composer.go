package clarify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"bean/internal/llm"
	"bean/internal/prompts"
)

// ReadyMessage is returned when nothing is missing. No oracle call is made
// for it.
const ReadyMessage = "All information looks complete! You can now download the report."

const oracleTimeout = 30 * time.Second

// Composer turns the missing-field set into a follow-up question for the
// user. Phrasing is delegated to the model; if that fails for any reason the
// deterministic fallback keeps the conversation moving.
type Composer struct {
	provider llm.Provider
	model    string
	log      *log.Logger
}

func NewComposer(provider llm.Provider, model string, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.Default()
	}
	return &Composer{
		provider: provider,
		model:    model,
		log:      logger,
	}
}

// Compose returns a non-empty message for the given missing-field set.
func (c *Composer) Compose(ctx context.Context, missing []string) string {
	if len(missing) == 0 {
		return ReadyMessage
	}

	if c.provider == nil {
		return Fallback(missing)
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	req := llm.NewRequest(c.model, strings.TrimSpace(prompts.Clarify), prompts.ClarifyInput(missing))
	req.Temperature = 0.7

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		c.log.Warn("clarification call failed, using fallback", "err", err)
		return Fallback(missing)
	}

	question := strings.TrimSpace(resp.Content)
	if question == "" {
		return Fallback(missing)
	}
	return question
}

// Fallback is the deterministic question used when the model is unavailable.
// It always contains every missing field name.
func Fallback(missing []string) string {
	return fmt.Sprintf("Could you please provide details for: %s?", strings.Join(missing, ", "))
}
