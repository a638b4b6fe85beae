package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"bean/internal/report"
)

//go:embed extraction.md
var extractionBase string

//go:embed clarify.md
var Clarify string

// Extraction returns the extraction system prompt with the required-field
// list spliced in, so prompt text and completeness tracking can never drift
// apart.
func Extraction() string {
	base := strings.TrimSpace(extractionBase)
	return fmt.Sprintf("%s\n\nRequired fields: %s", base, strings.Join(report.RequiredFields, ", "))
}

// ExtractionInput formats the per-turn user message: the serialized previous
// state followed by the raw user text.
func ExtractionInput(previousState, rawInput string) string {
	return fmt.Sprintf("Previous State:\n%s\n\nUser Input:\n%q", previousState, rawInput)
}

// ClarifyInput formats the missing-field list for the phrasing prompt.
func ClarifyInput(missing []string) string {
	return fmt.Sprintf("Missing Fields: %s", strings.Join(missing, ", "))
}
