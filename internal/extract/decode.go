package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"bean/internal/report"
)

// decodeRecord parses a model response into a candidate record. Models
// sometimes wrap JSON in markdown code fences despite being told not to, so
// the fallback chain is: strict parse, strip fences, parse again, give up.
func decodeRecord(content string) (report.Record, error) {
	content = strings.TrimSpace(content)

	var rec report.Record
	if err := json.Unmarshal([]byte(content), &rec); err == nil {
		return rec, nil
	}

	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return report.Record{}, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return rec, nil
}

// stripFences removes markdown code-fence wrapping. If fence markers are
// present, only the fenced lines are kept; otherwise known markers are
// trimmed in place.
func stripFences(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}

	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		var kept []string
		in := false
		for _, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				in = !in
				continue
			}
			if in {
				kept = append(kept, line)
			}
		}
		if len(kept) > 0 {
			return strings.Join(kept, "\n")
		}
	}

	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
