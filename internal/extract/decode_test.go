package extract

import (
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantErr   bool
	}{
		{
			name:      "plain JSON",
			content:   `{"event_title": "Tech Talk", "key_takeaways": []}`,
			wantTitle: "Tech Talk",
		},
		{
			name:      "fenced with language tag",
			content:   "```json\n{\"event_title\": \"Tech Talk\"}\n```",
			wantTitle: "Tech Talk",
		},
		{
			name:      "fenced without language tag",
			content:   "```\n{\"event_title\": \"Tech Talk\"}\n```",
			wantTitle: "Tech Talk",
		},
		{
			name:      "leading whitespace",
			content:   "\n\n  {\"event_title\": \"Tech Talk\"}  ",
			wantTitle: "Tech Talk",
		},
		{
			name:    "prose instead of JSON",
			content: "I could not find any event details.",
			wantErr: true,
		},
		{
			name:    "empty response",
			content: "",
			wantErr: true,
		},
		{
			name:    "truncated JSON",
			content: `{"event_title": "Tech`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := decodeRecord(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeRecord(%q) expected error, got %+v", tt.content, rec)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRecord(%q) error: %v", tt.content, err)
			}
			if rec.EventTitle != tt.wantTitle {
				t.Errorf("EventTitle = %q, want %q", rec.EventTitle, tt.wantTitle)
			}
		})
	}
}
