package render

import (
	"fmt"
	"os"
	"path/filepath"

	docxgen "github.com/fumiama/go-docx"
)

// WriteTemplate creates the report template document at path. Placeholder
// names match the record field names exactly; key_takeaways is a single
// block placeholder the renderer fills with bullet lines.
func WriteTemplate(path string) error {
	if path == "" {
		path = DefaultTemplatePath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create template directory: %w", err)
		}
	}

	doc := docxgen.New().WithDefaultTheme()

	doc.AddParagraph().AddText("IEEE Event Report").Size("40")

	sections := []struct {
		heading     string
		placeholder string
	}{
		{"Event Title", "event_title"},
		{"Date", "date"},
		{"Speaker", "speaker_name"},
		{"Attendance", "attendance_count"},
		{"Duration (hours)", "duration_hours"},
		{"Executive Summary", "executive_summary"},
		{"Key Takeaways", "key_takeaways"},
	}
	for _, s := range sections {
		doc.AddParagraph().AddText(s.heading + ":").Size("28")
		doc.AddParagraph().AddText("{" + s.placeholder + "}")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create template file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
