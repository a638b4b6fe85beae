package render

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/lukasjarosch/go-docx"

	"bean/internal/report"
)

// DefaultTemplatePath is where the setup utility writes the report template
// and where rendering looks for it, relative to the working directory.
const DefaultTemplatePath = "templates/ieee_report_template.docx"

// Renderer fills the report template with a completed record.
type Renderer struct {
	templatePath string
}

func NewRenderer(templatePath string) *Renderer {
	if templatePath == "" {
		templatePath = DefaultTemplatePath
	}
	return &Renderer{templatePath: templatePath}
}

func (r *Renderer) TemplatePath() string {
	return r.templatePath
}

// Render produces the report document bytes. It refuses outright while
// required fields are unresolved; the template is only opened for a complete
// record.
func (r *Renderer) Render(rec report.Record) ([]byte, error) {
	if missing := rec.Missing(); len(missing) > 0 {
		return nil, &RenderError{
			Reason:  "report is missing required fields",
			Hint:    "answer the assistant's follow-up questions first",
			Missing: missing,
		}
	}

	doc, err := docx.Open(r.templatePath)
	if err != nil {
		return nil, &RenderError{
			Reason: "cannot open report template",
			Hint:   fmt.Sprintf("confirm the template exists at %s (run beantemplate to create it)", r.templatePath),
			Err:    err,
		}
	}

	if err := doc.ReplaceAll(placeholders(rec)); err != nil {
		return nil, &RenderError{
			Reason: "template substitution failed",
			Hint:   fmt.Sprintf("the template at %s may be out of date; recreate it with beantemplate", r.templatePath),
			Err:    err,
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, &RenderError{
			Reason: "failed to write report document",
			Err:    err,
		}
	}
	return buf.Bytes(), nil
}

func placeholders(rec report.Record) docx.PlaceholderMap {
	return docx.PlaceholderMap{
		"event_title":       rec.EventTitle,
		"date":              rec.Date,
		"speaker_name":      rec.FieldDisplay("speaker_name"),
		"attendance_count":  rec.AttendanceCount.String(),
		"duration_hours":    rec.DurationHours.String(),
		"executive_summary": rec.ExecutiveSummary,
		"key_takeaways":     formatTakeaways(rec.KeyTakeaways),
	}
}

// formatTakeaways joins the list into bullet lines for the single repeated
// block placeholder in the template.
func formatTakeaways(takeaways []string) string {
	var b strings.Builder
	for i, t := range takeaways {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(strings.TrimSpace(t))
	}
	return b.String()
}
