package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the sentinel the extraction model emits for fields it cannot
// support from the text.
const Unknown = "UNKNOWN"

// RequiredFields are the fields that gate report completeness, in the order
// they appear in the rendered document. speaker_name is deliberately absent.
// This is the single definition; prompts, merging, and the UI all reference it.
var RequiredFields = []string{
	"event_title",
	"date",
	"attendance_count",
	"duration_hours",
	"executive_summary",
	"key_takeaways",
}

// Number is a numeric field value that may still be unresolved. The
// extraction model returns either a number, a numeric string, or the
// UNKNOWN sentinel; all three decode cleanly.
type Number struct {
	Val   float64
	Known bool
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Known {
		return json.Marshal(Unknown)
	}
	return json.Marshal(n.Val)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Val = f
		n.Known = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// null or an unexpected shape; treat as unresolved
		n.Val = 0
		n.Known = false
		return nil
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		n.Val = f
		n.Known = true
		return nil
	}

	n.Val = 0
	n.Known = false
	return nil
}

// String formats the value for display, or the sentinel when unresolved.
func (n Number) String() string {
	if !n.Known {
		return Unknown
	}
	if n.Val == float64(int64(n.Val)) {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	return strconv.FormatFloat(n.Val, 'f', -1, 64)
}

// Record is the event report accumulated over a conversation. Fields hold
// the UNKNOWN sentinel (or an empty list for KeyTakeaways) until the
// extraction model supports them from user text.
type Record struct {
	EventTitle       string   `json:"event_title"`
	Date             string   `json:"date"`
	SpeakerName      string   `json:"speaker_name"`
	AttendanceCount  Number   `json:"attendance_count"`
	DurationHours    Number   `json:"duration_hours"`
	ExecutiveSummary string   `json:"executive_summary"`
	KeyTakeaways     []string `json:"key_takeaways"`

	// MissingInfo is derived from the fields above. The extraction model
	// reports its own version as a convenience, but it is recomputed here
	// after every merge and never trusted as supplied.
	MissingInfo []string `json:"missing_info"`
}

// Initial returns the all-UNKNOWN record a conversation starts with.
func Initial() Record {
	r := Record{
		EventTitle:       Unknown,
		Date:             Unknown,
		SpeakerName:      Unknown,
		ExecutiveSummary: Unknown,
		KeyTakeaways:     []string{},
	}
	r.MissingInfo = missing(r)
	return r
}

// IsComplete reports whether every required field is resolved. It recomputes
// from field state rather than reading MissingInfo.
func (r Record) IsComplete() bool {
	return len(missing(r)) == 0
}

// Missing returns the required fields still unresolved, in RequiredFields order.
func (r Record) Missing() []string {
	return missing(r)
}

// FieldKnown reports whether the named field holds a resolved value.
func (r Record) FieldKnown(field string) bool {
	switch field {
	case "event_title":
		return knownString(r.EventTitle)
	case "date":
		return knownString(r.Date)
	case "speaker_name":
		return knownString(r.SpeakerName)
	case "attendance_count":
		return r.AttendanceCount.Known
	case "duration_hours":
		return r.DurationHours.Known
	case "executive_summary":
		return knownString(r.ExecutiveSummary)
	case "key_takeaways":
		return len(r.KeyTakeaways) > 0
	default:
		return false
	}
}

// FieldDisplay returns a display string for the named field.
func (r Record) FieldDisplay(field string) string {
	switch field {
	case "event_title":
		return displayString(r.EventTitle)
	case "date":
		return displayString(r.Date)
	case "speaker_name":
		return displayString(r.SpeakerName)
	case "attendance_count":
		return r.AttendanceCount.String()
	case "duration_hours":
		return r.DurationHours.String()
	case "executive_summary":
		return displayString(r.ExecutiveSummary)
	case "key_takeaways":
		if len(r.KeyTakeaways) == 0 {
			return Unknown
		}
		return fmt.Sprintf("%d points", len(r.KeyTakeaways))
	default:
		return ""
	}
}

func missing(r Record) []string {
	var out []string
	for _, f := range RequiredFields {
		if !r.FieldKnown(f) {
			out = append(out, f)
		}
	}
	return out
}

// knownString treats the sentinel and the empty string as unresolved; models
// occasionally emit "" where they were told to emit the sentinel.
func knownString(s string) bool {
	t := strings.TrimSpace(s)
	return t != "" && !strings.EqualFold(t, Unknown)
}

func displayString(s string) string {
	if !knownString(s) {
		return Unknown
	}
	return strings.TrimSpace(s)
}
