package report

import (
	"encoding/json"
	"testing"
)

func TestInitial(t *testing.T) {
	r := Initial()

	if r.IsComplete() {
		t.Error("initial record should not be complete")
	}
	if len(r.MissingInfo) != len(RequiredFields) {
		t.Errorf("initial MissingInfo has %d fields, want %d", len(r.MissingInfo), len(RequiredFields))
	}
	for i, f := range RequiredFields {
		if r.MissingInfo[i] != f {
			t.Errorf("MissingInfo[%d] = %q, want %q", i, r.MissingInfo[i], f)
		}
	}
	if r.FieldKnown("speaker_name") {
		t.Error("speaker_name should start unresolved")
	}
}

func TestSpeakerNameDoesNotGateCompleteness(t *testing.T) {
	r := completeRecord()
	r.SpeakerName = Unknown

	if !r.IsComplete() {
		t.Error("record should be complete without a speaker name")
	}
	if len(r.Missing()) != 0 {
		t.Errorf("Missing() = %v, want empty", r.Missing())
	}
}

func TestMissingTracksFieldState(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Record)
		wantMissing []string
	}{
		{
			name:        "complete",
			mutate:      func(r *Record) {},
			wantMissing: nil,
		},
		{
			name:        "empty takeaways count as missing",
			mutate:      func(r *Record) { r.KeyTakeaways = nil },
			wantMissing: []string{"key_takeaways"},
		},
		{
			name:        "sentinel title",
			mutate:      func(r *Record) { r.EventTitle = Unknown },
			wantMissing: []string{"event_title"},
		},
		{
			name:        "empty string counts as missing",
			mutate:      func(r *Record) { r.ExecutiveSummary = "  " },
			wantMissing: []string{"executive_summary"},
		},
		{
			name:        "unresolved numbers",
			mutate:      func(r *Record) { r.AttendanceCount = Number{}; r.DurationHours = Number{} },
			wantMissing: []string{"attendance_count", "duration_hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := completeRecord()
			tt.mutate(&r)

			got := r.Missing()
			if len(got) != len(tt.wantMissing) {
				t.Fatalf("Missing() = %v, want %v", got, tt.wantMissing)
			}
			for i := range got {
				if got[i] != tt.wantMissing[i] {
					t.Errorf("Missing()[%d] = %q, want %q", i, got[i], tt.wantMissing[i])
				}
			}
		})
	}
}

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKnown bool
		wantVal   float64
	}{
		{name: "integer", input: `120`, wantKnown: true, wantVal: 120},
		{name: "float", input: `2.5`, wantKnown: true, wantVal: 2.5},
		{name: "numeric string", input: `"120"`, wantKnown: true, wantVal: 120},
		{name: "sentinel", input: `"UNKNOWN"`, wantKnown: false},
		{name: "null", input: `null`, wantKnown: false},
		{name: "garbage string", input: `"about a hundred"`, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if n.Known != tt.wantKnown {
				t.Errorf("Known = %v, want %v", n.Known, tt.wantKnown)
			}
			if tt.wantKnown && n.Val != tt.wantVal {
				t.Errorf("Val = %v, want %v", n.Val, tt.wantVal)
			}
		})
	}
}

func TestNumberMarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(Number{Val: 120, Known: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "120" {
		t.Errorf("marshal known = %s, want 120", b)
	}

	b, err = json.Marshal(Number{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"UNKNOWN"` {
		t.Errorf("marshal unresolved = %s, want %q", b, Unknown)
	}
}

func TestNumberString(t *testing.T) {
	if got := (Number{Val: 120, Known: true}).String(); got != "120" {
		t.Errorf("String() = %q, want 120", got)
	}
	if got := (Number{Val: 2.5, Known: true}).String(); got != "2.5" {
		t.Errorf("String() = %q, want 2.5", got)
	}
	if got := (Number{}).String(); got != Unknown {
		t.Errorf("String() = %q, want %q", got, Unknown)
	}
}

// completeRecord returns a record with every required field resolved.
func completeRecord() Record {
	r := Record{
		EventTitle:       "AI Ethics Symposium",
		Date:             "2024-03-10",
		SpeakerName:      "Dr. Rivera",
		AttendanceCount:  Number{Val: 120, Known: true},
		DurationHours:    Number{Val: 2.5, Known: true},
		ExecutiveSummary: "The symposium covered fairness, accountability, and transparency.",
		KeyTakeaways:     []string{"Bias audits matter", "Regulation is coming", "Transparency builds trust"},
	}
	r.MissingInfo = missing(r)
	return r
}
