package report

import (
	"reflect"
	"testing"
)

func TestMergeFillsUnresolvedFields(t *testing.T) {
	prev := Initial()
	candidate := Initial()
	candidate.EventTitle = "AI Ethics Symposium"
	candidate.Date = "2024-03-10"
	candidate.AttendanceCount = Number{Val: 120, Known: true}

	got := Merge(prev, candidate)

	if got.EventTitle != "AI Ethics Symposium" {
		t.Errorf("EventTitle = %q", got.EventTitle)
	}
	if got.Date != "2024-03-10" {
		t.Errorf("Date = %q", got.Date)
	}
	if !got.AttendanceCount.Known || got.AttendanceCount.Val != 120 {
		t.Errorf("AttendanceCount = %+v", got.AttendanceCount)
	}

	want := []string{"duration_hours", "executive_summary", "key_takeaways"}
	if !reflect.DeepEqual(got.MissingInfo, want) {
		t.Errorf("MissingInfo = %v, want %v", got.MissingInfo, want)
	}
}

func TestMergeCorrectionOverwrites(t *testing.T) {
	prev := Initial()
	prev.Date = "2024-03-10"

	candidate := Initial()
	candidate.Date = "2024-03-11"

	got := Merge(prev, candidate)
	if got.Date != "2024-03-11" {
		t.Errorf("Date = %q, want the corrected value", got.Date)
	}
}

func TestMergeUnknownCandidatePreservesPrevious(t *testing.T) {
	prev := completeRecord()
	got := Merge(prev, Initial())

	if !reflect.DeepEqual(got, prev) {
		t.Errorf("merge with all-UNKNOWN candidate changed record:\ngot  %+v\nwant %+v", got, prev)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	prev := Initial()
	prev.EventTitle = "Robotics Workshop"
	prev.MissingInfo = missing(prev)

	once := Merge(prev, prev)
	twice := Merge(once, prev)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeated merge diverged:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestMergeIgnoresSuppliedMissingInfo(t *testing.T) {
	prev := completeRecord()

	// A candidate claiming everything is missing must not be believed.
	candidate := Initial()
	candidate.MissingInfo = append([]string{}, RequiredFields...)

	got := Merge(prev, candidate)
	if len(got.MissingInfo) != 0 {
		t.Errorf("MissingInfo = %v, want empty (recomputed from field state)", got.MissingInfo)
	}

	// And the reverse: a candidate claiming completeness while fields are
	// unresolved must not be believed either.
	empty := Merge(Initial(), Record{MissingInfo: []string{}})
	if !reflect.DeepEqual(empty.MissingInfo, RequiredFields) {
		t.Errorf("MissingInfo = %v, want %v", empty.MissingInfo, RequiredFields)
	}
}

func TestMergeEmptyTakeawaysDoesNotErase(t *testing.T) {
	prev := Initial()
	prev.KeyTakeaways = []string{"a", "b"}
	prev.MissingInfo = missing(prev)

	got := Merge(prev, Initial())
	if !reflect.DeepEqual(got.KeyTakeaways, []string{"a", "b"}) {
		t.Errorf("KeyTakeaways = %v, want preserved", got.KeyTakeaways)
	}
}
