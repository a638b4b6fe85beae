package report

// Merge combines a candidate record produced by the extraction model with
// the previous conversation state. It is right-biased per field: a resolved
// value in the candidate overwrites the old one (corrections always win),
// while an unresolved candidate field preserves the previous value instead
// of regressing it to UNKNOWN.
//
// MissingInfo on the result is recomputed from the merged field state. The
// candidate's own MissingInfo is ignored; an external call must not be able
// to desynchronize reported completeness from actual field state.
func Merge(prev, candidate Record) Record {
	updated := Record{
		EventTitle:       mergeString(prev.EventTitle, candidate.EventTitle),
		Date:             mergeString(prev.Date, candidate.Date),
		SpeakerName:      mergeString(prev.SpeakerName, candidate.SpeakerName),
		AttendanceCount:  mergeNumber(prev.AttendanceCount, candidate.AttendanceCount),
		DurationHours:    mergeNumber(prev.DurationHours, candidate.DurationHours),
		ExecutiveSummary: mergeString(prev.ExecutiveSummary, candidate.ExecutiveSummary),
		KeyTakeaways:     mergeList(prev.KeyTakeaways, candidate.KeyTakeaways),
	}
	updated.MissingInfo = missing(updated)
	return updated
}

func mergeString(old, new string) string {
	if knownString(new) {
		return new
	}
	return old
}

func mergeNumber(old, new Number) Number {
	if new.Known {
		return new
	}
	return old
}

func mergeList(old, new []string) []string {
	if len(new) > 0 {
		return new
	}
	return old
}
