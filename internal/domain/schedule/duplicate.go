package schedule

// Two schedules count as the same week when they share at least this many
// day-of-week labels. Calendar dates are not compared.
const minSharedDays = 5

// IsDuplicate reports whether the candidate week already appears in the
// employee's history. First match wins; an empty history or a candidate
// with no parseable days is never a duplicate.
func IsDuplicate(candidate ScheduleRecord, history []ScheduleRecord) bool {
	candidateDays := candidate.WeekDays()
	if len(candidateDays) == 0 {
		return false
	}

	for _, record := range history {
		shared := 0
		for day := range record.WeekDays() {
			if _, ok := candidateDays[day]; ok {
				shared++
			}
		}
		if shared >= minSharedDays {
			return true
		}
	}

	return false
}
