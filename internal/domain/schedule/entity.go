package schedule

import (
	"strings"
	"time"
)

// ScheduleRecord is one processed weekly schedule for one employee.
// Records are immutable after creation; corrections go through an
// administrator removing the file by hand.
type ScheduleRecord struct {
	ID           string
	EmployeeName string
	Entries      []ShiftEntry
	TotalHours   float64
	Summary      string
	Analysis     string
	Anomalies    []string
	CreatedAt    time.Time
}

type ShiftEntry struct {
	Day      Day
	Start    string
	End      string
	Location string
}

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var DayValues = []Day{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ParseDay normalizes a transcribed day label ("mon", "Tues", "MONDAY")
// to its canonical Day value. Any prefix of three or more letters is
// unambiguous across the seven day names.
func ParseDay(s string) (Day, bool) {
	label := strings.ToLower(strings.TrimSpace(s))
	if len(label) < 3 {
		return "", false
	}
	for _, day := range DayValues {
		full := strings.ToLower(string(day))
		if label == full || strings.HasPrefix(full, label) {
			return day, true
		}
	}
	return "", false
}

// WeekDays returns the set of day-of-week labels present in the record.
func (r ScheduleRecord) WeekDays() map[Day]struct{} {
	days := make(map[Day]struct{}, len(r.Entries))
	for _, entry := range r.Entries {
		days[entry.Day] = struct{}{}
	}
	return days
}
