package schedule

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shiftlens/schedule-scanner/internal/pkg/validator"
)

// modelSchedule mirrors the JSON object the extraction prompt asks the
// model to produce. Both the combined "hours" form ("9:00 AM - 5:00 PM")
// and split start/end fields are accepted.
type modelSchedule struct {
	EmployeeName string       `json:"employee_name"`
	Schedule     []modelEntry `json:"schedule"`
}

type modelEntry struct {
	Day      string `json:"day"`
	Location string `json:"location"`
	Hours    string `json:"hours"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type modelAnalysis struct {
	TotalHours float64 `json:"total_hours"`
	Summary    string  `json:"summary"`
}

// Parse maps the extraction model's free-text response onto a
// ScheduleRecord. Total hours are computed locally as the sum of
// per-entry durations; negative durations are clipped to zero and
// recorded as anomalies instead of failing the whole parse.
func Parse(rawModelText string) (ScheduleRecord, error) {
	blob, ok := extractJSON(rawModelText)
	if !ok {
		return ScheduleRecord{}, ErrNoJSONInResponse
	}

	var payload modelSchedule
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return ScheduleRecord{}, fmt.Errorf("%w: %v", ErrNoJSONInResponse, err)
	}

	if validator.IsEmpty(payload.EmployeeName) {
		return ScheduleRecord{}, ErrMissingEmployeeName
	}

	record := ScheduleRecord{
		EmployeeName: strings.TrimSpace(payload.EmployeeName),
	}

	for _, raw := range payload.Schedule {
		day, ok := ParseDay(raw.Day)
		if !ok {
			record.Anomalies = append(record.Anomalies, fmt.Sprintf("unrecognized day label %q", raw.Day))
			continue
		}

		start, end := raw.Start, raw.End
		if validator.IsEmpty(start) && validator.IsEmpty(end) {
			start, end = splitHours(raw.Hours)
		}

		entry := ShiftEntry{
			Day:      day,
			Start:    strings.TrimSpace(start),
			End:      strings.TrimSpace(end),
			Location: strings.TrimSpace(raw.Location),
		}
		record.Entries = append(record.Entries, entry)

		hours, anomaly := entryHours(entry)
		if anomaly != "" {
			record.Anomalies = append(record.Anomalies, anomaly)
		}
		record.TotalHours += hours
	}

	if len(record.Entries) == 0 {
		return ScheduleRecord{}, ErrNoScheduleEntries
	}

	return record, nil
}

// ParseAnalysis maps the second model call's response, a JSON object with
// total_hours and summary, onto local values.
func ParseAnalysis(rawModelText string) (float64, string, error) {
	blob, ok := extractJSON(rawModelText)
	if !ok {
		return 0, "", ErrUnrecognizedAnalysis
	}

	var payload modelAnalysis
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrUnrecognizedAnalysis, err)
	}
	if validator.IsEmpty(payload.Summary) {
		return 0, "", ErrUnrecognizedAnalysis
	}

	return payload.TotalHours, strings.TrimSpace(payload.Summary), nil
}

// extractJSON returns the first top-level JSON object embedded in the
// model text. Models tend to wrap the object in prose or code fences.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// splitHours splits a combined range like "9-5", "9:00 AM - 5:00 PM" or
// "9am to 5pm" into its start and end halves.
func splitHours(hours string) (string, string) {
	for _, sep := range []string{" to ", " - ", "-", "–"} {
		if idx := strings.Index(strings.ToLower(hours), sep); idx >= 0 {
			return hours[:idx], hours[idx+len(sep):]
		}
	}
	return hours, ""
}

// entryHours computes the worked hours for one entry. An end before the
// start without a meridiem marker is assumed to roll into the afternoon
// ("9-5" means 09:00-17:00); anything still negative after that is
// clipped to zero and reported.
func entryHours(entry ShiftEntry) (float64, string) {
	start, okStart := validator.ParseClock(entry.Start)
	end, okEnd := validator.ParseClock(entry.End)
	if !okStart || !okEnd {
		return 0, fmt.Sprintf("%s: could not read shift times %q-%q", entry.Day, entry.Start, entry.End)
	}

	if end < start && !hasMeridiem(entry.End) {
		end += 12 * 60
	}
	if end <= start {
		return 0, fmt.Sprintf("%s: negative shift duration %q-%q clipped to zero", entry.Day, entry.Start, entry.End)
	}

	return float64(end-start) / 60, ""
}

func hasMeridiem(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") ||
		strings.HasSuffix(s, "a.m.") || strings.HasSuffix(s, "p.m.")
}
