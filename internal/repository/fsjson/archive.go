package fsjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shiftlens/schedule-scanner/internal/domain/schedule"
)

// Archive stores one JSON file per processed week under
// <basePath>/<sanitized employee>/. It implements schedule.ArchiveRepository.
type Archive struct {
	basePath string
}

func NewArchive(basePath string) (*Archive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &Archive{basePath: basePath}, nil
}

// SanitizeName maps an employee display name to a filesystem-safe token:
// lowercase, every non-alphanumeric rune replaced with an underscore.
// The mapping is idempotent.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// LoadHistory reads every record in the employee's directory, ordered by
// filename (the filename carries the processing timestamp). A missing
// directory means no history. Files that no longer parse are skipped
// rather than failing the whole read.
func (a *Archive) LoadHistory(ctx context.Context, employeeName string) ([]schedule.ScheduleRecord, error) {
	dir := filepath.Join(a.basePath, SanitizeName(employeeName))

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read archive directory: %v", schedule.ErrStorage, err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	records := make([]schedule.ScheduleRecord, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read archive file %s: %v", schedule.ErrStorage, name, err)
		}
		var stored storedRecord
		if err := json.Unmarshal(data, &stored); err != nil {
			continue
		}
		records = append(records, stored.toRecord())
	}

	return records, nil
}

// Append writes the record as a new file named
// <sanitized>_schedule_<YYYYMMDD_HHMMSS>.json. When a second write lands
// in the same second the filename gets a numeric suffix; an existing file
// is never overwritten.
func (a *Archive) Append(ctx context.Context, record schedule.ScheduleRecord) (string, error) {
	san := SanitizeName(record.EmployeeName)
	if strings.Trim(san, "_") == "" {
		return "", fmt.Errorf("%w: employee name %q sanitizes to nothing", schedule.ErrStorage, record.EmployeeName)
	}

	dir := filepath.Join(a.basePath, san)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create employee directory: %v", schedule.ErrStorage, err)
	}

	data, err := json.MarshalIndent(fromRecord(record), "", "    ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode record: %v", schedule.ErrStorage, err)
	}

	stamp := record.CreatedAt.Format("20060102_150405")
	base := fmt.Sprintf("%s_schedule_%s", san, stamp)
	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		name := base + ".json"
		if attempt > 1 {
			name = fmt.Sprintf("%s_%d.json", base, attempt)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				continue
			}
			return "", fmt.Errorf("%w: failed to create archive file: %v", schedule.ErrStorage, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("%w: failed to write archive file: %v", schedule.ErrStorage, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("%w: failed to close archive file: %v", schedule.ErrStorage, err)
		}

		return filepath.Join(san, name), nil
	}

	return "", fmt.Errorf("%w: could not find a free filename for %s", schedule.ErrStorage, base)
}

const maxNameAttempts = 1000

// storedRecord is the on-disk shape: the raw parsed schedule, the model's
// analysis text, the processing timestamp, total hours and summary.
type storedRecord struct {
	ID          string      `json:"id"`
	RawSchedule rawSchedule `json:"raw_schedule"`
	Analysis    string      `json:"analysis,omitempty"`
	TotalHours  float64     `json:"total_hours"`
	Summary     string      `json:"summary"`
	Anomalies   []string    `json:"anomalies,omitempty"`
	ProcessedAt time.Time   `json:"processed_at"`
}

type rawSchedule struct {
	EmployeeName string     `json:"employee_name"`
	Schedule     []rawEntry `json:"schedule"`
}

type rawEntry struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

func fromRecord(record schedule.ScheduleRecord) storedRecord {
	entries := make([]rawEntry, 0, len(record.Entries))
	for _, entry := range record.Entries {
		entries = append(entries, rawEntry{
			Day:      string(entry.Day),
			Start:    entry.Start,
			End:      entry.End,
			Location: entry.Location,
		})
	}
	return storedRecord{
		ID: record.ID,
		RawSchedule: rawSchedule{
			EmployeeName: record.EmployeeName,
			Schedule:     entries,
		},
		Analysis:    record.Analysis,
		TotalHours:  record.TotalHours,
		Summary:     record.Summary,
		Anomalies:   record.Anomalies,
		ProcessedAt: record.CreatedAt,
	}
}

func (s storedRecord) toRecord() schedule.ScheduleRecord {
	record := schedule.ScheduleRecord{
		ID:           s.ID,
		EmployeeName: s.RawSchedule.EmployeeName,
		TotalHours:   s.TotalHours,
		Summary:      s.Summary,
		Analysis:     s.Analysis,
		Anomalies:    s.Anomalies,
		CreatedAt:    s.ProcessedAt,
	}
	for _, entry := range s.RawSchedule.Schedule {
		day, ok := schedule.ParseDay(entry.Day)
		if !ok {
			day = schedule.Day(entry.Day)
		}
		record.Entries = append(record.Entries, schedule.ShiftEntry{
			Day:      day,
			Start:    entry.Start,
			End:      entry.End,
			Location: entry.Location,
		})
	}
	return record
}
