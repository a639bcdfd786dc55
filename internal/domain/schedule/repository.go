package schedule

import "context"

// ArchiveRepository abstracts the per-employee archive so the rest of the
// system never touches raw paths. The filesystem implementation lives in
// internal/repository/fsjson.
type ArchiveRepository interface {
	// LoadHistory returns every archived record for the employee in
	// filename-ascending order. A missing archive is an empty history,
	// not an error.
	LoadHistory(ctx context.Context, employeeName string) ([]ScheduleRecord, error)

	// Append writes the record as a new file and returns its path
	// relative to the archive root. Existing files are never overwritten.
	Append(ctx context.Context, record ScheduleRecord) (string, error)
}
