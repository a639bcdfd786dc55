package schedule

import "context"

type ScheduleService interface {
	// ProcessSchedule runs the full pipeline: validate the upload, send
	// the image to the extraction model, parse, reject duplicate weeks,
	// analyze, persist.
	ProcessSchedule(ctx context.Context, req ProcessScheduleRequest) (ProcessScheduleResponse, error)

	// GetHistory lists an employee's archived weeks, oldest first.
	GetHistory(ctx context.Context, employeeName string) ([]RecordResponse, error)
}
