package schedule

import (
	"errors"
	"fmt"
)

var (
	// Upload Errors
	ErrImageRequired    = errors.New("schedule image is required")
	ErrUnsupportedImage = errors.New("unsupported image type: only jpg, jpeg, png allowed")

	// External Service Errors
	ErrExternalService    = errors.New("schedule extraction service failed")
	ErrEmptyModelResponse = errors.New("empty response from extraction service")

	// Parse Errors
	ErrNoJSONInResponse     = errors.New("no JSON object found in model response")
	ErrMissingEmployeeName  = errors.New("employee name not found in schedule")
	ErrNoScheduleEntries    = errors.New("no schedule entries found in model response")
	ErrUnrecognizedAnalysis = errors.New("analysis response could not be mapped")

	// Storage Errors
	ErrStorage = errors.New("schedule archive storage failed")

	// Validation Errors
	ErrEmployeeNameRequired = errors.New("employee name is required")
)

// DuplicateWeekError is a guarded rejection rather than a failure: the
// candidate week already exists in the employee's archive. It carries the
// existing record so the caller can show its summary instead of writing.
type DuplicateWeekError struct {
	Existing ScheduleRecord
}

func (e *DuplicateWeekError) Error() string {
	return fmt.Sprintf("a schedule for this week has already been processed for %s", e.Existing.EmployeeName)
}
