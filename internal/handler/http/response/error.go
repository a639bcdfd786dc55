package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shiftlens/schedule-scanner/internal/domain/schedule"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Duplicate weeks are a guarded rejection: answer with the existing
	// record's summary so the user sees what was already archived.
	var dup *schedule.DuplicateWeekError
	if errors.As(err, &dup) {
		Conflict(w, "A schedule for this week has already been processed. Contact your administrator for corrections.", map[string]string{
			"employee_name": dup.Existing.EmployeeName,
			"summary":       dup.Existing.Summary,
			"total_hours":   fmt.Sprintf("%.2f", dup.Existing.TotalHours),
			"processed_at":  dup.Existing.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
		return
	}

	switch {
	// Upload errors
	case errors.Is(err, schedule.ErrImageRequired):
		BadRequest(w, "Schedule image is required", nil)
	case errors.Is(err, schedule.ErrUnsupportedImage):
		BadRequest(w, "Unsupported image: only jpg, jpeg, png are accepted", nil)
	case errors.Is(err, schedule.ErrEmployeeNameRequired):
		BadRequest(w, "Employee name is required", nil)

	// External service errors
	case errors.Is(err, schedule.ErrExternalService):
		BadGateway(w, "The schedule extraction service is unavailable. Please try again.")
	case errors.Is(err, schedule.ErrEmptyModelResponse):
		BadGateway(w, "The schedule extraction service returned an empty response")

	// Parse errors
	case errors.Is(err, schedule.ErrNoJSONInResponse):
		UnprocessableEntity(w, "Could not read a schedule from the image")
	case errors.Is(err, schedule.ErrMissingEmployeeName):
		UnprocessableEntity(w, "Could not find an employee name in the schedule")
	case errors.Is(err, schedule.ErrNoScheduleEntries):
		UnprocessableEntity(w, "Could not find any schedule entries in the image")
	case errors.Is(err, schedule.ErrUnrecognizedAnalysis):
		UnprocessableEntity(w, "Could not read the schedule analysis")

	// Storage errors
	case errors.Is(err, schedule.ErrStorage):
		InternalServerError(w, "Failed to write to the schedule archive")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
