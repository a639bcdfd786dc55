package http

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/shiftlens/schedule-scanner/internal/domain/schedule"
	"github.com/shiftlens/schedule-scanner/internal/handler/http/response"
)

type ScheduleHandler interface {
	ProcessSchedule(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// ProcessSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) ProcessSchedule(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get file from form
	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.HandleError(w, schedule.ErrImageRequired)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	req := schedule.ProcessScheduleRequest{
		File:       file,
		FileHeader: fileHeader,
	}

	result, err := h.scheduleService.ProcessSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule processed successfully", result)
}

// GetHistory implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw path segment, still percent-encoded.
	employee := chi.URLParam(r, "employee")
	if decoded, err := url.PathUnescape(employee); err == nil {
		employee = decoded
	}

	results, err := h.scheduleService.GetHistory(r.Context(), employee)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
