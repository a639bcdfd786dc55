package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/shiftlens/schedule-scanner/internal/domain/schedule"
	"github.com/shiftlens/schedule-scanner/internal/pkg/imaging"
	"github.com/shiftlens/schedule-scanner/internal/pkg/validator"
	"github.com/shiftlens/schedule-scanner/internal/pkg/vision"
)

// Inline image payloads for the model are kept under this size.
const maxModelImageBytes = 3 << 20

type scheduleServiceImpl struct {
	archive schedule.ArchiveRepository
	vision  vision.Client
}

func NewScheduleService(archive schedule.ArchiveRepository, visionClient vision.Client) schedule.ScheduleService {
	return &scheduleServiceImpl{
		archive: archive,
		vision:  visionClient,
	}
}

// ProcessSchedule implements schedule.ScheduleService.
//
// The pipeline is strictly linear: validate upload, send image to the
// model, parse, check the employee's history for a duplicate week,
// analyze, persist. A duplicate aborts before anything is written and
// carries the existing record back to the caller. Nothing is retried;
// the user re-initiates by re-uploading.
func (s *scheduleServiceImpl) ProcessSchedule(ctx context.Context, req schedule.ProcessScheduleRequest) (schedule.ProcessScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}

	buffer, err := io.ReadAll(req.File)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, fmt.Errorf("%w: failed to read upload: %v", schedule.ErrImageRequired, err)
	}

	prepared, err := imaging.PrepareJPEG(buffer, maxModelImageBytes)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, fmt.Errorf("%w: %v", schedule.ErrUnsupportedImage, err)
	}

	rawText, err := s.vision.ExtractSchedule(ctx, prepared, "jpeg")
	if err != nil {
		return schedule.ProcessScheduleResponse{}, fmt.Errorf("%w: %v", schedule.ErrExternalService, err)
	}
	if validator.IsEmpty(rawText) {
		return schedule.ProcessScheduleResponse{}, schedule.ErrEmptyModelResponse
	}

	record, err := schedule.Parse(rawText)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}

	history, err := s.archive.LoadHistory(ctx, record.EmployeeName)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}
	for _, existing := range history {
		if schedule.IsDuplicate(record, []schedule.ScheduleRecord{existing}) {
			return schedule.ProcessScheduleResponse{}, &schedule.DuplicateWeekError{Existing: existing}
		}
	}

	analysisText, err := s.analyzeRecord(ctx, record)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}

	modelTotal, summary, err := schedule.ParseAnalysis(analysisText)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}

	record.Analysis = analysisText
	record.Summary = summary
	if modelTotal > 0 && math.Abs(modelTotal-record.TotalHours) > 0.01 {
		record.Anomalies = append(record.Anomalies,
			fmt.Sprintf("model reported %.2f total hours, computed %.2f", modelTotal, record.TotalHours))
	}

	record.ID = uuid.New().String()
	// Archive filenames carry second granularity; keep the stored
	// timestamp at the same resolution so a re-read record compares
	// equal to what was written.
	record.CreatedAt = time.Now().UTC().Truncate(time.Second)

	savedPath, err := s.archive.Append(ctx, record)
	if err != nil {
		return schedule.ProcessScheduleResponse{}, err
	}

	slog.Info("schedule processed",
		"employee", record.EmployeeName,
		"total_hours", record.TotalHours,
		"saved_path", savedPath,
	)

	return schedule.NewProcessScheduleResponse(record, savedPath), nil
}

// GetHistory implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetHistory(ctx context.Context, employeeName string) ([]schedule.RecordResponse, error) {
	if validator.IsEmpty(employeeName) {
		return nil, schedule.ErrEmployeeNameRequired
	}

	history, err := s.archive.LoadHistory(ctx, employeeName)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.RecordResponse, 0, len(history))
	for _, record := range history {
		responses = append(responses, schedule.NewRecordResponse(record))
	}
	return responses, nil
}

// analyzeRecord sends the parsed schedule back to the model for the
// total-hours-and-summary pass.
func (s *scheduleServiceImpl) analyzeRecord(ctx context.Context, record schedule.ScheduleRecord) (string, error) {
	payload := struct {
		EmployeeName string              `json:"employee_name"`
		Schedule     []schedule.ShiftRow `json:"schedule"`
	}{
		EmployeeName: record.EmployeeName,
		Schedule:     schedule.NewRecordResponse(record).Rows,
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule for analysis: %w", err)
	}

	analysisText, err := s.vision.AnalyzeSchedule(ctx, string(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: %v", schedule.ErrExternalService, err)
	}
	if validator.IsEmpty(analysisText) {
		return "", schedule.ErrEmptyModelResponse
	}
	return analysisText, nil
}
