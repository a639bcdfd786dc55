package schedule

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/shiftlens/schedule-scanner/internal/pkg/validator"
)

var allowedImageExts = []string{".jpg", ".jpeg", ".png"}

type ProcessScheduleRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r ProcessScheduleRequest) Validate() error {
	if r.File == nil || r.FileHeader == nil {
		return ErrImageRequired
	}
	ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
	if !validator.IsInSlice(ext, allowedImageExts) {
		return ErrUnsupportedImage
	}
	return nil
}

type ShiftRow struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

type ProcessScheduleResponse struct {
	ID           string     `json:"id"`
	EmployeeName string     `json:"employee_name"`
	Rows         []ShiftRow `json:"schedule"`
	TotalHours   float64    `json:"total_hours"`
	Summary      string     `json:"summary"`
	Anomalies    []string   `json:"anomalies,omitempty"`
	SavedPath    string     `json:"saved_path"`
	ProcessedAt  string     `json:"processed_at"`
}

type RecordResponse struct {
	ID           string     `json:"id"`
	EmployeeName string     `json:"employee_name"`
	Rows         []ShiftRow `json:"schedule"`
	TotalHours   float64    `json:"total_hours"`
	Summary      string     `json:"summary"`
	Anomalies    []string   `json:"anomalies,omitempty"`
	ProcessedAt  string     `json:"processed_at"`
}

func NewProcessScheduleResponse(record ScheduleRecord, savedPath string) ProcessScheduleResponse {
	return ProcessScheduleResponse{
		ID:           record.ID,
		EmployeeName: record.EmployeeName,
		Rows:         rowsFromEntries(record.Entries),
		TotalHours:   record.TotalHours,
		Summary:      record.Summary,
		Anomalies:    record.Anomalies,
		SavedPath:    savedPath,
		ProcessedAt:  record.CreatedAt.Format(time.RFC3339),
	}
}

func NewRecordResponse(record ScheduleRecord) RecordResponse {
	return RecordResponse{
		ID:           record.ID,
		EmployeeName: record.EmployeeName,
		Rows:         rowsFromEntries(record.Entries),
		TotalHours:   record.TotalHours,
		Summary:      record.Summary,
		Anomalies:    record.Anomalies,
		ProcessedAt:  record.CreatedAt.Format(time.RFC3339),
	}
}

func rowsFromEntries(entries []ShiftEntry) []ShiftRow {
	rows := make([]ShiftRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ShiftRow{
			Day:      string(entry.Day),
			Start:    entry.Start,
			End:      entry.End,
			Location: entry.Location,
		})
	}
	return rows
}
