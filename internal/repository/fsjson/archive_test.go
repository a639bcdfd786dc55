package fsjson

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftlens/schedule-scanner/internal/domain/schedule"
)

func testRecord(createdAt time.Time) schedule.ScheduleRecord {
	return schedule.ScheduleRecord{
		ID:           "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		EmployeeName: "Jane Doe",
		Entries: []schedule.ShiftEntry{
			{Day: schedule.Monday, Start: "9:00 AM", End: "5:00 PM", Location: "Main St"},
			{Day: schedule.Tuesday, Start: "9:00 AM", End: "5:00 PM"},
		},
		TotalHours: 16,
		Summary:    "Two steady shifts.",
		Analysis:   `{"total_hours": 16, "summary": "Two steady shifts."}`,
		CreatedAt:  createdAt,
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "jane_doe"},
		{"O'Brien", "o_brien"},
		{"  Ann-Marie  Smith ", "__ann_marie__smith_"},
		{"jane_doe", "jane_doe"},
		{"Ægir Þór", "ægir_þór"},
	}
	for _, c := range cases {
		got := SanitizeName(c.input)
		if got != c.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	for _, name := range []string{"Jane Doe", "O'Brien", "x", "a b c!", "___"} {
		once := SanitizeName(name)
		twice := SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestLoadHistoryMissingDirectory(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	history, err := archive.LoadHistory(context.Background(), "Nobody Here")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendLoadRoundTrip(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	record := testRecord(time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC))
	savedPath, err := archive.Append(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("jane_doe", "jane_doe_schedule_20260302_103000.json"), savedPath)

	history, err := archive.LoadHistory(ctx, "Jane Doe")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record, history[0])
}

func TestAppendSameSecondGetsSuffix(t *testing.T) {
	base := t.TempDir()
	archive, err := NewArchive(base)
	require.NoError(t, err)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	first, err := archive.Append(ctx, testRecord(createdAt))
	require.NoError(t, err)
	second, err := archive.Append(ctx, testRecord(createdAt))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Contains(t, second, "_2.json")

	// Both files persist, neither overwrote the other.
	for _, rel := range []string{first, second} {
		_, err := os.Stat(filepath.Join(base, rel))
		assert.NoError(t, err)
	}

	history, err := archive.LoadHistory(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestLoadHistoryOrderedByFilename(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	later := testRecord(time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC))
	later.Summary = "second week"
	later.Entries = []schedule.ShiftEntry{{Day: schedule.Saturday, Start: "8:00", End: "12:00"}}
	earlier := testRecord(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	earlier.Summary = "first week"

	_, err = archive.Append(ctx, later)
	require.NoError(t, err)
	_, err = archive.Append(ctx, earlier)
	require.NoError(t, err)

	history, err := archive.LoadHistory(ctx, "Jane Doe")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first week", history[0].Summary)
	assert.Equal(t, "second week", history[1].Summary)
}

func TestLoadHistorySkipsCorruptFiles(t *testing.T) {
	base := t.TempDir()
	archive, err := NewArchive(base)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = archive.Append(ctx, testRecord(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	corrupt := filepath.Join(base, "jane_doe", "jane_doe_schedule_20260301_000000.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("not json"), 0644))

	history, err := archive.LoadHistory(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAppendRejectsUnusableName(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	require.NoError(t, err)

	record := testRecord(time.Now())
	record.EmployeeName = "!!!"
	_, err = archive.Append(context.Background(), record)
	assert.ErrorIs(t, err, schedule.ErrStorage)
}
