package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func segment(day int32, start, end string) domain.ShiftTemplateSegment {
	return domain.ShiftTemplateSegment{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestValidateShiftTemplateSegmentsOK(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(1, "08:00:00", "12:00:00"),
		segment(1, "13:00", "17:00"),
		segment(2, "08:00:00", "17:00:00"),
	}}

	require.NoError(t, ValidateShiftTemplateSegments(st))
}

func TestValidateShiftTemplateSegmentsOvernightAllowed(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(5, "22:00:00", "06:00:00"),
	}}

	require.NoError(t, ValidateShiftTemplateSegments(st))
}

func TestValidateShiftTemplateSegmentsRejectsOverlap(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(1, "08:00:00", "12:00:00"),
		segment(1, "11:00:00", "15:00:00"),
	}}

	err := ValidateShiftTemplateSegments(st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "se solapan")
}

func TestValidateShiftTemplateSegmentsRejectsZeroDuration(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(1, "08:00:00", "08:00:00"),
	}}

	require.Error(t, ValidateShiftTemplateSegments(st))
}

func TestValidateShiftTemplateSegmentsRejectsBadTime(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(1, "25:00:00", "08:00:00"),
	}}

	require.Error(t, ValidateShiftTemplateSegments(st))
}

func TestValidateShiftTemplateSegmentsRejectsBadDay(t *testing.T) {
	st := &domain.ShiftTemplate{Segments: []domain.ShiftTemplateSegment{
		segment(8, "08:00:00", "12:00:00"),
	}}

	require.Error(t, ValidateShiftTemplateSegments(st))
}

func TestValidateAssignmentDates(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	assert.NoError(t, ValidateAssignmentDates(start, &end))
	assert.NoError(t, ValidateAssignmentDates(start, &start))
	assert.Error(t, ValidateAssignmentDates(start, nil))
	assert.Error(t, ValidateAssignmentDates(start, &before))
	assert.Error(t, ValidateAssignmentDates(time.Time{}, &end))
}
