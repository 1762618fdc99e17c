package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		ID:              1,
		Title:           "Test Event",
		About:           "Description",
		OrganizerUserID: 1,
		Price:           10.0,
		TotalCapacity:   100,
		StartTime:       time.Date(2026, 6, 15, 19, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		Category:        CategoryMusic,
		Schedule:        []EventScheduleEntry{},
		Location: Location{
			Longitude: -122.4194,
			Latitude:  37.7749,
			Address:   "123 Main St",
			City:      "San Francisco",
			State:     "CA",
			ZipCode:   "94102",
		},
	}
}

func TestValidEventPasses(t *testing.T) {
	require.NoError(t, validEvent().Validate())
}

func TestEndTimeMustBeAfterStartTime(t *testing.T) {
	event := validEvent()
	event.EndTime = event.StartTime.Add(-time.Hour)

	err := event.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "end time must be after start time")
}

func TestEndTimeEqualToStartTimeFails(t *testing.T) {
	event := validEvent()
	event.EndTime = event.StartTime

	err := event.Validate()
	require.ErrorIs(t, err, ErrValidation)
}

func TestPriceCannotBeNegative(t *testing.T) {
	event := validEvent()
	event.Price = -10.0

	require.ErrorIs(t, event.Validate(), ErrValidation)
}

func TestZeroPriceIsValid(t *testing.T) {
	event := validEvent()
	event.Price = 0.0

	require.NoError(t, event.Validate())
}

func TestCapacityMustBePositive(t *testing.T) {
	event := validEvent()
	event.TotalCapacity = 0
	require.ErrorIs(t, event.Validate(), ErrValidation)

	event.TotalCapacity = -5
	require.ErrorIs(t, event.Validate(), ErrValidation)
}

func TestCategoryMustBeKnown(t *testing.T) {
	event := validEvent()
	event.Category = EventCategory("Karaoke")

	require.ErrorIs(t, event.Validate(), ErrValidation)
}

func TestLocationCoordinateBounds(t *testing.T) {
	event := validEvent()
	event.Location.Longitude = -180.5
	require.ErrorIs(t, event.Validate(), ErrValidation)

	event = validEvent()
	event.Location.Latitude = 90.5
	require.ErrorIs(t, event.Validate(), ErrValidation)

	event = validEvent()
	event.Location.Longitude = 180
	event.Location.Latitude = -90
	require.NoError(t, event.Validate())
}

func TestAttendanceCheckInRequiresTimestamp(t *testing.T) {
	attendance := &EventAttendance{
		EventID: 1,
		UserID:  2,
		Status:  AttendanceCheckedIn,
	}

	err := attendance.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "checked_in_at is required")
}

func TestAttendanceTimestampOnlyWhenCheckedIn(t *testing.T) {
	checkedInAt := time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)
	attendance := &EventAttendance{
		EventID:     1,
		UserID:      2,
		Status:      AttendanceGoing,
		CheckedInAt: &checkedInAt,
	}

	require.ErrorIs(t, attendance.Validate(), ErrValidation)
}

func TestAttendanceCheckInWithTimestampIsValid(t *testing.T) {
	checkedInAt := time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)
	attendance := &EventAttendance{
		EventID:     1,
		UserID:      2,
		Status:      AttendanceCheckedIn,
		CheckedInAt: &checkedInAt,
	}

	require.NoError(t, attendance.Validate())
}

func TestAttendanceStatusMustBeKnown(t *testing.T) {
	attendance := &EventAttendance{
		EventID: 1,
		UserID:  2,
		Status:  AttendanceStatus("maybe"),
	}

	require.ErrorIs(t, attendance.Validate(), ErrValidation)
}
