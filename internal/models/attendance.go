package models

import (
	"fmt"
	"time"
)

type AttendanceStatus string

const (
	AttendanceGoing     AttendanceStatus = "going"
	AttendanceCancelled AttendanceStatus = "cancelled"
	AttendanceCheckedIn AttendanceStatus = "checked_in"
)

type EventAttendance struct {
	EventID     int64            `bson:"event_id" json:"event_id" validate:"required"`
	UserID      int64            `bson:"user_id" json:"user_id" validate:"required"`
	Status      AttendanceStatus `bson:"status" json:"status" validate:"required,oneof=going cancelled checked_in"`
	CheckedInAt *time.Time       `bson:"checked_in_at" json:"checked_in_at"`
}

// Validate enforces that a check-in timestamp is present exactly when the
// status is checked_in.
func (a *EventAttendance) Validate() error {
	if err := Validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if a.Status == AttendanceCheckedIn && a.CheckedInAt == nil {
		return fmt.Errorf("%w: checked_in_at is required when status is checked_in", ErrValidation)
	}
	if a.Status != AttendanceCheckedIn && a.CheckedInAt != nil {
		return fmt.Errorf("%w: checked_in_at must be unset unless status is checked_in", ErrValidation)
	}
	return nil
}
