package models

import (
	"fmt"
	"time"
)

type EventCategory string

const (
	CategoryMusic      EventCategory = "Music"
	CategorySports     EventCategory = "Sports"
	CategoryTheater    EventCategory = "Theater"
	CategoryComedy     EventCategory = "Comedy"
	CategoryFestival   EventCategory = "Festival"
	CategoryConference EventCategory = "Conference"
	CategoryWorkshop   EventCategory = "Workshop"
	CategoryOther      EventCategory = "Other"
)

type EventScheduleEntry struct {
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	Description string    `bson:"description" json:"description"`
}

type Location struct {
	Longitude float64 `bson:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
	Latitude  float64 `bson:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	VenueName *string `bson:"venue_name" json:"venue_name"`
	Address   string  `bson:"address" json:"address" validate:"required"`
	City      string  `bson:"city" json:"city" validate:"required"`
	State     string  `bson:"state" json:"state" validate:"required"`
	ZipCode   string  `bson:"zip_code" json:"zip_code" validate:"required"`
}

type Event struct {
	ID              int64                `bson:"id" json:"id"`
	Title           string               `bson:"title" json:"title" validate:"required"`
	About           string               `bson:"about" json:"about" validate:"required"`
	OrganizerUserID int64                `bson:"organizer_user_id" json:"organizer_user_id" validate:"required"`
	Price           float64              `bson:"price" json:"price" validate:"gte=0"`
	TotalCapacity   int                  `bson:"total_capacity" json:"total_capacity" validate:"gt=0"`
	StartTime       time.Time            `bson:"start_time" json:"start_time" validate:"required"`
	EndTime         time.Time            `bson:"end_time" json:"end_time" validate:"required"`
	Category        EventCategory        `bson:"category" json:"category" validate:"required,oneof=Music Sports Theater Comedy Festival Conference Workshop Other"`
	IsOnline        bool                 `bson:"is_online" json:"is_online"`
	ImageURL        *string              `bson:"image_url" json:"image_url"`
	Schedule        []EventScheduleEntry `bson:"schedule" json:"schedule" validate:"dive"`
	Location        Location             `bson:"location" json:"location"`
}

// Validate checks the tag constraints plus the cross-field rules the tags
// cannot express. The first violation aborts the operation before any write.
func (e *Event) Validate() error {
	if err := Validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	return nil
}
