package models

import "time"

// LocationSummary is the trimmed location embedded in list items.
type LocationSummary struct {
	VenueName *string `json:"venue_name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

func NewLocationSummary(loc Location) LocationSummary {
	return LocationSummary{
		VenueName: loc.VenueName,
		City:      loc.City,
		State:     loc.State,
	}
}

type EventListItem struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	About           string          `json:"about"`
	OrganizerUserID int64           `json:"organizer_user_id"`
	Price           float64         `json:"price"`
	TotalCapacity   int             `json:"total_capacity"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	Category        EventCategory   `json:"category"`
	IsOnline        bool            `json:"is_online"`
	ImageURL        *string         `json:"image_url"`
	Location        LocationSummary `json:"location"`
	AttendingCount  int64           `json:"attending_count"`
}

func NewEventListItem(e *Event, attendingCount int64) EventListItem {
	return EventListItem{
		ID:              e.ID,
		Title:           e.Title,
		About:           e.About,
		OrganizerUserID: e.OrganizerUserID,
		Price:           e.Price,
		TotalCapacity:   e.TotalCapacity,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Category:        e.Category,
		IsOnline:        e.IsOnline,
		ImageURL:        e.ImageURL,
		Location:        NewLocationSummary(e.Location),
		AttendingCount:  attendingCount,
	}
}

// PaginatedEvents is the page envelope for event listings.
type PaginatedEvents struct {
	Items    []EventListItem `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EventDetail is the full record returned by detail and create, including
// the schedule and complete location the list item omits.
type EventDetail struct {
	ID              int64                `json:"id"`
	Title           string               `json:"title"`
	About           string               `json:"about"`
	OrganizerUserID int64                `json:"organizer_user_id"`
	Price           float64              `json:"price"`
	TotalCapacity   int                  `json:"total_capacity"`
	StartTime       time.Time            `json:"start_time"`
	EndTime         time.Time            `json:"end_time"`
	Category        EventCategory        `json:"category"`
	IsOnline        bool                 `json:"is_online"`
	ImageURL        *string              `json:"image_url"`
	Schedule        []EventScheduleEntry `json:"schedule"`
	Location        Location             `json:"location"`
	AttendingCount  int64                `json:"attending_count"`
	FavoritesCount  int64                `json:"favorites_count"`
}

func NewEventDetail(e *Event, attendingCount, favoritesCount int64) EventDetail {
	schedule := e.Schedule
	if schedule == nil {
		schedule = []EventScheduleEntry{}
	}
	return EventDetail{
		ID:              e.ID,
		Title:           e.Title,
		About:           e.About,
		OrganizerUserID: e.OrganizerUserID,
		Price:           e.Price,
		TotalCapacity:   e.TotalCapacity,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Category:        e.Category,
		IsOnline:        e.IsOnline,
		ImageURL:        e.ImageURL,
		Schedule:        schedule,
		Location:        e.Location,
		AttendingCount:  attendingCount,
		FavoritesCount:  favoritesCount,
	}
}

const (
	FavoriteStatusAdded   = "favorited"
	FavoriteStatusRemoved = "unfavorited"
)

// FavoriteResponse acknowledges a favorite add or remove. The status is
// fixed per operation regardless of whether storage changed.
type FavoriteResponse struct {
	EventID int64  `json:"event_id"`
	UserID  int64  `json:"user_id"`
	Status  string `json:"status"`
}
