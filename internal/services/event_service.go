package services

import (
	"context"
	"fmt"

	"github.com/evently-app/server/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

// ListEvents fetches one page of events matching the filters and zips each
// event with its attending count, defaulting absent counts to 0.
func (es *EventService) ListEvents(ctx context.Context, params models.ListEventsParams) (*models.PaginatedEvents, error) {
	if params.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", models.ErrValidation)
	}
	if params.PageSize < 1 || params.PageSize > models.MaxPageSize {
		return nil, fmt.Errorf("%w: page_size must be between 1 and %d", models.ErrValidation, models.MaxPageSize)
	}

	events, total, err := es.eventsRepo.ListEvents(ctx, params)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]int64, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}

	counts, err := es.eventsRepo.AttendingCounts(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.EventListItem, 0, len(events))
	for _, event := range events {
		items = append(items, models.NewEventListItem(event, counts[event.ID]))
	}

	return &models.PaginatedEvents{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

func (es *EventService) GetEvent(ctx context.Context, id int64) (*models.EventDetail, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attending, err := es.eventsRepo.AttendingCount(ctx, id)
	if err != nil {
		return nil, err
	}

	favorites, err := es.eventsRepo.FavoritesCount(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := models.NewEventDetail(event, attending, favorites)
	return &detail, nil
}

// CreateEvent validates the full event invariants before any write. A brand
// new event has no attendance or favorites, so the counts are zero by
// construction.
func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.EventDetail, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := es.eventsRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	detail := models.NewEventDetail(event, 0, 0)
	return &detail, nil
}

// AddFavorite verifies the event exists, then adds the pair idempotently.
func (es *EventService) AddFavorite(ctx context.Context, eventID, userID int64) (*models.FavoriteResponse, error) {
	if _, err := es.eventsRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	favorite := models.EventFavorite{EventID: eventID, UserID: userID}
	if err := es.eventsRepo.AddFavorite(ctx, favorite); err != nil {
		return nil, err
	}

	return &models.FavoriteResponse{
		EventID: eventID,
		UserID:  userID,
		Status:  models.FavoriteStatusAdded,
	}, nil
}

// RemoveFavorite verifies the event exists, then deletes the pair if
// present.
func (es *EventService) RemoveFavorite(ctx context.Context, eventID, userID int64) (*models.FavoriteResponse, error) {
	if _, err := es.eventsRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	favorite := models.EventFavorite{EventID: eventID, UserID: userID}
	if err := es.eventsRepo.RemoveFavorite(ctx, favorite); err != nil {
		return nil, err
	}

	return &models.FavoriteResponse{
		EventID: eventID,
		UserID:  userID,
		Status:  models.FavoriteStatusRemoved,
	}, nil
}
