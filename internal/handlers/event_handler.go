package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evently-app/server/internal/models"
	"github.com/evently-app/server/internal/services"
)

// listEventsQuery declares the list-request parameters. Enum and range
// violations are rejected here with 422 before the service runs.
type listEventsQuery struct {
	Q          string     `form:"q"`
	Category   string     `form:"category" binding:"omitempty,oneof=Music Sports Theater Comedy Festival Conference Workshop Other"`
	City       string     `form:"city"`
	IsOnline   *bool      `form:"is_online"`
	PriceType  string     `form:"price_type" binding:"omitempty,oneof=free paid"`
	DatePreset string     `form:"date_preset" binding:"omitempty,oneof=today this_week this_month"`
	StartFrom  *time.Time `form:"start_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTo    *time.Time `form:"start_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy     string     `form:"sort_by,default=start_time" binding:"omitempty,oneof=start_time price title"`
	SortOrder  string     `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
	Page       int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size,default=12" binding:"omitempty,min=1,max=100"`
}

type createEventRequest struct {
	Title           string                      `json:"title" binding:"required"`
	About           string                      `json:"about" binding:"required"`
	OrganizerUserID int64                       `json:"organizer_user_id" binding:"required"`
	Price           float64                     `json:"price"`
	TotalCapacity   int                         `json:"total_capacity" binding:"required"`
	StartTime       time.Time                   `json:"start_time" binding:"required"`
	EndTime         time.Time                   `json:"end_time" binding:"required"`
	Category        models.EventCategory        `json:"category" binding:"required"`
	IsOnline        bool                        `json:"is_online"`
	ImageURL        *string                     `json:"image_url"`
	Schedule        []models.EventScheduleEntry `json:"schedule"`
	Location        models.Location             `json:"location" binding:"required"`
}

type favoriteRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query listEventsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid query parameters", "details": err.Error()})
			return
		}

		params := models.ListEventsParams{
			Query:      query.Q,
			Category:   query.Category,
			City:       query.City,
			IsOnline:   query.IsOnline,
			PriceType:  query.PriceType,
			DatePreset: query.DatePreset,
			StartFrom:  query.StartFrom,
			StartTo:    query.StartTo,
			SortBy:     query.SortBy,
			SortOrder:  query.SortOrder,
			Page:       query.Page,
			PageSize:   query.PageSize,
		}

		page, err := e.ListEvents(c.Request.Context(), params)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

func GetEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseEventID(c)
		if !ok {
			return
		}

		detail, err := e.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body createEventRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		event := models.Event{
			Title:           body.Title,
			About:           body.About,
			OrganizerUserID: body.OrganizerUserID,
			Price:           body.Price,
			TotalCapacity:   body.TotalCapacity,
			StartTime:       body.StartTime,
			EndTime:         body.EndTime,
			Category:        body.Category,
			IsOnline:        body.IsOnline,
			ImageURL:        body.ImageURL,
			Schedule:        body.Schedule,
			Location:        body.Location,
		}

		detail, err := e.CreateEvent(c.Request.Context(), &event)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, detail)
	}
}

func AddFavorite(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseEventID(c)
		if !ok {
			return
		}

		var body favoriteRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		res, err := e.AddFavorite(c.Request.Context(), eventID, body.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, res)
	}
}

func RemoveFavorite(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseEventID(c)
		if !ok {
			return
		}

		var body favoriteRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		res, err := e.RemoveFavorite(c.Request.Context(), eventID, body.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// parseEventID normalizes and parses the :id path parameter. Clients
// occasionally pass values wrapped in quotes from JSON templates.
func parseEventID(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	raw = strings.Trim(raw, "\"'")

	eventID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid event ID"})
		return 0, false
	}
	return eventID, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
