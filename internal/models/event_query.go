package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

const (
	SortByStartTime = "start_time"
	SortByPrice     = "price"
	SortByTitle     = "title"

	SortAsc  = "asc"
	SortDesc = "desc"

	PriceTypeFree = "free"
	PriceTypePaid = "paid"

	DatePresetToday     = "today"
	DatePresetThisWeek  = "this_week"
	DatePresetThisMonth = "this_month"
)

// ListEventsParams carries the pre-validated list-request parameters.
// Enum and range checks happen at the handler boundary; this type only
// branches on presence or absence of the optional filters.
type ListEventsParams struct {
	Query      string
	Category   string
	City       string
	IsOnline   *bool
	PriceType  string
	DatePreset string
	StartFrom  *time.Time
	StartTo    *time.Time
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// Filter translates the parameters into a single Mongo filter document.
// Preset windows are resolved against now so tests can pin the clock.
func (p ListEventsParams) Filter(now time.Time) bson.M {
	filter := bson.M{}

	if p.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(p.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"about": pattern},
		}
	}

	if p.Category != "" {
		filter["category"] = p.Category
	}

	if p.City != "" {
		// Anchored full-string match, not a substring search.
		filter["location.city"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(p.City) + "$",
			Options: "i",
		}
	}

	if p.IsOnline != nil {
		filter["is_online"] = *p.IsOnline
	}

	switch p.PriceType {
	case PriceTypeFree:
		filter["price"] = 0.0
	case PriceTypePaid:
		filter["price"] = bson.M{"$gt": 0}
	}

	if p.DatePreset != "" {
		from, to := resolveDatePreset(p.DatePreset, now)
		filter["start_time"] = bson.M{"$gte": from, "$lte": to}
	} else if p.StartFrom != nil || p.StartTo != nil {
		timeFilter := bson.M{}
		if p.StartFrom != nil {
			timeFilter["$gte"] = *p.StartFrom
		}
		if p.StartTo != nil {
			timeFilter["$lte"] = *p.StartTo
		}
		filter["start_time"] = timeFilter
	}

	return filter
}

// Skip returns the offset for the requested page.
func (p ListEventsParams) Skip() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.limit()
}

func (p ListEventsParams) limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	return p.PageSize
}

// FindOptions returns the sort/skip/limit plan for the page of results.
func (p ListEventsParams) FindOptions() *options.FindOptions {
	sortKey := p.SortBy
	switch sortKey {
	case SortByStartTime, SortByPrice, SortByTitle:
	default:
		sortKey = SortByStartTime
	}

	direction := 1
	if p.SortOrder == SortDesc {
		direction = -1
	}

	return options.Find().
		SetSort(bson.D{{Key: sortKey, Value: direction}}).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.limit()))
}

// resolveDatePreset maps a named shorthand to a concrete UTC window
// computed relative to now.
func resolveDatePreset(preset string, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch preset {
	case DatePresetToday:
		return startOfDay, startOfDay.AddDate(0, 0, 1)
	case DatePresetThisWeek:
		// Monday is the start of the week.
		offset := (int(startOfDay.Weekday()) + 6) % 7
		monday := startOfDay.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7)
	default: // this_month
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, 0)
	}
}
