package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wednesday, mid-month, mid-day.
var fixedNow = time.Date(2026, 8, 12, 15, 30, 0, 0, time.UTC)

func TestEmptyParamsProduceEmptyFilter(t *testing.T) {
	filter := ListEventsParams{}.Filter(fixedNow)
	require.Empty(t, filter)
}

func TestSearchFilterMatchesTitleOrAbout(t *testing.T) {
	filter := ListEventsParams{Query: "summer"}.Filter(fixedNow)

	clauses, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	title := clauses[0].(bson.M)["title"].(primitive.Regex)
	about := clauses[1].(bson.M)["about"].(primitive.Regex)
	require.Equal(t, "summer", title.Pattern)
	require.Equal(t, "i", title.Options)
	require.Equal(t, "summer", about.Pattern)
	require.Equal(t, "i", about.Options)
}

func TestSearchQuotesRegexMetacharacters(t *testing.T) {
	filter := ListEventsParams{Query: "rock. roll?"}.Filter(fixedNow)

	clauses := filter["$or"].(bson.A)
	title := clauses[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, `rock\. roll\?`, title.Pattern)
}

func TestCityFilterIsAnchoredAndCaseInsensitive(t *testing.T) {
	filter := ListEventsParams{City: "new york"}.Filter(fixedNow)

	city, ok := filter["location.city"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, "^new york$", city.Pattern)
	require.Equal(t, "i", city.Options)
}

func TestCategoryAndOnlineFilters(t *testing.T) {
	online := true
	filter := ListEventsParams{Category: "Music", IsOnline: &online}.Filter(fixedNow)

	require.Equal(t, "Music", filter["category"])
	require.Equal(t, true, filter["is_online"])
}

func TestPriceTypeFilters(t *testing.T) {
	free := ListEventsParams{PriceType: PriceTypeFree}.Filter(fixedNow)
	require.Equal(t, 0.0, free["price"])

	paid := ListEventsParams{PriceType: PriceTypePaid}.Filter(fixedNow)
	require.Equal(t, bson.M{"$gt": 0}, paid["price"])
}

func TestDatePresetToday(t *testing.T) {
	filter := ListEventsParams{DatePreset: DatePresetToday}.Filter(fixedNow)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), window["$gte"])
	require.Equal(t, time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC), window["$lte"])
}

func TestDatePresetThisWeekStartsMonday(t *testing.T) {
	filter := ListEventsParams{DatePreset: DatePresetThisWeek}.Filter(fixedNow)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), window["$gte"])
	require.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), window["$lte"])
}

func TestDatePresetThisWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 8, 16, 9, 0, 0, 0, time.UTC)
	filter := ListEventsParams{DatePreset: DatePresetThisWeek}.Filter(sunday)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), window["$gte"])
}

func TestDatePresetThisMonth(t *testing.T) {
	filter := ListEventsParams{DatePreset: DatePresetThisMonth}.Filter(fixedNow)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), window["$gte"])
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), window["$lte"])
}

func TestDatePresetThisMonthAcrossYearEnd(t *testing.T) {
	december := time.Date(2026, 12, 15, 12, 0, 0, 0, time.UTC)
	filter := ListEventsParams{DatePreset: DatePresetThisMonth}.Filter(december)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), window["$gte"])
	require.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), window["$lte"])
}

func TestDatePresetOverridesExplicitRange(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	filter := ListEventsParams{
		DatePreset: DatePresetToday,
		StartFrom:  &from,
		StartTo:    &to,
	}.Filter(fixedNow)

	window := filter["start_time"].(bson.M)
	require.Equal(t, time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), window["$gte"])
}

func TestExplicitStartBoundsAreIndependent(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := ListEventsParams{StartFrom: &from}.Filter(fixedNow)

	window := filter["start_time"].(bson.M)
	require.Equal(t, from, window["$gte"])
	require.NotContains(t, window, "$lte")

	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	filter = ListEventsParams{StartTo: &to}.Filter(fixedNow)

	window = filter["start_time"].(bson.M)
	require.Equal(t, to, window["$lte"])
	require.NotContains(t, window, "$gte")
}

func TestSkipIsOffsetBased(t *testing.T) {
	require.Equal(t, 0, ListEventsParams{Page: 1, PageSize: 12}.Skip())
	require.Equal(t, 20, ListEventsParams{Page: 3, PageSize: 10}.Skip())
	require.Equal(t, 99, ListEventsParams{Page: 100, PageSize: 1}.Skip())
}

func TestFindOptionsDefaults(t *testing.T) {
	opts := ListEventsParams{Page: 1, PageSize: 12}.FindOptions()

	sort := opts.Sort.(bson.D)
	require.Equal(t, "start_time", sort[0].Key)
	require.Equal(t, 1, sort[0].Value)
	require.Equal(t, int64(0), *opts.Skip)
	require.Equal(t, int64(12), *opts.Limit)
}

func TestFindOptionsDescendingPriceSort(t *testing.T) {
	opts := ListEventsParams{
		SortBy:    SortByPrice,
		SortOrder: SortDesc,
		Page:      2,
		PageSize:  25,
	}.FindOptions()

	sort := opts.Sort.(bson.D)
	require.Equal(t, "price", sort[0].Key)
	require.Equal(t, -1, sort[0].Value)
	require.Equal(t, int64(25), *opts.Skip)
	require.Equal(t, int64(25), *opts.Limit)
}
