package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventsRepo interface {
	ListEvents(ctx context.Context, params ListEventsParams) ([]*Event, int64, error)
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	AttendingCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
	AttendingCount(ctx context.Context, eventID int64) (int64, error)
	FavoritesCount(ctx context.Context, eventID int64) (int64, error)
	AddFavorite(ctx context.Context, favorite EventFavorite) error
	RemoveFavorite(ctx context.Context, favorite EventFavorite) error
}

// ListEvents counts the matching documents and fetches one sorted page
// against the same filter. The two reads are not transactional; a write in
// between can skew total against items.
func (mdb *MongodbRepo) ListEvents(ctx context.Context, params ListEventsParams) ([]*Event, int64, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := params.Filter(time.Now())

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %v", err)
	}

	cursor, err := col.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("error decoding events: %v", err)
	}

	return events, total, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id int64) (*Event, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event: %v", err)
	}

	return &event, nil
}

// nextEventID atomically advances the event id counter. The counter is
// bumped to at least the current maximum event id before incrementing, so
// collections seeded with explicit ids still produce max+1.
func (mdb *MongodbRepo) nextEventID(ctx context.Context) (int64, error) {
	events, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	var last struct {
		ID int64 `bson:"id"`
	}
	err = events.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}}),
	).Decode(&last)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("error finding max event id: %v", err)
	}

	counters, err := mdb.GetCollection(CountersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"seq": bson.M{"$add": bson.A{
				bson.M{"$max": bson.A{"$seq", last.ID}},
				1,
			}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err = counters.FindOneAndUpdate(ctx, bson.M{"_id": EventsColName}, update, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("error advancing event id counter: %v", err)
	}

	return counter.Seq, nil
}

// CreateEvent assigns the next id and inserts the event. The caller is
// expected to have validated the event already.
func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) error {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	id, err := mdb.nextEventID(ctx)
	if err != nil {
		return err
	}
	event.ID = id

	if _, err := col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting event: %v", err)
	}

	return nil
}

// AttendingCounts returns {event_id: count} of non-cancelled attendance for
// the given ids. Ids with no rows are absent from the map; an empty id list
// returns an empty map without querying.
func (mdb *MongodbRepo) AttendingCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	col, err := mdb.GetCollection(AttendanceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"event_id": bson.M{"$in": eventIDs},
			"status":   bson.M{"$ne": string(AttendanceCancelled)},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$event_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating attendance counts: %v", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EventID int64 `bson:"_id"`
		Count   int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding attendance counts: %v", err)
	}

	for _, row := range rows {
		counts[row.EventID] = row.Count
	}

	return counts, nil
}

func (mdb *MongodbRepo) AttendingCount(ctx context.Context, eventID int64) (int64, error) {
	col, err := mdb.GetCollection(AttendanceColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{
		"event_id": eventID,
		"status":   bson.M{"$ne": string(AttendanceCancelled)},
	})
	if err != nil {
		return 0, fmt.Errorf("error counting attendance: %v", err)
	}

	return count, nil
}

func (mdb *MongodbRepo) FavoritesCount(ctx context.Context, eventID int64) (int64, error) {
	col, err := mdb.GetCollection(FavoritesColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, fmt.Errorf("error counting favorites: %v", err)
	}

	return count, nil
}

// AddFavorite inserts the pair only when it is absent. Adding twice leaves
// the same stored state as adding once.
func (mdb *MongodbRepo) AddFavorite(ctx context.Context, favorite EventFavorite) error {
	col, err := mdb.GetCollection(FavoritesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"event_id": favorite.EventID, "user_id": favorite.UserID}
	err = col.FindOne(ctx, filter).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("error checking existing favorite: %v", err)
	}

	if _, err := col.InsertOne(ctx, favorite); err != nil {
		return fmt.Errorf("error inserting favorite: %v", err)
	}

	return nil
}

// RemoveFavorite deletes the pair if present; deleting an absent pair is
// not an error.
func (mdb *MongodbRepo) RemoveFavorite(ctx context.Context, favorite EventFavorite) error {
	col, err := mdb.GetCollection(FavoritesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"event_id": favorite.EventID, "user_id": favorite.UserID}
	if _, err := col.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("error deleting favorite: %v", err)
	}

	return nil
}
