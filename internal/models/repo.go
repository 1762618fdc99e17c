package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// ErrValidation marks client-input errors raised at entity construction.
var ErrValidation = errors.New("validation failed")

// ErrEventNotFound is returned when a referenced event id does not exist.
var ErrEventNotFound = errors.New("event not found")

const (
	EventsColName     = "events"
	AttendanceColName = "attendance"
	FavoritesColName  = "event_favorites"
	CountersColName   = "counters"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}
