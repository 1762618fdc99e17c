package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/evently-app/server/internal/models"
	"github.com/evently-app/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client
	EventService  *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, dbName)
	eventService := services.NewEventService(repo)

	return &Container{
		Logger:        logger,
		MongoDBClient: mongoDBClient,
		EventService:  eventService,
	}
}
