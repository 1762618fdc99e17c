package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/evently-app/server/internal/models"
)

func ptr(s string) *string { return &s }

// SampleEvents returns the fixture events inserted by the seed command.
func SampleEvents() []models.Event {
	return []models.Event{
		{
			ID:              1,
			Title:           "Summer Music Festival 2026",
			About:           "Three days of live music across five stages featuring top artists from around the world. Food trucks, art installations, and a vibrant community atmosphere.",
			OrganizerUserID: 1,
			Price:           0.0,
			TotalCapacity:   5000,
			StartTime:       time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 6, 22, 23, 0, 0, 0, time.UTC),
			Category:        models.CategoryMusic,
			Schedule: []models.EventScheduleEntry{
				{StartTime: time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC), Description: "Gates open"},
				{StartTime: time.Date(2026, 6, 20, 14, 0, 0, 0, time.UTC), Description: "Opening act on Main Stage"},
				{StartTime: time.Date(2026, 6, 20, 20, 0, 0, 0, time.UTC), Description: "Headliner performance"},
			},
			Location: models.Location{
				Longitude: -73.9654,
				Latitude:  40.7829,
				VenueName: ptr("Central Park"),
				Address:   "Central Park West",
				City:      "New York",
				State:     "NY",
				ZipCode:   "10024",
			},
		},
		{
			ID:              2,
			Title:           "Tech Conference 2026",
			About:           "A premier technology conference featuring keynotes from industry leaders, hands-on workshops, and networking opportunities for developers and entrepreneurs.",
			OrganizerUserID: 2,
			Price:           0.0,
			TotalCapacity:   2000,
			StartTime:       time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 7, 12, 17, 0, 0, 0, time.UTC),
			Category:        models.CategoryConference,
			IsOnline:        true,
			Schedule: []models.EventScheduleEntry{
				{StartTime: time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC), Description: "Registration and breakfast"},
				{StartTime: time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC), Description: "Opening keynote"},
				{StartTime: time.Date(2026, 7, 10, 14, 0, 0, 0, time.UTC), Description: "Afternoon workshops"},
			},
			Location: models.Location{
				Longitude: -122.4000,
				Latitude:  37.7850,
				Address:   "747 Howard St",
				City:      "San Francisco",
				State:     "CA",
				ZipCode:   "94103",
			},
		},
		{
			ID:              3,
			Title:           "Stand-up Comedy Night",
			About:           "An evening of laughs with a rotating lineup of local and touring comedians. Two-drink minimum, doors open an hour before the first set.",
			OrganizerUserID: 3,
			Price:           25.0,
			TotalCapacity:   150,
			StartTime:       time.Date(2026, 8, 5, 20, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2026, 8, 5, 23, 0, 0, 0, time.UTC),
			Category:        models.CategoryComedy,
			Schedule: []models.EventScheduleEntry{
				{StartTime: time.Date(2026, 8, 5, 19, 0, 0, 0, time.UTC), Description: "Doors open"},
				{StartTime: time.Date(2026, 8, 5, 20, 0, 0, 0, time.UTC), Description: "First set"},
			},
			Location: models.Location{
				Longitude: -87.6298,
				Latitude:  41.8781,
				VenueName: ptr("The Laugh Track"),
				Address:   "1200 N Clark St",
				City:      "Chicago",
				State:     "IL",
				ZipCode:   "60610",
			},
		},
	}
}

func sampleAttendance() []models.EventAttendance {
	rows := []models.EventAttendance{
		{EventID: 1, UserID: 2, Status: models.AttendanceGoing},
		{EventID: 1, UserID: 3, Status: models.AttendanceGoing},
		{EventID: 1, UserID: 4, Status: models.AttendanceCancelled},
		{EventID: 2, UserID: 1, Status: models.AttendanceGoing},
		{EventID: 2, UserID: 3, Status: models.AttendanceGoing},
		{EventID: 3, UserID: 1, Status: models.AttendanceGoing},
	}
	return rows
}

func sampleFavorites() []models.EventFavorite {
	return []models.EventFavorite{
		{EventID: 1, UserID: 2},
		{EventID: 1, UserID: 3},
		{EventID: 2, UserID: 1},
	}
}

// Seed replaces the contents of the events, attendance, and favorites
// collections with the sample fixtures.
func Seed(ctx context.Context, repo *models.MongodbRepo, logger *slog.Logger) error {
	for _, colName := range []string{models.EventsColName, models.AttendanceColName, models.FavoritesColName} {
		col, err := repo.GetCollection(colName)
		if err != nil {
			return err
		}

		existing, err := col.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("error counting %s documents: %v", colName, err)
		}
		if existing > 0 {
			logger.Info("Dropping existing documents", "collection", colName, "count", existing)
			if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
				return fmt.Errorf("error clearing %s collection: %v", colName, err)
			}
		}
	}

	events, err := repo.GetCollection(models.EventsColName)
	if err != nil {
		return err
	}
	eventDocs := make([]interface{}, 0)
	for _, event := range SampleEvents() {
		eventDocs = append(eventDocs, event)
	}
	if _, err := events.InsertMany(ctx, eventDocs); err != nil {
		return fmt.Errorf("error inserting sample events: %v", err)
	}

	attendance, err := repo.GetCollection(models.AttendanceColName)
	if err != nil {
		return err
	}
	attendanceDocs := make([]interface{}, 0)
	for _, row := range sampleAttendance() {
		attendanceDocs = append(attendanceDocs, row)
	}
	if _, err := attendance.InsertMany(ctx, attendanceDocs); err != nil {
		return fmt.Errorf("error inserting sample attendance: %v", err)
	}

	favorites, err := repo.GetCollection(models.FavoritesColName)
	if err != nil {
		return err
	}
	favoriteDocs := make([]interface{}, 0)
	for _, row := range sampleFavorites() {
		favoriteDocs = append(favoriteDocs, row)
	}
	if _, err := favorites.InsertMany(ctx, favoriteDocs); err != nil {
		return fmt.Errorf("error inserting sample favorites: %v", err)
	}

	logger.Info("Seeded sample data",
		"events", len(eventDocs),
		"attendance", len(attendanceDocs),
		"favorites", len(favoriteDocs),
	)
	return nil
}
