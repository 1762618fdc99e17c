package models

// EventFavorite marks an event as favorited by a user. Uniqueness of the
// (event_id, user_id) pair is enforced at the operation level, not by a
// stored constraint.
type EventFavorite struct {
	EventID int64 `bson:"event_id" json:"event_id" validate:"required"`
	UserID  int64 `bson:"user_id" json:"user_id" validate:"required"`
}
