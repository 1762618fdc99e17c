package models

import "time"

type Ticket struct {
	ID           int64     `bson:"id" json:"id"`
	EventID      int64     `bson:"event_id" json:"event_id" validate:"required"`
	AttendeeID   int64     `bson:"attendee_id" json:"attendee_id" validate:"required"`
	Price        float64   `bson:"price" json:"price" validate:"gte=0"`
	PurchaseTime time.Time `bson:"purchase_time" json:"purchase_time" validate:"required"`
}
