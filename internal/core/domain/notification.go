package domain

import "time"

// NotificationStatus tracks whether a confirmation was recorded successfully.
type NotificationStatus string

const (
	NotificationQueued NotificationStatus = "queued"
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification is a persisted record of a booking confirmation message.
// Delivery itself is handled out of band; this collection is the audit trail
// the staff dashboard reads.
type Notification struct {
	ID            string             `json:"id" bson:"_id,omitempty"`
	AppointmentID string             `json:"appointment_id" bson:"appointment_id"`
	Recipient     string             `json:"recipient" bson:"recipient"`
	Subject       string             `json:"subject" bson:"subject"`
	Body          string             `json:"body" bson:"body"`
	Status        NotificationStatus `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
