package domain

import "time"

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for booking slot times.
const TimeLayout = "15:04"

// BlockedDate marks a whole day as unavailable for bookings (holidays,
// maintenance days).
type BlockedDate struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Date      string    `json:"date" bson:"date"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
