package domain

import "time"

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known appointment states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a customer booking for a service at a specific slot.
// Date uses the YYYY-MM-DD layout and Time the HH:MM layout; together they
// identify the slot a booking occupies.
type Appointment struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	ServiceID    string            `json:"service_id" bson:"service_id"`
	CustomerName string            `json:"customer_name" bson:"customer_name"`
	Email        string            `json:"email" bson:"email"`
	Phone        string            `json:"phone" bson:"phone"`
	Date         string            `json:"date" bson:"date"`
	Time         string            `json:"time" bson:"time"`
	Notes        string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Status       AppointmentStatus `json:"status" bson:"status"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
}
