package domain

import "errors"

// Authentication and authorization.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Collapsing the two prevents account enumeration; callers
	// must never distinguish them.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// Resource lookups.
var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrBlockedDateNotFound = errors.New("blocked date not found")
)

// Booking conflicts and validation.
var (
	ErrSlotTaken     = errors.New("time slot is already booked")
	ErrDateBlocked   = errors.New("date is not available for booking")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid appointment status")
)
