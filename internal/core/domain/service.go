package domain

import "time"

// Service is an offering customers can book (e.g. a haircut).
type Service struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description" bson:"description"`
	DurationMinutes int       `json:"duration" bson:"duration_minutes"`
	Price           float64   `json:"price" bson:"price"`
	ImageURL        string    `json:"imageUrl" bson:"image_url"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
