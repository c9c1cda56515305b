package domain

import "time"

// GalleryItem is a portfolio image shown on the public site.
type GalleryItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	ImageURL  string    `json:"imageUrl" bson:"image_url"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
