package domain

import "time"

// Review is a customer testimonial displayed on the public site.
type Review struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment" bson:"comment"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
