package models

import (
	"time"
)

// Testimonial represents a customer review of a past event.
// Submissions always start unapproved; only an administrative update
// can approve or feature them.
type Testimonial struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	EventType   string    `json:"eventType" bson:"eventType"`
	Rating      int       `json:"rating" bson:"rating"`
	Testimonial string    `json:"testimonial" bson:"testimonial"`
	EventDate   time.Time `json:"eventDate" bson:"eventDate"`
	Images      []Image   `json:"images" bson:"images"`
	IsApproved  bool      `json:"isApproved" bson:"isApproved"`
	IsFeatured  bool      `json:"isFeatured" bson:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// NewTestimonial creates a Testimonial with default values
func NewTestimonial() *Testimonial {
	return &Testimonial{
		Images:     []Image{},
		IsApproved: false,
		IsFeatured: false,
	}
}

// Clone returns a deep copy detached from the stored record, so the
// caller can read or marshal it without holding the store's lock.
func (t *Testimonial) Clone() *Testimonial {
	clone := *t
	clone.Images = make([]Image, len(t.Images))
	copy(clone.Images, t.Images)
	return &clone
}
