package models

import (
	"time"
)

type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusConfirmed  EventStatus = "confirmed"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// EventTypes is the fixed category set shared by events and testimonials.
var EventTypes = []string{
	"Wedding",
	"Birthday Party",
	"Conference",
	"Seminar",
	"Sports Entertainment",
	"Venue Rental",
	"Catering",
	"Decorations",
	"Webinar",
	"Photography",
	"Videography",
	"Cake",
	"Networking Event",
	"Other",
}

// IsValidEventType reports whether t belongs to the category set.
func IsValidEventType(t string) bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Note is an append-only annotation on an event.
type Note struct {
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
}

// Image holds uploaded file metadata.
type Image struct {
	Filename     string    `json:"filename" bson:"filename"`
	OriginalName string    `json:"originalName" bson:"originalName"`
	Path         string    `json:"path" bson:"path"`
	UploadedAt   time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

// Event represents an event registration submitted through the website.
type Event struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	Name           string      `json:"name" bson:"name"`
	Mobile         string      `json:"mobile" bson:"mobile"`
	Email          string      `json:"email,omitempty" bson:"email,omitempty"`
	EventType      string      `json:"eventType" bson:"eventType"`
	EventDate      time.Time   `json:"eventDate" bson:"eventDate"`
	Venue          string      `json:"venue" bson:"venue"`
	GuestCount     int         `json:"guestCount,omitempty" bson:"guestCount,omitempty"`
	Budget         float64     `json:"budget,omitempty" bson:"budget,omitempty"`
	AdditionalInfo string      `json:"additionalInfo,omitempty" bson:"additionalInfo,omitempty"`
	Status         EventStatus `json:"status" bson:"status"`
	AssignedTo     string      `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	Notes          []Note      `json:"notes" bson:"notes"`
	Images         []Image     `json:"images" bson:"images"`
	CreatedAt      time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// NewEvent creates an Event with default values
func NewEvent() *Event {
	return &Event{
		EventType: "Other",
		Status:    EventStatusPending,
		Notes:     []Note{},
		Images:    []Image{},
	}
}

// Clone returns a deep copy detached from the stored record, so the
// caller can read or marshal it without holding the store's lock.
func (e *Event) Clone() *Event {
	clone := *e
	clone.Notes = make([]Note, len(e.Notes))
	copy(clone.Notes, e.Notes)
	clone.Images = make([]Image, len(e.Images))
	copy(clone.Images, e.Images)
	return &clone
}
