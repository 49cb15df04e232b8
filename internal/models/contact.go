package models

import (
	"time"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

type ContactPriority string

const (
	PriorityLow    ContactPriority = "low"
	PriorityMedium ContactPriority = "medium"
	PriorityHigh   ContactPriority = "high"
	PriorityUrgent ContactPriority = "urgent"
)

// ContactResponse is the single reply attached to a contact message.
// It is overwritten on update, never appended.
type ContactResponse struct {
	Content     string    `json:"content" bson:"content"`
	RespondedAt time.Time `json:"respondedAt" bson:"respondedAt"`
	RespondedBy string    `json:"respondedBy" bson:"respondedBy"`
}

// Contact represents a message submitted through the contact form.
type Contact struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	Name      string           `json:"name" bson:"name"`
	Email     string           `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string           `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string           `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string           `json:"message" bson:"message"`
	Status    ContactStatus    `json:"status" bson:"status"`
	Priority  ContactPriority  `json:"priority" bson:"priority"`
	Response  *ContactResponse `json:"response,omitempty" bson:"response,omitempty"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

// NewContact creates a Contact with default values
func NewContact() *Contact {
	return &Contact{
		Status:   ContactStatusNew,
		Priority: PriorityMedium,
	}
}

// Clone returns a deep copy detached from the stored record, so the
// caller can read or marshal it without holding the store's lock.
func (c *Contact) Clone() *Contact {
	clone := *c
	if c.Response != nil {
		response := *c.Response
		clone.Response = &response
	}
	return &clone
}
