package models

// Request bodies are explicit allow-lists: only the fields declared
// here ever reach a stored record, so clients cannot inject status,
// approval flags or identifiers directly.

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Mobile         string  `json:"mobile" validate:"required,intlphone"`
	Email          string  `json:"email" validate:"omitempty,email"`
	EventType      string  `json:"eventType" validate:"omitempty,eventtype"`
	EventDate      string  `json:"eventDate" validate:"required,futuredate"`
	Venue          string  `json:"venue" validate:"required,max=200"`
	GuestCount     int     `json:"guestCount" validate:"omitempty,min=1,max=10000"`
	Budget         float64 `json:"budget" validate:"omitempty,min=0"`
	AdditionalInfo string  `json:"additionalInfo" validate:"omitempty,max=1000"`
}

// UpdateEventStatusRequest is the body of PUT /api/events/:id/status.
// A non-empty Notes value is appended to the event's note history.
type UpdateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in-progress completed cancelled"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
	UserID string `json:"userId" validate:"omitempty,max=100"`
}

// CreateContactRequest is the body of POST /api/contact.
type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,intlphone"`
	Subject  string `json:"subject" validate:"omitempty,max=200"`
	Message  string `json:"message" validate:"required,max=2000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

// UpdateContactStatusRequest is the body of PUT /api/contact/:id/status.
// Response, when present, replaces any previous response.
type UpdateContactStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=new read replied"`
	Response string `json:"response" validate:"omitempty,max=2000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	UserID   string `json:"userId" validate:"omitempty,max=100"`
}

// CreateTestimonialRequest is the body of POST /api/testimonials.
type CreateTestimonialRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	EventType   string `json:"eventType" validate:"required,eventtype"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Testimonial string `json:"testimonial" validate:"required,max=1000"`
	EventDate   string `json:"eventDate" validate:"required,pastdate"`
}

// ApproveTestimonialRequest is the body of PUT /api/testimonials/:id/approve.
// Pointers distinguish "leave unchanged" from an explicit false.
type ApproveTestimonialRequest struct {
	IsApproved *bool `json:"isApproved"`
	IsFeatured *bool `json:"isFeatured"`
}

// ImportRequest is the body of POST /api/admin/import. The snapshot is
// accepted as-is: import is an administrative trust boundary and
// performs no field-level validation.
type ImportRequest struct {
	Events       []*Event       `json:"events"`
	Contacts     []*Contact     `json:"contacts"`
	Testimonials []*Testimonial `json:"testimonials"`
}
