package repositories

import (
	"context"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
)

// EventQuery shapes a paginated event listing. Status and EventType
// are exact-match filters; SortBy picks the ascending sort field and
// defaults to eventDate.
type EventQuery struct {
	Page      int
	Limit     int
	Status    string
	EventType string
	SortBy    string
}

// ContactQuery shapes a paginated contact listing, newest first.
type ContactQuery struct {
	Page     int
	Limit    int
	Status   string
	Priority string
}

// TestimonialQuery shapes a paginated testimonial listing. Only
// approved records are ever listed; FeaturedOnly narrows further.
type TestimonialQuery struct {
	Page         int
	Limit        int
	EventType    string
	FeaturedOnly bool
}

// EventRepository defines the interface for event registration storage
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindAll(ctx context.Context, query EventQuery) ([]*models.Event, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.EventStatus, note *models.Note) (*models.Event, error)
	Stats(ctx context.Context) (*models.EventStats, error)
}

// ContactRepository defines the interface for contact message storage
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	FindAll(ctx context.Context, query ContactQuery) ([]*models.Contact, int64, error)
	// UpdateStatus applies the single post-creation mutation a contact
	// supports. An empty priority leaves the stored priority unchanged;
	// a non-nil response replaces any previous one.
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus, priority models.ContactPriority, response *models.ContactResponse) (*models.Contact, error)
	Stats(ctx context.Context) (*models.ContactStats, error)
}

// TestimonialRepository defines the interface for testimonial storage
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	FindAll(ctx context.Context, query TestimonialQuery) ([]*models.Testimonial, int64, error)
	// FindFeatured returns approved, featured testimonials sorted by
	// rating then recency, capped at limit.
	FindFeatured(ctx context.Context, limit int) ([]*models.Testimonial, error)
	// UpdateApproval flips the moderation flags; nil leaves a flag
	// unchanged.
	UpdateApproval(ctx context.Context, id string, isApproved, isFeatured *bool) (*models.Testimonial, error)
	Stats(ctx context.Context) (*models.TestimonialStats, error)
}

// AdminStore defines whole-store operations for backup, restore and
// maintenance.
type AdminStore interface {
	Export(ctx context.Context) (*models.Snapshot, error)
	// Import replaces collections with the snapshot contents as-is. A
	// nil collection in the snapshot leaves the stored one untouched.
	Import(ctx context.Context, snapshot *models.Snapshot) error
	Clear(ctx context.Context) error
	Counts(ctx context.Context) (events, contacts, testimonials int64, err error)
}
