package models

import "time"

// Snapshot is a whole-store export of all three collections at a point
// in time, used for backup and restore.
type Snapshot struct {
	Events       []*Event       `json:"events"`
	Contacts     []*Contact     `json:"contacts"`
	Testimonials []*Testimonial `json:"testimonials"`
	ExportedAt   time.Time      `json:"exportedAt"`
}
