package models

// EventTypeCount is one bucket of a per-category grouping.
type EventTypeCount struct {
	EventType string `json:"eventType" bson:"_id"`
	Count     int64  `json:"count" bson:"count"`
}

// MonthlyCount is one month bucket of a time-series grouping.
type MonthlyCount struct {
	Year  int   `json:"year" bson:"year"`
	Month int   `json:"month" bson:"month"`
	Count int64 `json:"count" bson:"count"`
}

// DailyCount is one day bucket of a time-series grouping.
type DailyCount struct {
	Year  int   `json:"year" bson:"year"`
	Month int   `json:"month" bson:"month"`
	Day   int   `json:"day" bson:"day"`
	Count int64 `json:"count" bson:"count"`
}

// PriorityCount is one bucket of a per-priority grouping.
type PriorityCount struct {
	Priority string `json:"priority" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

// RatingCount is one bucket of the rating distribution.
type RatingCount struct {
	Rating int   `json:"rating" bson:"_id"`
	Count  int64 `json:"count" bson:"count"`
}

// EventTypeRating is a per-category bucket carrying an average rating.
type EventTypeRating struct {
	EventType string  `json:"eventType" bson:"_id"`
	Count     int64   `json:"count" bson:"count"`
	AvgRating float64 `json:"avgRating" bson:"avgRating"`
}

// EventStats is the payload of GET /api/events/stats/overview.
// MonthlyStats buckets event dates by calendar month, newest first,
// capped at 12 buckets.
type EventStats struct {
	TotalEvents     int64            `json:"totalEvents"`
	PendingEvents   int64            `json:"pendingEvents"`
	ConfirmedEvents int64            `json:"confirmedEvents"`
	CompletedEvents int64            `json:"completedEvents"`
	EventTypesStats []EventTypeCount `json:"eventTypesStats"`
	MonthlyStats    []MonthlyCount   `json:"monthlyStats"`
}

// ContactStats is the payload of GET /api/contact/stats/overview.
// DailyStats buckets submissions by calendar day, newest first, capped
// at 30 buckets.
type ContactStats struct {
	TotalMessages   int64           `json:"totalMessages"`
	NewMessages     int64           `json:"newMessages"`
	ReadMessages    int64           `json:"readMessages"`
	RepliedMessages int64           `json:"repliedMessages"`
	PriorityStats   []PriorityCount `json:"priorityStats"`
	DailyStats      []DailyCount    `json:"dailyStats"`
}

// TestimonialStats is the payload of GET /api/testimonials/stats/overview.
// AverageRating, RatingDistribution and EventTypeStats cover approved
// testimonials only.
type TestimonialStats struct {
	TotalTestimonials    int64             `json:"totalTestimonials"`
	ApprovedTestimonials int64             `json:"approvedTestimonials"`
	PendingTestimonials  int64             `json:"pendingTestimonials"`
	FeaturedTestimonials int64             `json:"featuredTestimonials"`
	AverageRating        float64           `json:"averageRating"`
	RatingDistribution   []RatingCount     `json:"ratingDistribution"`
	EventTypeStats       []EventTypeRating `json:"eventTypeStats"`
}
