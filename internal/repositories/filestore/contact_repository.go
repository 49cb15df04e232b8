package filestore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// Compile-time check that ContactRepository implements the interface
var _ repositories.ContactRepository = (*ContactRepository)(nil)

// ContactRepository handles file-backed storage for contact messages
type ContactRepository struct {
	store *Store
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(store *Store) *ContactRepository {
	return &ContactRepository{store: store}
}

// Create inserts a new contact message. The store keeps its own copy;
// the caller's record never becomes a shared reference.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now()
	s.contacts = append(s.contacts, contact.Clone())
	return s.persist(contactsFile, s.contacts)
}

// FindByID finds a contact message by id
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contacts {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, models.ErrNotFound
}

// FindAll returns one page of contact messages, newest first, plus the
// total match count.
func (r *ContactRepository) FindAll(ctx context.Context, query repositories.ContactQuery) ([]*models.Contact, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if query.Status != "" && string(c.Status) != query.Status {
			continue
		}
		if query.Priority != "" && string(c.Priority) != query.Priority {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	lo, hi := pageSlice(len(matched), query.Page, query.Limit)
	page := make([]*models.Contact, hi-lo)
	for i, c := range matched[lo:hi] {
		page[i] = c.Clone()
	}
	return page, total, nil
}

// UpdateStatus updates status and optionally priority and response.
// The response is overwritten, never appended.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus, priority models.ContactPriority, response *models.ContactResponse) (*models.Contact, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if c.ID != id {
			continue
		}
		c.Status = status
		if priority != "" {
			c.Priority = priority
		}
		if response != nil {
			c.Response = response
		}
		if err := s.persist(contactsFile, s.contacts); err != nil {
			return nil, err
		}
		return c.Clone(), nil
	}
	return nil, models.ErrNotFound
}

// Stats computes the contact overview aggregates.
func (r *ContactRepository) Stats(ctx context.Context) (*models.ContactStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.ContactStats{
		TotalMessages: int64(len(s.contacts)),
		PriorityStats: []models.PriorityCount{},
		DailyStats:    []models.DailyCount{},
	}

	priorityCounts := map[string]int64{}
	type dayKey struct{ year, month, day int }
	dayCounts := map[dayKey]int64{}

	for _, c := range s.contacts {
		switch c.Status {
		case models.ContactStatusNew:
			stats.NewMessages++
		case models.ContactStatusRead:
			stats.ReadMessages++
		case models.ContactStatusReplied:
			stats.RepliedMessages++
		}
		priorityCounts[string(c.Priority)]++
		y, m, d := c.CreatedAt.Date()
		dayCounts[dayKey{y, int(m), d}]++
	}

	for p, n := range priorityCounts {
		stats.PriorityStats = append(stats.PriorityStats, models.PriorityCount{Priority: p, Count: n})
	}
	sort.SliceStable(stats.PriorityStats, func(i, j int) bool {
		if stats.PriorityStats[i].Count != stats.PriorityStats[j].Count {
			return stats.PriorityStats[i].Count > stats.PriorityStats[j].Count
		}
		return stats.PriorityStats[i].Priority < stats.PriorityStats[j].Priority
	})

	for k, n := range dayCounts {
		stats.DailyStats = append(stats.DailyStats, models.DailyCount{Year: k.year, Month: k.month, Day: k.day, Count: n})
	}
	// Newest day first, capped at 30 buckets.
	sort.SliceStable(stats.DailyStats, func(i, j int) bool {
		a, b := stats.DailyStats[i], stats.DailyStats[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Day > b.Day
	})
	if len(stats.DailyStats) > 30 {
		stats.DailyStats = stats.DailyStats[:30]
	}

	return stats, nil
}
