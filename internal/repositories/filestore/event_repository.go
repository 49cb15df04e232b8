package filestore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// Compile-time check that EventRepository implements the interface
var _ repositories.EventRepository = (*EventRepository)(nil)

// EventRepository handles file-backed storage for event registrations
type EventRepository struct {
	store *Store
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

// Create inserts a new event registration. The store keeps its own
// copy; the caller's record never becomes a shared reference.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = uuid.NewString()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	s.events = append(s.events, event.Clone())
	return s.persist(eventsFile, s.events)
}

// FindByID finds an event by id
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, models.ErrNotFound
}

// FindAll returns one page of events matching the query plus the total
// match count.
func (r *EventRepository) FindAll(ctx context.Context, query repositories.EventQuery) ([]*models.Event, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		if query.Status != "" && string(e.Status) != query.Status {
			continue
		}
		if query.EventType != "" && e.EventType != query.EventType {
			continue
		}
		matched = append(matched, e)
	}

	sortEvents(matched, query.SortBy)

	total := int64(len(matched))
	lo, hi := pageSlice(len(matched), query.Page, query.Limit)
	page := make([]*models.Event, hi-lo)
	for i, e := range matched[lo:hi] {
		page[i] = e.Clone()
	}
	return page, total, nil
}

func sortEvents(events []*models.Event, sortBy string) {
	sort.SliceStable(events, func(i, j int) bool {
		switch sortBy {
		case "createdAt":
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		case "name":
			return events[i].Name < events[j].Name
		case "status":
			return events[i].Status < events[j].Status
		default: // eventDate
			return events[i].EventDate.Before(events[j].EventDate)
		}
	})
}

// UpdateStatus sets the event status and optionally appends a note.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status models.EventStatus, note *models.Note) (*models.Event, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID != id {
			continue
		}
		e.Status = status
		if note != nil {
			e.Notes = append(e.Notes, *note)
		}
		e.UpdatedAt = time.Now()
		if err := s.persist(eventsFile, s.events); err != nil {
			return nil, err
		}
		return e.Clone(), nil
	}
	return nil, models.ErrNotFound
}

// Stats computes the event overview aggregates.
func (r *EventRepository) Stats(ctx context.Context) (*models.EventStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.EventStats{
		TotalEvents:     int64(len(s.events)),
		EventTypesStats: []models.EventTypeCount{},
		MonthlyStats:    []models.MonthlyCount{},
	}

	typeCounts := map[string]int64{}
	type monthKey struct{ year, month int }
	monthCounts := map[monthKey]int64{}

	for _, e := range s.events {
		switch e.Status {
		case models.EventStatusPending:
			stats.PendingEvents++
		case models.EventStatusConfirmed:
			stats.ConfirmedEvents++
		case models.EventStatusCompleted:
			stats.CompletedEvents++
		}
		typeCounts[e.EventType]++
		monthCounts[monthKey{e.EventDate.Year(), int(e.EventDate.Month())}]++
	}

	for t, n := range typeCounts {
		stats.EventTypesStats = append(stats.EventTypesStats, models.EventTypeCount{EventType: t, Count: n})
	}
	sort.SliceStable(stats.EventTypesStats, func(i, j int) bool {
		if stats.EventTypesStats[i].Count != stats.EventTypesStats[j].Count {
			return stats.EventTypesStats[i].Count > stats.EventTypesStats[j].Count
		}
		return stats.EventTypesStats[i].EventType < stats.EventTypesStats[j].EventType
	})

	for k, n := range monthCounts {
		stats.MonthlyStats = append(stats.MonthlyStats, models.MonthlyCount{Year: k.year, Month: k.month, Count: n})
	}
	// Newest month first, capped at 12 buckets.
	sort.SliceStable(stats.MonthlyStats, func(i, j int) bool {
		if stats.MonthlyStats[i].Year != stats.MonthlyStats[j].Year {
			return stats.MonthlyStats[i].Year > stats.MonthlyStats[j].Year
		}
		return stats.MonthlyStats[i].Month > stats.MonthlyStats[j].Month
	})
	if len(stats.MonthlyStats) > 12 {
		stats.MonthlyStats = stats.MonthlyStats[:12]
	}

	return stats, nil
}
