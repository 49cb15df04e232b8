// Package filestore implements the repository interfaces over plain
// JSON documents on disk, one per collection, rewritten wholesale on
// every mutation. With an empty directory it degrades to a purely
// in-memory store.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

const (
	eventsFile       = "events.json"
	contactsFile     = "contacts.json"
	testimonialsFile = "testimonials.json"
)

// Compile-time check that Store implements the admin interface
var _ repositories.AdminStore = (*Store)(nil)

// Store owns the three collections behind a single lock. Requests are
// served concurrently by the HTTP layer, so every access goes through
// the mutex.
type Store struct {
	mu           sync.RWMutex
	dir          string
	events       []*models.Event
	contacts     []*models.Contact
	testimonials []*models.Testimonial
}

// NewStore creates a store rooted at dir. An empty dir selects the
// volatile in-memory variant. Otherwise the directory is created if
// absent and each collection file is loaded; a missing or corrupt file
// degrades to an empty collection rather than failing construction.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:          dir,
		events:       []*models.Event{},
		contacts:     []*models.Contact{},
		testimonials: []*models.Testimonial{},
	}

	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	loadCollection(dir, eventsFile, &s.events)
	loadCollection(dir, contactsFile, &s.contacts)
	loadCollection(dir, testimonialsFile, &s.testimonials)

	log.Info().
		Int("events", len(s.events)).
		Int("contacts", len(s.contacts)).
		Int("testimonials", len(s.testimonials)).
		Str("dir", dir).
		Msg("loaded data from disk")

	return s, nil
}

func loadCollection[T any](dir, filename string, out *[]*T) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", filename).Msg("could not read collection file, starting empty")
		}
		return
	}
	if len(data) == 0 {
		return
	}
	var records []*T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("corrupt collection file, starting empty")
		return
	}
	if records != nil {
		*out = records
	}
}

// persist rewrites one collection file. Callers must hold the lock.
// No-op for the in-memory variant.
func (s *Store) persist(filename string, collection interface{}) error {
	if s.dir == "" {
		return nil
	}
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return &models.PersistenceError{Op: "marshal " + filename, Err: err}
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return &models.PersistenceError{Op: "write " + filename, Err: err}
	}
	return nil
}

func (s *Store) persistAll() error {
	if err := s.persist(eventsFile, s.events); err != nil {
		return err
	}
	if err := s.persist(contactsFile, s.contacts); err != nil {
		return err
	}
	return s.persist(testimonialsFile, s.testimonials)
}

// Close flushes every collection to disk.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistAll()
}

// Export returns a deep copy of all collections, detached from the
// live records.
func (s *Store) Export(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := &models.Snapshot{
		Events:       make([]*models.Event, len(s.events)),
		Contacts:     make([]*models.Contact, len(s.contacts)),
		Testimonials: make([]*models.Testimonial, len(s.testimonials)),
		ExportedAt:   time.Now(),
	}
	for i, e := range s.events {
		snapshot.Events[i] = e.Clone()
	}
	for i, c := range s.contacts {
		snapshot.Contacts[i] = c.Clone()
	}
	for i, t := range s.testimonials {
		snapshot.Testimonials[i] = t.Clone()
	}
	return snapshot, nil
}

// Import replaces collections with the snapshot contents. The snapshot
// is trusted as-is; a nil collection leaves the stored one untouched.
func (s *Store) Import(ctx context.Context, snapshot *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.Events != nil {
		s.events = snapshot.Events
	}
	if snapshot.Contacts != nil {
		s.contacts = snapshot.Contacts
	}
	if snapshot.Testimonials != nil {
		s.testimonials = snapshot.Testimonials
	}
	return s.persistAll()
}

// Clear empties all collections. Clearing an already empty store is
// not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = []*models.Event{}
	s.contacts = []*models.Contact{}
	s.testimonials = []*models.Testimonial{}
	return s.persistAll()
}

// Counts reports the size of each collection.
func (s *Store) Counts(ctx context.Context) (int64, int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.events)), int64(len(s.contacts)), int64(len(s.testimonials)), nil
}

// pageSlice returns the [lo, hi) window for a 1-based page over a
// collection of length total.
func pageSlice(total, page, limit int) (int, int) {
	lo := (page - 1) * limit
	if lo > total {
		lo = total
	}
	hi := lo + limit
	if hi > total {
		hi = total
	}
	return lo, hi
}
