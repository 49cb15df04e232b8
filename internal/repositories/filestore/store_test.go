package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

func newMemStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func seedEvent(t *testing.T, repo *EventRepository, name, eventType string, status models.EventStatus) *models.Event {
	t.Helper()
	event := models.NewEvent()
	event.Name = name
	event.Mobile = "+1234567890"
	event.EventType = eventType
	event.EventDate = time.Now().AddDate(0, 1, 0)
	event.Venue = "Main Hall"
	event.Status = status
	if err := repo.Create(context.Background(), event); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return event
}

func TestEventCreateAssignsUniqueIDs(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		e := seedEvent(t, repo, fmt.Sprintf("client %d", i), "Wedding", models.EventStatusPending)
		if e.ID == "" {
			t.Fatal("Create left ID empty")
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
		if e.CreatedAt.IsZero() {
			t.Fatal("Create left CreatedAt zero")
		}
	}
}

func TestEventFindByIDNotFound(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))

	if _, err := repo.FindByID(context.Background(), "no-such-id"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestEventFindAllPagination(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))

	const total = 25
	const limit = 10
	for i := 0; i < total; i++ {
		seedEvent(t, repo, fmt.Sprintf("client %d", i), "Wedding", models.EventStatusPending)
	}

	// Pages concatenate to the whole collection with no overlap.
	seen := map[string]bool{}
	fetched := 0
	for page := 1; page <= 3; page++ {
		events, n, err := repo.FindAll(context.Background(), repositories.EventQuery{Page: page, Limit: limit})
		if err != nil {
			t.Fatalf("FindAll page %d: %v", page, err)
		}
		if n != total {
			t.Fatalf("total = %d, want %d", n, total)
		}
		for _, e := range events {
			if seen[e.ID] {
				t.Fatalf("event %q returned on more than one page", e.ID)
			}
			seen[e.ID] = true
		}
		fetched += len(events)
	}
	if fetched != total {
		t.Fatalf("fetched %d events across pages, want %d", fetched, total)
	}

	// A page past the end is empty, not an error.
	events, n, err := repo.FindAll(context.Background(), repositories.EventQuery{Page: 4, Limit: limit})
	if err != nil {
		t.Fatalf("FindAll past end: %v", err)
	}
	if len(events) != 0 || n != total {
		t.Fatalf("past-end page: got %d events total %d", len(events), n)
	}
}

func TestEventFindAllFilters(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))

	seedEvent(t, repo, "a", "Wedding", models.EventStatusPending)
	seedEvent(t, repo, "b", "Wedding", models.EventStatusConfirmed)
	seedEvent(t, repo, "c", "Catering", models.EventStatusConfirmed)

	events, n, err := repo.FindAll(context.Background(), repositories.EventQuery{
		Page: 1, Limit: 10, Status: "confirmed", EventType: "Wedding",
	})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if n != 1 || len(events) != 1 || events[0].Name != "b" {
		t.Fatalf("filter mismatch: n=%d events=%v", n, events)
	}
}

func TestEventUpdateStatusAppendsNote(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))
	event := seedEvent(t, repo, "a", "Wedding", models.EventStatusPending)

	note := &models.Note{Content: "venue confirmed", CreatedAt: time.Now(), CreatedBy: "admin"}
	updated, err := repo.UpdateStatus(context.Background(), event.ID, models.EventStatusConfirmed, note)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.EventStatusConfirmed {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}
	if len(updated.Notes) != 1 || updated.Notes[0].Content != "venue confirmed" {
		t.Errorf("notes = %v, want the one appended note", updated.Notes)
	}

	// A second update without a note keeps the existing notes.
	updated, err = repo.UpdateStatus(context.Background(), event.ID, models.EventStatusCompleted, nil)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(updated.Notes) != 1 {
		t.Errorf("notes grew without a note: %v", updated.Notes)
	}

	if _, err := repo.UpdateStatus(context.Background(), "missing", models.EventStatusConfirmed, nil); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("want ErrNotFound for missing id, got %v", err)
	}
}

func TestEventFindByIDReturnsDetachedCopy(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))
	event := seedEvent(t, repo, "original", "Wedding", models.EventStatusPending)

	got, err := repo.FindByID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	got.Name = "tampered"
	got.Notes = append(got.Notes, models.Note{Content: "tampered"})

	reread, err := repo.FindByID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reread.Name != "original" || len(reread.Notes) != 0 {
		t.Fatalf("mutating a returned record reached the store: %+v", reread)
	}
}

func TestEventConcurrentReadersAndWriter(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))
	event := seedEvent(t, repo, "busy", "Wedding", models.EventStatusPending)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			note := &models.Note{Content: "update", CreatedAt: time.Now(), CreatedBy: "admin"}
			if _, err := repo.UpdateStatus(context.Background(), event.ID, models.EventStatusConfirmed, note); err != nil {
				t.Errorf("UpdateStatus: %v", err)
				return
			}
		}
	}()

	// Marshaling a fetched record must never observe a concurrent
	// in-place update.
	for i := 0; i < 200; i++ {
		got, err := repo.FindByID(context.Background(), event.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if _, err := json.Marshal(got); err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}
	wg.Wait()
}

func TestEventStats(t *testing.T) {
	repo := NewEventRepository(newMemStore(t))

	seedEvent(t, repo, "a", "Wedding", models.EventStatusPending)
	seedEvent(t, repo, "b", "Wedding", models.EventStatusConfirmed)
	seedEvent(t, repo, "c", "Catering", models.EventStatusCompleted)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEvents != 3 || stats.PendingEvents != 1 || stats.ConfirmedEvents != 1 || stats.CompletedEvents != 1 {
		t.Fatalf("status counts wrong: %+v", stats)
	}
	if len(stats.EventTypesStats) != 2 || stats.EventTypesStats[0].EventType != "Wedding" || stats.EventTypesStats[0].Count != 2 {
		t.Fatalf("type stats wrong: %+v", stats.EventTypesStats)
	}
}

func TestEventMonthlyStatsCapNewestFirst(t *testing.T) {
	store := newMemStore(t)

	// 14 consecutive months, January 2024 through February 2025.
	events := make([]*models.Event, 0, 14)
	for i := 0; i < 14; i++ {
		e := models.NewEvent()
		e.ID = fmt.Sprintf("e%d", i)
		e.Name = "seed"
		e.EventType = "Wedding"
		e.EventDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		events = append(events, e)
	}
	if err := store.Import(context.Background(), &models.Snapshot{Events: events}); err != nil {
		t.Fatalf("Import: %v", err)
	}

	stats, err := NewEventRepository(store).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats.MonthlyStats) != 12 {
		t.Fatalf("monthly buckets = %d, want cap of 12", len(stats.MonthlyStats))
	}
	first := stats.MonthlyStats[0]
	if first.Year != 2025 || first.Month != 2 {
		t.Errorf("first bucket = %d-%02d, want newest 2025-02", first.Year, first.Month)
	}
	last := stats.MonthlyStats[11]
	if last.Year != 2024 || last.Month != 3 {
		t.Errorf("last bucket = %d-%02d, want 2024-03 (oldest two truncated)", last.Year, last.Month)
	}
}

func TestContactDailyStatsCapNewestFirst(t *testing.T) {
	store := newMemStore(t)

	// 35 consecutive days ending 2025-01-20, crossing the year boundary.
	newest := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	contacts := make([]*models.Contact, 0, 35)
	for i := 0; i < 35; i++ {
		c := models.NewContact()
		c.ID = fmt.Sprintf("c%d", i)
		c.Name = "seed"
		c.Message = "hello"
		c.CreatedAt = newest.AddDate(0, 0, -i)
		contacts = append(contacts, c)
	}
	if err := store.Import(context.Background(), &models.Snapshot{Contacts: contacts}); err != nil {
		t.Fatalf("Import: %v", err)
	}

	stats, err := NewContactRepository(store).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats.DailyStats) != 30 {
		t.Fatalf("daily buckets = %d, want cap of 30", len(stats.DailyStats))
	}
	first := stats.DailyStats[0]
	if first.Year != 2025 || first.Month != 1 || first.Day != 20 {
		t.Errorf("first bucket = %d-%02d-%02d, want newest 2025-01-20", first.Year, first.Month, first.Day)
	}
	last := stats.DailyStats[29]
	if last.Year != 2024 || last.Month != 12 || last.Day != 22 {
		t.Errorf("last bucket = %d-%02d-%02d, want 2024-12-22 (oldest five truncated)", last.Year, last.Month, last.Day)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	repo := NewEventRepository(store)
	created := seedEvent(t, repo, "persisted", "Wedding", models.EventStatusPending)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := NewEventRepository(reopened).FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID after reopen: %v", err)
	}
	if got.Name != "persisted" || got.Status != models.EventStatusPending {
		t.Fatalf("reloaded event mismatch: %+v", got)
	}
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, eventsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore with corrupt file: %v", err)
	}
	events, _, _, err := store.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if events != 0 {
		t.Fatalf("corrupt file loaded %d events, want 0", events)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newMemStore(t)
	eventRepo := NewEventRepository(src)
	seedEvent(t, eventRepo, "first", "Wedding", models.EventStatusPending)
	seedEvent(t, eventRepo, "second", "Catering", models.EventStatusConfirmed)

	contact := models.NewContact()
	contact.Name = "Priya"
	contact.Message = "Do you cater weekends?"
	if err := NewContactRepository(src).Create(context.Background(), contact); err != nil {
		t.Fatalf("Create contact: %v", err)
	}

	snapshot, err := src.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(snapshot.Events) != 2 || len(snapshot.Contacts) != 1 {
		t.Fatalf("snapshot sizes wrong: %d events %d contacts", len(snapshot.Events), len(snapshot.Contacts))
	}
	if snapshot.ExportedAt.IsZero() {
		t.Error("ExportedAt not set")
	}

	dst := newMemStore(t)
	if err := dst.Import(context.Background(), snapshot); err != nil {
		t.Fatalf("Import: %v", err)
	}
	events, contacts, _, err := dst.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if events != 2 || contacts != 1 {
		t.Fatalf("imported counts: %d events %d contacts", events, contacts)
	}

	// Insertion order survives the round trip.
	got, _, err := NewEventRepository(dst).FindAll(context.Background(), repositories.EventQuery{Page: 1, Limit: 10, SortBy: "createdAt"})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("order lost: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestImportNilCollectionLeavesExisting(t *testing.T) {
	store := newMemStore(t)
	seedEvent(t, NewEventRepository(store), "kept", "Wedding", models.EventStatusPending)

	err := store.Import(context.Background(), &models.Snapshot{
		Contacts: []*models.Contact{},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	events, contacts, _, _ := store.Counts(context.Background())
	if events != 1 {
		t.Fatalf("events = %d, want 1 (nil collection must not clear)", events)
	}
	if contacts != 0 {
		t.Fatalf("contacts = %d, want 0", contacts)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newMemStore(t)
	seedEvent(t, NewEventRepository(store), "a", "Wedding", models.EventStatusPending)

	for i := 0; i < 2; i++ {
		if err := store.Clear(context.Background()); err != nil {
			t.Fatalf("Clear #%d: %v", i+1, err)
		}
	}
	events, contacts, testimonials, err := store.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if events != 0 || contacts != 0 || testimonials != 0 {
		t.Fatalf("store not empty after Clear: %d/%d/%d", events, contacts, testimonials)
	}
}

func TestContactUpdateOverwritesResponse(t *testing.T) {
	repo := NewContactRepository(newMemStore(t))

	contact := models.NewContact()
	contact.Name = "Priya"
	contact.Message = "Quote please"
	if err := repo.Create(context.Background(), contact); err != nil {
		t.Fatalf("Create: %v", err)
	}

	first := &models.ContactResponse{Content: "first reply", RespondedAt: time.Now(), RespondedBy: "admin"}
	if _, err := repo.UpdateStatus(context.Background(), contact.ID, models.ContactStatusReplied, models.PriorityHigh, first); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	second := &models.ContactResponse{Content: "second reply", RespondedAt: time.Now(), RespondedBy: "admin"}
	updated, err := repo.UpdateStatus(context.Background(), contact.ID, models.ContactStatusReplied, "", second)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Response == nil || updated.Response.Content != "second reply" {
		t.Fatalf("response not overwritten: %+v", updated.Response)
	}
	if updated.Priority != models.PriorityHigh {
		t.Fatalf("empty priority must leave previous value, got %q", updated.Priority)
	}
}
