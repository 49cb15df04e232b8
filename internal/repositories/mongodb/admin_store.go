package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// Compile-time check that AdminStore implements the interface
var _ repositories.AdminStore = (*AdminStore)(nil)

// AdminStore implements whole-store backup, restore and maintenance
// over the three collections.
type AdminStore struct {
	events       *mongo.Collection
	contacts     *mongo.Collection
	testimonials *mongo.Collection
}

// NewAdminStore creates a new AdminStore
func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{
		events:       db.Collection("events"),
		contacts:     db.Collection("contacts"),
		testimonials: db.Collection("testimonials"),
	}
}

// Export reads every collection in insertion order.
func (s *AdminStore) Export(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		Events:       []*models.Event{},
		Contacts:     []*models.Contact{},
		Testimonials: []*models.Testimonial{},
		ExportedAt:   time.Now(),
	}

	if err := findAllInto(ctx, s.events, &snapshot.Events); err != nil {
		return nil, err
	}
	if err := findAllInto(ctx, s.contacts, &snapshot.Contacts); err != nil {
		return nil, err
	}
	if err := findAllInto(ctx, s.testimonials, &snapshot.Testimonials); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func findAllInto(ctx context.Context, collection *mongo.Collection, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return &models.PersistenceError{Op: "export " + collection.Name(), Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return &models.PersistenceError{Op: "decode " + collection.Name(), Err: err}
	}
	return nil
}

// Import replaces collections with the snapshot contents as-is. A nil
// collection in the snapshot leaves the stored one untouched.
func (s *AdminStore) Import(ctx context.Context, snapshot *models.Snapshot) error {
	if snapshot.Events != nil {
		docs := make([]interface{}, len(snapshot.Events))
		for i, e := range snapshot.Events {
			docs[i] = e
		}
		if err := replaceCollection(ctx, s.events, docs); err != nil {
			return err
		}
	}
	if snapshot.Contacts != nil {
		docs := make([]interface{}, len(snapshot.Contacts))
		for i, c := range snapshot.Contacts {
			docs[i] = c
		}
		if err := replaceCollection(ctx, s.contacts, docs); err != nil {
			return err
		}
	}
	if snapshot.Testimonials != nil {
		docs := make([]interface{}, len(snapshot.Testimonials))
		for i, t := range snapshot.Testimonials {
			docs[i] = t
		}
		if err := replaceCollection(ctx, s.testimonials, docs); err != nil {
			return err
		}
	}
	return nil
}

func replaceCollection(ctx context.Context, collection *mongo.Collection, docs []interface{}) error {
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return &models.PersistenceError{Op: "clear " + collection.Name(), Err: err}
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return &models.PersistenceError{Op: "import " + collection.Name(), Err: err}
	}
	return nil
}

// Clear empties all collections. Clearing empty collections is not an
// error.
func (s *AdminStore) Clear(ctx context.Context) error {
	for _, collection := range []*mongo.Collection{s.events, s.contacts, s.testimonials} {
		if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
			return &models.PersistenceError{Op: "clear " + collection.Name(), Err: err}
		}
	}
	return nil
}

// Counts reports the size of each collection.
func (s *AdminStore) Counts(ctx context.Context) (int64, int64, int64, error) {
	events, err := s.events.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, &models.PersistenceError{Op: "count events", Err: err}
	}
	contacts, err := s.contacts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, &models.PersistenceError{Op: "count contacts", Err: err}
	}
	testimonials, err := s.testimonials.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, &models.PersistenceError{Op: "count testimonials", Err: err}
	}
	return events, contacts, testimonials, nil
}
