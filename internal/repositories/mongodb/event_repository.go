package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// Compile-time check that EventRepository implements the interface
var _ repositories.EventRepository = (*EventRepository)(nil)

// EventRepository handles MongoDB operations for event registrations
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

// Create inserts a new event registration
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return &models.PersistenceError{Op: "insert event", Err: err}
	}
	return nil
}

// FindByID finds an event by id
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "find event", Err: err}
	}
	return &event, nil
}

// FindAll finds events matching the query with pagination
func (r *EventRepository) FindAll(ctx context.Context, query repositories.EventQuery) ([]*models.Event, int64, error) {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.EventType != "" {
		filter["eventType"] = query.EventType
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "count events", Err: err}
	}

	sortField := "eventDate"
	switch query.SortBy {
	case "createdAt", "name", "status":
		sortField = query.SortBy
	}

	opts := options.Find().
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit)).
		SetSort(bson.D{{Key: sortField, Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "find events", Err: err}
	}
	defer cursor.Close(ctx)

	events := []*models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, &models.PersistenceError{Op: "decode events", Err: err}
	}
	return events, total, nil
}

// UpdateStatus sets the event status and optionally appends a note.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status models.EventStatus, note *models.Note) (*models.Event, error) {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	if note != nil {
		update["$push"] = bson.M{"notes": note}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "update event status", Err: err}
	}
	return &event, nil
}

// Stats computes the event overview aggregates.
func (r *EventRepository) Stats(ctx context.Context) (*models.EventStats, error) {
	stats := &models.EventStats{
		EventTypesStats: []models.EventTypeCount{},
		MonthlyStats:    []models.MonthlyCount{},
	}

	var err error
	if stats.TotalEvents, err = r.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, &models.PersistenceError{Op: "count events", Err: err}
	}
	if stats.PendingEvents, err = r.collection.CountDocuments(ctx, bson.M{"status": models.EventStatusPending}); err != nil {
		return nil, &models.PersistenceError{Op: "count pending events", Err: err}
	}
	if stats.ConfirmedEvents, err = r.collection.CountDocuments(ctx, bson.M{"status": models.EventStatusConfirmed}); err != nil {
		return nil, &models.PersistenceError{Op: "count confirmed events", Err: err}
	}
	if stats.CompletedEvents, err = r.collection.CountDocuments(ctx, bson.M{"status": models.EventStatusCompleted}); err != nil {
		return nil, &models.PersistenceError{Op: "count completed events", Err: err}
	}

	typesPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$eventType",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	if err := r.aggregate(ctx, typesPipeline, &stats.EventTypesStats); err != nil {
		return nil, err
	}

	monthlyPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$eventDate"},
				"month": bson.M{"$month": "$eventDate"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: -1},
			{Key: "_id.month", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: 12}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"count": 1,
		}}},
	}
	if err := r.aggregate(ctx, monthlyPipeline, &stats.MonthlyStats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *EventRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return &models.PersistenceError{Op: "aggregate events", Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return &models.PersistenceError{Op: "decode event aggregates", Err: err}
	}
	return nil
}
