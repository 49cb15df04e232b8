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

// Compile-time check that ContactRepository implements the interface
var _ repositories.ContactRepository = (*ContactRepository)(nil)

// ContactRepository handles MongoDB operations for contact messages
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contacts"),
	}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, contact); err != nil {
		return &models.PersistenceError{Op: "insert contact", Err: err}
	}
	return nil
}

// FindByID finds a contact message by id
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "find contact", Err: err}
	}
	return &contact, nil
}

// FindAll finds contact messages matching the query, newest first
func (r *ContactRepository) FindAll(ctx context.Context, query repositories.ContactQuery) ([]*models.Contact, int64, error) {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Priority != "" {
		filter["priority"] = query.Priority
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "count contacts", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "find contacts", Err: err}
	}
	defer cursor.Close(ctx)

	contacts := []*models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, &models.PersistenceError{Op: "decode contacts", Err: err}
	}
	return contacts, total, nil
}

// UpdateStatus updates status and optionally priority and response.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus, priority models.ContactPriority, response *models.ContactResponse) (*models.Contact, error) {
	set := bson.M{"status": status}
	if priority != "" {
		set["priority"] = priority
	}
	if response != nil {
		set["response"] = response
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var contact models.Contact
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "update contact status", Err: err}
	}
	return &contact, nil
}

// Stats computes the contact overview aggregates.
func (r *ContactRepository) Stats(ctx context.Context) (*models.ContactStats, error) {
	stats := &models.ContactStats{
		PriorityStats: []models.PriorityCount{},
		DailyStats:    []models.DailyCount{},
	}

	var err error
	if stats.TotalMessages, err = r.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, &models.PersistenceError{Op: "count contacts", Err: err}
	}
	if stats.NewMessages, err = r.collection.CountDocuments(ctx, bson.M{"status": models.ContactStatusNew}); err != nil {
		return nil, &models.PersistenceError{Op: "count new contacts", Err: err}
	}
	if stats.ReadMessages, err = r.collection.CountDocuments(ctx, bson.M{"status": models.ContactStatusRead}); err != nil {
		return nil, &models.PersistenceError{Op: "count read contacts", Err: err}
	}
	if stats.RepliedMessages, err = r.collection.CountDocuments(ctx, bson.M{"status": models.ContactStatusReplied}); err != nil {
		return nil, &models.PersistenceError{Op: "count replied contacts", Err: err}
	}

	priorityPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$priority",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	if err := r.aggregate(ctx, priorityPipeline, &stats.PriorityStats); err != nil {
		return nil, err
	}

	dailyPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
				"day":   bson.M{"$dayOfMonth": "$createdAt"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: -1},
			{Key: "_id.month", Value: -1},
			{Key: "_id.day", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: 30}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"day":   "$_id.day",
			"count": 1,
		}}},
	}
	if err := r.aggregate(ctx, dailyPipeline, &stats.DailyStats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *ContactRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return &models.PersistenceError{Op: "aggregate contacts", Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return &models.PersistenceError{Op: "decode contact aggregates", Err: err}
	}
	return nil
}
