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

// Compile-time check that TestimonialRepository implements the interface
var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)

// TestimonialRepository handles MongoDB operations for testimonials
type TestimonialRepository struct {
	collection *mongo.Collection
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{
		collection: db.Collection("testimonials"),
	}
}

// Create inserts a new testimonial, always unapproved.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.ID = uuid.NewString()
	testimonial.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, testimonial); err != nil {
		return &models.PersistenceError{Op: "insert testimonial", Err: err}
	}
	return nil
}

// FindAll finds approved testimonials matching the query
func (r *TestimonialRepository) FindAll(ctx context.Context, query repositories.TestimonialQuery) ([]*models.Testimonial, int64, error) {
	filter := bson.M{"isApproved": true}
	if query.EventType != "" {
		filter["eventType"] = query.EventType
	}
	if query.FeaturedOnly {
		filter["isFeatured"] = true
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "count testimonials", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit)).
		SetSort(bson.D{
			{Key: "isFeatured", Value: -1},
			{Key: "rating", Value: -1},
			{Key: "createdAt", Value: -1},
		})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, &models.PersistenceError{Op: "find testimonials", Err: err}
	}
	defer cursor.Close(ctx)

	testimonials := []*models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, 0, &models.PersistenceError{Op: "decode testimonials", Err: err}
	}
	return testimonials, total, nil
}

// FindFeatured returns approved and featured testimonials only.
func (r *TestimonialRepository) FindFeatured(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{
			{Key: "rating", Value: -1},
			{Key: "createdAt", Value: -1},
		})

	cursor, err := r.collection.Find(ctx, bson.M{"isApproved": true, "isFeatured": true}, opts)
	if err != nil {
		return nil, &models.PersistenceError{Op: "find featured testimonials", Err: err}
	}
	defer cursor.Close(ctx)

	testimonials := []*models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, &models.PersistenceError{Op: "decode featured testimonials", Err: err}
	}
	return testimonials, nil
}

// UpdateApproval flips the moderation flags; nil leaves a flag
// unchanged.
func (r *TestimonialRepository) UpdateApproval(ctx context.Context, id string, isApproved, isFeatured *bool) (*models.Testimonial, error) {
	set := bson.M{}
	if isApproved != nil {
		set["isApproved"] = *isApproved
	}
	if isFeatured != nil {
		set["isFeatured"] = *isFeatured
	}

	filter := bson.M{"_id": id}
	var testimonial models.Testimonial

	if len(set) == 0 {
		// Nothing to change; behave as a plain fetch.
		err := r.collection.FindOne(ctx, filter).Decode(&testimonial)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, models.ErrNotFound
			}
			return nil, &models.PersistenceError{Op: "find testimonial", Err: err}
		}
		return &testimonial, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&testimonial)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "update testimonial approval", Err: err}
	}
	return &testimonial, nil
}

// Stats computes the testimonial overview aggregates. Rating figures
// cover approved testimonials only.
func (r *TestimonialRepository) Stats(ctx context.Context) (*models.TestimonialStats, error) {
	stats := &models.TestimonialStats{
		RatingDistribution: []models.RatingCount{},
		EventTypeStats:     []models.EventTypeRating{},
	}

	var err error
	if stats.TotalTestimonials, err = r.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, &models.PersistenceError{Op: "count testimonials", Err: err}
	}
	if stats.ApprovedTestimonials, err = r.collection.CountDocuments(ctx, bson.M{"isApproved": true}); err != nil {
		return nil, &models.PersistenceError{Op: "count approved testimonials", Err: err}
	}
	if stats.PendingTestimonials, err = r.collection.CountDocuments(ctx, bson.M{"isApproved": false}); err != nil {
		return nil, &models.PersistenceError{Op: "count pending testimonials", Err: err}
	}
	if stats.FeaturedTestimonials, err = r.collection.CountDocuments(ctx, bson.M{"isFeatured": true}); err != nil {
		return nil, &models.PersistenceError{Op: "count featured testimonials", Err: err}
	}

	avgPipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isApproved": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"avgRating": bson.M{"$avg": "$rating"},
		}}},
	}
	var avgResults []struct {
		AvgRating float64 `bson:"avgRating"`
	}
	if err := r.aggregate(ctx, avgPipeline, &avgResults); err != nil {
		return nil, err
	}
	if len(avgResults) > 0 {
		stats.AverageRating = avgResults[0].AvgRating
	}

	distributionPipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isApproved": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}
	if err := r.aggregate(ctx, distributionPipeline, &stats.RatingDistribution); err != nil {
		return nil, err
	}

	typesPipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isApproved": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       "$eventType",
			"count":     bson.M{"$sum": 1},
			"avgRating": bson.M{"$avg": "$rating"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	if err := r.aggregate(ctx, typesPipeline, &stats.EventTypeStats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *TestimonialRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return &models.PersistenceError{Op: "aggregate testimonials", Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return &models.PersistenceError{Op: "decode testimonial aggregates", Err: err}
	}
	return nil
}
