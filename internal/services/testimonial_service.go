package services

import (
	"context"
	"strings"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/validation"
)

// FeaturedLimit caps the featured testimonials listing.
const FeaturedLimit = 6

// TestimonialService handles testimonial business logic
type TestimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
	}
}

// SubmitTestimonial validates a testimonial submission and stores it
// unapproved.
func (s *TestimonialService) SubmitTestimonial(ctx context.Context, req *models.CreateTestimonialRequest) (*models.Testimonial, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.EventType = strings.TrimSpace(req.EventType)
	req.Testimonial = strings.TrimSpace(req.Testimonial)

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	eventDate, err := validation.ParseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	testimonial := models.NewTestimonial()
	testimonial.Name = req.Name
	testimonial.Email = req.Email
	testimonial.EventType = req.EventType
	testimonial.Rating = req.Rating
	testimonial.Testimonial = req.Testimonial
	testimonial.EventDate = eventDate

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// GetTestimonials retrieves approved testimonials with pagination.
// Page and Limit arrive normalized by the HTTP layer.
func (s *TestimonialService) GetTestimonials(ctx context.Context, query repositories.TestimonialQuery) ([]*models.Testimonial, int64, error) {
	return s.testimonialRepo.FindAll(ctx, query)
}

// GetFeaturedTestimonials retrieves the featured testimonials
func (s *TestimonialService) GetFeaturedTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.FindFeatured(ctx, FeaturedLimit)
}

// ApproveTestimonial applies an administrative approval update.
func (s *TestimonialService) ApproveTestimonial(ctx context.Context, id string, req *models.ApproveTestimonialRequest) (*models.Testimonial, error) {
	return s.testimonialRepo.UpdateApproval(ctx, id, req.IsApproved, req.IsFeatured)
}

// GetTestimonialStats retrieves the testimonial overview statistics
func (s *TestimonialService) GetTestimonialStats(ctx context.Context) (*models.TestimonialStats, error) {
	return s.testimonialRepo.Stats(ctx)
}
