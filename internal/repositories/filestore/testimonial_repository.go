package filestore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// Compile-time check that TestimonialRepository implements the interface
var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)

// TestimonialRepository handles file-backed storage for testimonials
type TestimonialRepository struct {
	store *Store
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(store *Store) *TestimonialRepository {
	return &TestimonialRepository{store: store}
}

// Create inserts a new testimonial, always unapproved. The store keeps
// its own copy; the caller's record never becomes a shared reference.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial.ID = uuid.NewString()
	testimonial.CreatedAt = time.Now()
	s.testimonials = append(s.testimonials, testimonial.Clone())
	return s.persist(testimonialsFile, s.testimonials)
}

// FindAll returns one page of approved testimonials plus the total
// match count. Featured records sort first, then higher ratings, then
// newer submissions.
func (r *TestimonialRepository) FindAll(ctx context.Context, query repositories.TestimonialQuery) ([]*models.Testimonial, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		if !t.IsApproved {
			continue
		}
		if query.EventType != "" && t.EventType != query.EventType {
			continue
		}
		if query.FeaturedOnly && !t.IsFeatured {
			continue
		}
		matched = append(matched, t)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := int64(len(matched))
	lo, hi := pageSlice(len(matched), query.Page, query.Limit)
	page := make([]*models.Testimonial, hi-lo)
	for i, t := range matched[lo:hi] {
		page[i] = t.Clone()
	}
	return page, total, nil
}

// FindFeatured returns approved and featured testimonials only, by
// rating then recency, capped at limit.
func (r *TestimonialRepository) FindFeatured(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]*models.Testimonial, 0, limit)
	for _, t := range s.testimonials {
		if t.IsApproved && t.IsFeatured {
			featured = append(featured, t)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		if featured[i].Rating != featured[j].Rating {
			return featured[i].Rating > featured[j].Rating
		}
		return featured[i].CreatedAt.After(featured[j].CreatedAt)
	})

	if len(featured) > limit {
		featured = featured[:limit]
	}
	out := make([]*models.Testimonial, len(featured))
	for i, t := range featured {
		out[i] = t.Clone()
	}
	return out, nil
}

// UpdateApproval flips the moderation flags; nil leaves a flag
// unchanged.
func (r *TestimonialRepository) UpdateApproval(ctx context.Context, id string, isApproved, isFeatured *bool) (*models.Testimonial, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.testimonials {
		if t.ID != id {
			continue
		}
		if isApproved != nil {
			t.IsApproved = *isApproved
		}
		if isFeatured != nil {
			t.IsFeatured = *isFeatured
		}
		if err := s.persist(testimonialsFile, s.testimonials); err != nil {
			return nil, err
		}
		return t.Clone(), nil
	}
	return nil, models.ErrNotFound
}

// Stats computes the testimonial overview aggregates. Rating figures
// cover approved testimonials only.
func (r *TestimonialRepository) Stats(ctx context.Context) (*models.TestimonialStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.TestimonialStats{
		TotalTestimonials:  int64(len(s.testimonials)),
		RatingDistribution: []models.RatingCount{},
		EventTypeStats:     []models.EventTypeRating{},
	}

	ratingCounts := map[int]int64{}
	type typeAgg struct {
		count int64
		sum   int64
	}
	typeAggs := map[string]*typeAgg{}
	var ratingSum int64

	for _, t := range s.testimonials {
		if t.IsFeatured {
			stats.FeaturedTestimonials++
		}
		if !t.IsApproved {
			stats.PendingTestimonials++
			continue
		}
		stats.ApprovedTestimonials++
		ratingSum += int64(t.Rating)
		ratingCounts[t.Rating]++
		agg := typeAggs[t.EventType]
		if agg == nil {
			agg = &typeAgg{}
			typeAggs[t.EventType] = agg
		}
		agg.count++
		agg.sum += int64(t.Rating)
	}

	if stats.ApprovedTestimonials > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.ApprovedTestimonials)
	}

	for rating, n := range ratingCounts {
		stats.RatingDistribution = append(stats.RatingDistribution, models.RatingCount{Rating: rating, Count: n})
	}
	sort.SliceStable(stats.RatingDistribution, func(i, j int) bool {
		return stats.RatingDistribution[i].Rating > stats.RatingDistribution[j].Rating
	})

	for eventType, agg := range typeAggs {
		stats.EventTypeStats = append(stats.EventTypeStats, models.EventTypeRating{
			EventType: eventType,
			Count:     agg.count,
			AvgRating: float64(agg.sum) / float64(agg.count),
		})
	}
	sort.SliceStable(stats.EventTypeStats, func(i, j int) bool {
		if stats.EventTypeStats[i].Count != stats.EventTypeStats[j].Count {
			return stats.EventTypeStats[i].Count > stats.EventTypeStats[j].Count
		}
		return stats.EventTypeStats[i].EventType < stats.EventTypeStats[j].EventType
	})

	return stats, nil
}
