package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
)

// TestimonialHandler handles testimonial HTTP requests
type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

// GetTestimonials handles GET /api/testimonials
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	page, limit := listParams(c)

	query := repositories.TestimonialQuery{
		Page:         page,
		Limit:        limit,
		EventType:    c.Query("eventType"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	testimonials, total, err := h.testimonialService.GetTestimonials(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Error fetching testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       testimonials,
		"pagination": pagination(page, limit, total),
	})
}

// GetFeaturedTestimonials handles GET /api/testimonials/featured
func (h *TestimonialHandler) GetFeaturedTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetFeaturedTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching featured testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    testimonials,
	})
}

// SubmitTestimonial handles POST /api/testimonials
func (h *TestimonialHandler) SubmitTestimonial(c *gin.Context) {
	var req models.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to submit testimonial",
			"error":   err.Error(),
		})
		return
	}

	testimonial, err := h.testimonialService.SubmitTestimonial(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to submit testimonial")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your testimonial! It will be reviewed and published soon.",
		"data": gin.H{
			"id":     testimonial.ID,
			"name":   testimonial.Name,
			"rating": testimonial.Rating,
			"status": "pending_approval",
		},
	})
}

// ApproveTestimonial handles PUT /api/testimonials/:id/approve
func (h *TestimonialHandler) ApproveTestimonial(c *gin.Context) {
	var req models.ApproveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error updating testimonial",
			"error":   err.Error(),
		})
		return
	}

	testimonial, err := h.testimonialService.ApproveTestimonial(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Testimonial not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial updated successfully",
		"data":    testimonial,
	})
}

// GetTestimonialStats handles GET /api/testimonials/stats/overview
func (h *TestimonialHandler) GetTestimonialStats(c *gin.Context) {
	stats, err := h.testimonialService.GetTestimonialStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching testimonial statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
