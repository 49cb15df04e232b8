package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
)

// EventHandler handles event registration HTTP requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// GetEvents handles GET /api/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	page, limit := listParams(c)

	query := repositories.EventQuery{
		Page:      page,
		Limit:     limit,
		Status:    c.Query("status"),
		EventType: c.Query("eventType"),
		SortBy:    c.DefaultQuery("sortBy", "eventDate"),
	}

	events, total, err := h.eventService.GetEvents(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Error fetching events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       events,
		"pagination": pagination(page, limit, total),
	})
}

// GetEventByID handles GET /api/events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    event,
	})
}

// RegisterEvent handles POST /api/events
func (h *EventHandler) RegisterEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Event registration failed",
			"error":   err.Error(),
		})
		return
	}

	event, err := h.eventService.RegisterEvent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Event registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event registration successful! We will contact you soon.",
		"data": gin.H{
			"id":        event.ID,
			"name":      event.Name,
			"eventType": event.EventType,
			"eventDate": event.EventDate,
			"status":    event.Status,
		},
	})
}

// UpdateEventStatus handles PUT /api/events/:id/status
func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	var req models.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error updating event status",
			"error":   err.Error(),
		})
		return
	}

	event, err := h.eventService.UpdateEventStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Error updating event status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event status updated successfully",
		"data":    event,
	})
}

// GetEventStats handles GET /api/events/stats/overview
func (h *EventHandler) GetEventStats(c *gin.Context) {
	stats, err := h.eventService.GetEventStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
