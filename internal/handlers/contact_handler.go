package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
)

// ContactHandler handles contact message HTTP requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// GetContacts handles GET /api/contact
func (h *ContactHandler) GetContacts(c *gin.Context) {
	page, limit := listParams(c)

	query := repositories.ContactQuery{
		Page:     page,
		Limit:    limit,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	contacts, total, err := h.contactService.GetContacts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Error fetching contact messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       contacts,
		"pagination": pagination(page, limit, total),
	})
}

// GetContactByID handles GET /api/contact/:id
func (h *ContactHandler) GetContactByID(c *gin.Context) {
	contact, err := h.contactService.GetContactByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Contact message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contact,
	})
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	contact, err := h.contactService.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for contacting us! We will get back to you soon.",
		"data": gin.H{
			"id":      contact.ID,
			"name":    contact.Name,
			"subject": contact.Subject,
			"status":  contact.Status,
		},
	})
}

// UpdateContactStatus handles PUT /api/contact/:id/status
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error updating contact status",
			"error":   err.Error(),
		})
		return
	}

	contact, err := h.contactService.UpdateContactStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Error updating contact status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact status updated successfully",
		"data":    contact,
	})
}

// GetContactStats handles GET /api/contact/stats/overview
func (h *ContactHandler) GetContactStats(c *gin.Context) {
	stats, err := h.contactService.GetContactStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching contact statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
