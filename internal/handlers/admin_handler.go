package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
)

// AdminHandler handles whole-store administrative HTTP requests
type AdminHandler struct {
	adminService *services.AdminService
	storageMode  string
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *services.AdminService, storageMode string) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		storageMode:  storageMode,
	}
}

// ExportData handles GET /api/admin/export
func (h *AdminHandler) ExportData(c *gin.Context) {
	snapshot, err := h.adminService.ExportData(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snapshot,
	})
}

// ImportData handles POST /api/admin/import
func (h *AdminHandler) ImportData(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to import data",
			"error":   err.Error(),
		})
		return
	}

	if err := h.adminService.ImportData(c.Request.Context(), &req); err != nil {
		respondError(c, err, "Failed to import data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data imported successfully",
	})
}

// ClearData handles DELETE /api/admin/clear
func (h *AdminHandler) ClearData(c *gin.Context) {
	if err := h.adminService.ClearData(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to clear data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All data cleared successfully",
	})
}

// GetStatus handles GET /api/status
func (h *AdminHandler) GetStatus(c *gin.Context) {
	events, contacts, testimonials, err := h.adminService.GetCounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read store status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Server is running",
		"data": gin.H{
			"events":       events,
			"contacts":     contacts,
			"testimonials": testimonials,
			"mode":         h.storageMode,
		},
	})
}
