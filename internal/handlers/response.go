package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/utils"
)

// listParams parses and normalizes the page/limit query parameters.
// This is the single place they are clamped; the envelope and the
// storage query both use the values returned here.
func listParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return utils.ClampPage(page), utils.ClampLimit(limit)
}

// pagination is the listing envelope section.
func pagination(page, limit int, total int64) gin.H {
	return gin.H{
		"current": page,
		"pages":   utils.TotalPages(total, limit),
		"total":   total,
	}
}

// respondError flattens an error into the uniform failure envelope:
// validation errors become 400 with per-field messages, unknown ids
// 404, storage failures 500. Raw persistence details are withheld in
// release mode.
func respondError(c *gin.Context, err error, message string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": message,
			"error":   verr.Error(),
			"errors":  verr.Fields,
		})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": message,
		})
		return
	}

	var perr *models.PersistenceError
	if errors.As(err, &perr) {
		log.Error().Err(perr).Msg("persistence failure")
		body := gin.H{"success": false, "message": message}
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = perr.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	log.Error().Err(err).Msg("unexpected failure")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
	})
}
