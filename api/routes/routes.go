package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/config"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/handlers"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/middleware"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	EventHandler       *handlers.EventHandler
	ContactHandler     *handlers.ContactHandler
	TestimonialHandler *handlers.TestimonialHandler
	AdminHandler       *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/status", deps.AdminHandler.GetStatus)

		events := api.Group("/events")
		{
			events.GET("", deps.EventHandler.GetEvents)
			events.GET("/stats/overview", deps.EventHandler.GetEventStats)
			events.GET("/:id", deps.EventHandler.GetEventByID)
			events.POST("", deps.EventHandler.RegisterEvent)
			events.PUT("/:id/status", deps.EventHandler.UpdateEventStatus)
		}

		contact := api.Group("/contact")
		{
			contact.GET("", deps.ContactHandler.GetContacts)
			contact.GET("/stats/overview", deps.ContactHandler.GetContactStats)
			contact.GET("/:id", deps.ContactHandler.GetContactByID)
			contact.POST("", deps.ContactHandler.SubmitContact)
			contact.PUT("/:id/status", deps.ContactHandler.UpdateContactStatus)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", deps.TestimonialHandler.GetTestimonials)
			testimonials.GET("/featured", deps.TestimonialHandler.GetFeaturedTestimonials)
			testimonials.GET("/stats/overview", deps.TestimonialHandler.GetTestimonialStats)
			testimonials.POST("", deps.TestimonialHandler.SubmitTestimonial)
			testimonials.PUT("/:id/approve", deps.TestimonialHandler.ApproveTestimonial)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/export", deps.AdminHandler.ExportData)
			admin.POST("/import", deps.AdminHandler.ImportData)
			admin.DELETE("/clear", deps.AdminHandler.ClearData)
		}
	}

	return router
}
