package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siddharthgadapkar-wq/ideal-memory/api/routes"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/config"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/handlers"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/filestore"
	mongorepo "github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/mongodb"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
	"github.com/siddharthgadapkar-wq/ideal-memory/pkg/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// A configured Mongo URI selects the document-database store;
	// otherwise the flat-file store is used (in-memory when no data
	// directory is configured).
	var (
		eventRepo       repositories.EventRepository
		contactRepo     repositories.ContactRepository
		testimonialRepo repositories.TestimonialRepository
		adminStore      repositories.AdminStore
		fileStore       *filestore.Store
		storageMode     string
	)

	if cfg.MongoDB.URI != "" {
		client, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("error disconnecting from MongoDB")
			}
		}()

		db := client.Database(cfg.MongoDB.Database)
		eventRepo = mongorepo.NewEventRepository(db)
		contactRepo = mongorepo.NewContactRepository(db)
		testimonialRepo = mongorepo.NewTestimonialRepository(db)
		adminStore = mongorepo.NewAdminStore(db)
		storageMode = "mongodb"
	} else {
		fileStore, err = filestore.NewStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize file store")
		}
		eventRepo = filestore.NewEventRepository(fileStore)
		contactRepo = filestore.NewContactRepository(fileStore)
		testimonialRepo = filestore.NewTestimonialRepository(fileStore)
		adminStore = fileStore
		storageMode = "persistent"
		if cfg.Storage.DataDir == "" {
			storageMode = "memory"
		}
	}

	eventService := services.NewEventService(eventRepo)
	contactService := services.NewContactService(contactRepo)
	testimonialService := services.NewTestimonialService(testimonialRepo)
	adminService := services.NewAdminService(adminStore)

	handlerDeps := routes.HandlerDependencies{
		EventHandler:       handlers.NewEventHandler(eventService),
		ContactHandler:     handlers.NewContactHandler(contactService),
		TestimonialHandler: handlers.NewTestimonialHandler(testimonialService),
		AdminHandler:       handlers.NewAdminHandler(adminService, storageMode),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Info().Str("port", cfg.Server.Port).Str("storage", storageMode).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if fileStore != nil {
		if err := fileStore.Close(); err != nil {
			log.Error().Err(err).Msg("failed to flush store on shutdown")
		}
	}

	log.Info().Msg("server exiting")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
