package services

import (
	"context"
	"strings"
	"time"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/validation"
)

// EventService handles event registration business logic
type EventService struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// RegisterEvent validates a registration submission and stores it.
// An empty eventType defaults to "Other"; an unknown one is rejected
// during validation.
func (s *EventService) RegisterEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.EventType = strings.TrimSpace(req.EventType)
	req.Venue = strings.TrimSpace(req.Venue)
	req.AdditionalInfo = strings.TrimSpace(req.AdditionalInfo)

	if req.EventType == "" {
		req.EventType = "Other"
	}

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	// Already checked by the futuredate rule.
	eventDate, err := validation.ParseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	event := models.NewEvent()
	event.Name = req.Name
	event.Mobile = req.Mobile
	event.Email = req.Email
	event.EventType = req.EventType
	event.EventDate = eventDate
	event.Venue = req.Venue
	event.GuestCount = req.GuestCount
	event.Budget = req.Budget
	event.AdditionalInfo = req.AdditionalInfo

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvents retrieves events with pagination and filtering. Page and
// Limit arrive normalized by the HTTP layer.
func (s *EventService) GetEvents(ctx context.Context, query repositories.EventQuery) ([]*models.Event, int64, error) {
	return s.eventRepo.FindAll(ctx, query)
}

// GetEventByID retrieves a single event
func (s *EventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// UpdateEventStatus applies an administrative status change, appending
// a note when one is supplied.
func (s *EventService) UpdateEventStatus(ctx context.Context, id string, req *models.UpdateEventStatusRequest) (*models.Event, error) {
	req.Notes = strings.TrimSpace(req.Notes)

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var note *models.Note
	if req.Notes != "" {
		createdBy := req.UserID
		if createdBy == "" {
			createdBy = "admin"
		}
		note = &models.Note{
			Content:   req.Notes,
			CreatedAt: time.Now(),
			CreatedBy: createdBy,
		}
	}

	return s.eventRepo.UpdateStatus(ctx, id, models.EventStatus(req.Status), note)
}

// GetEventStats retrieves the event overview statistics
func (s *EventService) GetEventStats(ctx context.Context) (*models.EventStats, error) {
	return s.eventRepo.Stats(ctx)
}
