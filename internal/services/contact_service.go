package services

import (
	"context"
	"strings"
	"time"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/validation"
)

// ContactService handles contact message business logic
type ContactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// SubmitContact validates a contact form submission and stores it.
func (s *ContactService) SubmitContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	contact := models.NewContact()
	contact.Name = req.Name
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Subject = req.Subject
	contact.Message = req.Message
	if req.Priority != "" {
		contact.Priority = models.ContactPriority(req.Priority)
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetContacts retrieves contact messages with pagination and
// filtering. Page and Limit arrive normalized by the HTTP layer.
func (s *ContactService) GetContacts(ctx context.Context, query repositories.ContactQuery) ([]*models.Contact, int64, error) {
	return s.contactRepo.FindAll(ctx, query)
}

// GetContactByID retrieves a single contact message
func (s *ContactService) GetContactByID(ctx context.Context, id string) (*models.Contact, error) {
	return s.contactRepo.FindByID(ctx, id)
}

// UpdateContactStatus applies an administrative status change. A
// supplied response replaces any previous one.
func (s *ContactService) UpdateContactStatus(ctx context.Context, id string, req *models.UpdateContactStatusRequest) (*models.Contact, error) {
	req.Response = strings.TrimSpace(req.Response)

	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var response *models.ContactResponse
	if req.Response != "" {
		respondedBy := req.UserID
		if respondedBy == "" {
			respondedBy = "admin"
		}
		response = &models.ContactResponse{
			Content:     req.Response,
			RespondedAt: time.Now(),
			RespondedBy: respondedBy,
		}
	}

	return s.contactRepo.UpdateStatus(ctx, id, models.ContactStatus(req.Status), models.ContactPriority(req.Priority), response)
}

// GetContactStats retrieves the contact overview statistics
func (s *ContactService) GetContactStats(ctx context.Context) (*models.ContactStats, error) {
	return s.contactRepo.Stats(ctx)
}
