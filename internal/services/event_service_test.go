package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/filestore"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()
	store, err := filestore.NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewEventService(filestore.NewEventRepository(store))
}

func registrationRequest() *models.CreateEventRequest {
	return &models.CreateEventRequest{
		Name:      "  Asha Rao  ",
		Mobile:    "+919876543210",
		Email:     "Asha@Example.COM",
		EventType: "Wedding",
		EventDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Venue:     "Lakeside Hall",
	}
}

func TestRegisterEventDefaults(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.RegisterEvent(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("RegisterEvent: %v", err)
	}

	if event.Status != models.EventStatusPending {
		t.Errorf("status = %q, want pending", event.Status)
	}
	if event.ID == "" {
		t.Error("event id not assigned")
	}
	if event.Name != "Asha Rao" {
		t.Errorf("name not trimmed: %q", event.Name)
	}
	if event.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", event.Email)
	}
	if event.Notes == nil || event.Images == nil {
		t.Error("notes/images should be empty slices, not nil")
	}
}

func TestRegisterEventEmptyTypeDefaultsToOther(t *testing.T) {
	svc := newEventService(t)

	req := registrationRequest()
	req.EventType = "   "
	event, err := svc.RegisterEvent(context.Background(), req)
	if err != nil {
		t.Fatalf("RegisterEvent: %v", err)
	}
	if event.EventType != "Other" {
		t.Errorf("eventType = %q, want Other", event.EventType)
	}
}

func TestRegisterEventUnknownTypeRejected(t *testing.T) {
	svc := newEventService(t)

	req := registrationRequest()
	req.EventType = "Space Launch"
	_, err := svc.RegisterEvent(context.Background(), req)

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestRegisterEventMissingVenueNamesField(t *testing.T) {
	svc := newEventService(t)

	req := registrationRequest()
	req.Venue = ""
	_, err := svc.RegisterEvent(context.Background(), req)

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want validation error, got %v", err)
	}
	found := false
	for _, f := range verr.Fields {
		if f.Field == "venue" {
			found = true
		}
	}
	if !found {
		t.Fatalf("violation does not name venue: %+v", verr.Fields)
	}
}

func TestUpdateEventStatusRejectsUnknownStatus(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.RegisterEvent(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("RegisterEvent: %v", err)
	}

	_, err = svc.UpdateEventStatus(context.Background(), event.ID, &models.UpdateEventStatusRequest{Status: "archived"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want validation error for unknown status, got %v", err)
	}
}

func TestUpdateEventStatusNoteAuthorDefaultsToAdmin(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.RegisterEvent(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("RegisterEvent: %v", err)
	}

	updated, err := svc.UpdateEventStatus(context.Background(), event.ID, &models.UpdateEventStatusRequest{
		Status: "confirmed",
		Notes:  "deposit received",
	})
	if err != nil {
		t.Fatalf("UpdateEventStatus: %v", err)
	}
	if len(updated.Notes) != 1 || updated.Notes[0].CreatedBy != "admin" {
		t.Fatalf("note author not defaulted: %+v", updated.Notes)
	}
}
