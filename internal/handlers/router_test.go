package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siddharthgadapkar-wq/ideal-memory/api/routes"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/config"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/handlers"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/filestore"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := filestore.NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	deps := routes.HandlerDependencies{
		EventHandler:       handlers.NewEventHandler(services.NewEventService(filestore.NewEventRepository(store))),
		ContactHandler:     handlers.NewContactHandler(services.NewContactService(filestore.NewContactRepository(store))),
		TestimonialHandler: handlers.NewTestimonialHandler(services.NewTestimonialService(filestore.NewTestimonialRepository(store))),
		AdminHandler:       handlers.NewAdminHandler(services.NewAdminService(store), "memory"),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{AllowedHosts: []string{"localhost:3000"}},
	}
	return routes.SetupRouter(cfg, deps)
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func eventPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":      "Asha Rao",
		"mobile":    "+919876543210",
		"email":     "asha@example.com",
		"eventType": "Wedding",
		"eventDate": time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"venue":     "Lakeside Hall",
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if decode(t, w)["status"] != "ok" {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

func TestRegisterEvent(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/events", eventPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	data, _ := body["data"].(map[string]interface{})
	if data["status"] != "pending" {
		t.Errorf("new registration status = %v, want pending", data["status"])
	}
	if data["id"] == "" || data["id"] == nil {
		t.Error("response data missing id")
	}
}

func TestRegisterEventMissingVenue(t *testing.T) {
	router := newTestRouter(t)

	payload := eventPayload()
	delete(payload, "venue")
	w := perform(t, router, http.MethodPost, "/api/events", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	violations, _ := body["errors"].([]interface{})
	found := false
	for _, v := range violations {
		if field, ok := v.(map[string]interface{}); ok && field["field"] == "venue" {
			found = true
		}
	}
	if !found {
		t.Fatalf("violations do not name venue: %s", w.Body.String())
	}
}

func TestSubmitTestimonialRatingOutOfRange(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/testimonials", map[string]interface{}{
		"name":        "Ravi",
		"eventType":   "Catering",
		"rating":      6,
		"testimonial": "Excellent.",
		"eventDate":   time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", w.Code, w.Body.String())
	}
}

func TestTestimonialModerationFlow(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/testimonials", map[string]interface{}{
		"name":        "Ravi",
		"eventType":   "Catering",
		"rating":      5,
		"testimonial": "Excellent.",
		"eventDate":   time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d\n%s", w.Code, w.Body.String())
	}
	data, _ := decode(t, w)["data"].(map[string]interface{})
	if data["status"] != "pending_approval" {
		t.Fatalf("submit status field = %v", data["status"])
	}
	id, _ := data["id"].(string)

	// Unapproved submissions stay hidden from the public listing.
	w = perform(t, router, http.MethodGet, "/api/testimonials", nil)
	if list, _ := decode(t, w)["data"].([]interface{}); len(list) != 0 {
		t.Fatalf("unapproved testimonial visible: %s", w.Body.String())
	}

	w = perform(t, router, http.MethodPut, "/api/testimonials/"+id+"/approve", map[string]interface{}{
		"isApproved": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d\n%s", w.Code, w.Body.String())
	}

	w = perform(t, router, http.MethodGet, "/api/testimonials", nil)
	if list, _ := decode(t, w)["data"].([]interface{}); len(list) != 1 {
		t.Fatalf("approved testimonial not listed: %s", w.Body.String())
	}
}

func TestFeaturedTestimonialsEmptyList(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/api/testimonials/featured", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	list, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("data is not a JSON array: %s", w.Body.String())
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}
}

func TestGetEventNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/api/events/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404\n%s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
}

func TestEventListPaginationEnvelope(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 3; i++ {
		payload := eventPayload()
		payload["name"] = fmt.Sprintf("client %d", i)
		if w := perform(t, router, http.MethodPost, "/api/events", payload); w.Code != http.StatusCreated {
			t.Fatalf("seed event %d: status %d", i, w.Code)
		}
	}

	w := perform(t, router, http.MethodGet, "/api/events?page=1&limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decode(t, w)
	list, _ := body["data"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("page size = %d, want 2", len(list))
	}
	p, _ := body["pagination"].(map[string]interface{})
	if p["current"] != float64(1) || p["pages"] != float64(2) || p["total"] != float64(3) {
		t.Fatalf("pagination envelope wrong: %v", p)
	}
}

func TestEventListNormalizesPageParams(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(t, router, http.MethodPost, "/api/events", eventPayload()); w.Code != http.StatusCreated {
		t.Fatalf("seed event: status %d", w.Code)
	}

	w := perform(t, router, http.MethodGet, "/api/events?page=0&limit=-3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	list, _ := body["data"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("data length = %d, want 1", len(list))
	}
	p, _ := body["pagination"].(map[string]interface{})
	if p["current"] != float64(1) || p["pages"] != float64(1) {
		t.Fatalf("envelope not normalized: %v", p)
	}
}

func TestGetContactByID(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Priya",
		"email":   "priya@example.com",
		"message": "Do you cater on weekends?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit contact status = %d\n%s", w.Code, w.Body.String())
	}
	data, _ := decode(t, w)["data"].(map[string]interface{})
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("submit response missing id: %s", w.Body.String())
	}

	w = perform(t, router, http.MethodGet, "/api/contact/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d\n%s", w.Code, w.Body.String())
	}
	got, _ := decode(t, w)["data"].(map[string]interface{})
	if got["name"] != "Priya" || got["status"] != "new" {
		t.Fatalf("fetched contact wrong: %v", got)
	}

	if w = perform(t, router, http.MethodGet, "/api/contact/no-such-id", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", w.Code)
	}
}

func TestContactSubmissionAndStats(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Priya",
		"email":   "priya@example.com",
		"message": "Do you cater on weekends?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit contact status = %d\n%s", w.Code, w.Body.String())
	}

	w = perform(t, router, http.MethodGet, "/api/contact/stats/overview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	data, _ := decode(t, w)["data"].(map[string]interface{})
	if data["totalMessages"] != float64(1) || data["newMessages"] != float64(1) {
		t.Fatalf("stats wrong: %v", data)
	}
}

func TestAdminExportClearStatus(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(t, router, http.MethodPost, "/api/events", eventPayload()); w.Code != http.StatusCreated {
		t.Fatalf("seed event: status %d", w.Code)
	}

	w := perform(t, router, http.MethodGet, "/api/admin/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	snapshot, _ := decode(t, w)["data"].(map[string]interface{})
	if events, _ := snapshot["events"].([]interface{}); len(events) != 1 {
		t.Fatalf("export events = %v", snapshot["events"])
	}

	if w := perform(t, router, http.MethodDelete, "/api/admin/clear", nil); w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = perform(t, router, http.MethodGet, "/api/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d", w.Code)
	}
	data, _ := decode(t, w)["data"].(map[string]interface{})
	if data["events"] != float64(0) || data["mode"] != "memory" {
		t.Fatalf("status data wrong: %v", data)
	}
}
