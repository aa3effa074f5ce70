package bookings

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/validation"
)

func newTestHandler(repo *fakeRepo) *Handler {
	svc := NewService(repo, time.UTC, nil)
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return NewHandler(svc, validation.New(), log)
}

func TestHandlerCreate(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo)

	body := `{"clientName":"Acme Co","clientEmail":"a@acme.com","serviceType":"Kitchen","date":"2026-09-15T00:00:00Z","timeSlot":"09:00 AM"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var booking models.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected PENDING, got %q", booking.Status)
	}
	if booking.Date.Format(time.RFC3339) != "2026-09-15T00:00:00Z" {
		t.Fatalf("date did not round-trip: %v", booking.Date)
	}
}

func TestHandlerCreateRejectsUnknownSlot(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo)

	body := `{"clientName":"Acme Co","clientEmail":"a@acme.com","serviceType":"Kitchen","date":"2026-09-15T00:00:00Z","timeSlot":"midnight"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("validation failures must not reach the repository")
	}
}

func TestHandlerSlots(t *testing.T) {
	h := newTestHandler(&fakeRepo{})

	rec := httptest.NewRecorder()
	h.Slots(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/slots", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Dates     []string `json:"dates"`
		TimeSlots []string `json:"timeSlots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Dates) != UpcomingWindowDays {
		t.Fatalf("expected %d dates, got %d", UpcomingWindowDays, len(resp.Dates))
	}
	if len(resp.TimeSlots) != len(TimeSlots) {
		t.Fatalf("expected %d slots, got %d", len(TimeSlots), len(resp.TimeSlots))
	}
}
