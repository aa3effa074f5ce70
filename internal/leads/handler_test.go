package leads

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/validation"
)

func newTestHandler(repo *fakeRepo, notifier Notifier) *Handler {
	svc := NewService(repo, time.UTC, notifier)
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return NewHandler(svc, validation.New(), log)
}

func TestHandlerCreate(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo, nil)

	body := `{"name":"Jane Doe","email":"jane@example.com","service":"Kitchen"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var lead models.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &lead); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if lead.ID == "" || lead.Status != models.LeadStatusNew {
		t.Fatalf("unexpected lead %+v", lead)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected lead persisted")
	}
}

func TestHandlerCreateMissingFields(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"name":"Jane Doe"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.leads) != 0 {
		t.Fatalf("validation failures must not reach the repository")
	}

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Details["Email"] == "" || resp.Details["Service"] == "" {
		t.Fatalf("expected field-level details, got %v", resp.Details)
	}
}

func TestHandlerCreateSucceedsWhenNotifierFails(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("provider down")}
	h := newTestHandler(repo, notifier)

	body := `{"name":"Jane Doe","email":"jane@example.com","service":"Kitchen"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("notification failure must not fail the request: got %d", rec.Code)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected the send to be attempted before responding")
	}
}

func TestHandlerList(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo, nil)

	for _, body := range []string{
		`{"name":"First","email":"first@example.com","service":"Kitchen"}`,
		`{"name":"Second","email":"second@example.com","service":"Bathroom"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
		h.Create(httptest.NewRecorder(), req)
	}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []models.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(items))
	}
}
