package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

func TestNewResendClientDisabledWithoutKey(t *testing.T) {
	if c := NewResendClient("", "from@example.com", "Coral", "ops@example.com", time.UTC); c != nil {
		t.Fatalf("expected nil client without api key")
	}
	if c := NewResendClient("re_123", "from@example.com", "Coral", "", time.UTC); c != nil {
		t.Fatalf("expected nil client without notify address")
	}
}

func TestSendLeadNotification(t *testing.T) {
	var got resendSendRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	c := NewResendClient("re_123", "onboarding@resend.dev", "Coral Website", "contact@coral-group.be", time.UTC)
	if c == nil {
		t.Fatalf("expected client")
	}
	c.endpoint = srv.URL

	lead := models.Lead{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "Kitchen",
	}
	id, err := c.SendLeadNotification(context.Background(), lead)
	if err != nil {
		t.Fatalf("SendLeadNotification error: %v", err)
	}
	if id != "msg_1" {
		t.Fatalf("unexpected message id %q", id)
	}
	if gotAuth != "Bearer re_123" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if got.From != "Coral Website <onboarding@resend.dev>" {
		t.Fatalf("unexpected from %q", got.From)
	}
	if len(got.To) != 1 || got.To[0] != "contact@coral-group.be" {
		t.Fatalf("unexpected recipients %v", got.To)
	}
	if got.Subject != "New Lead: Jane Doe - Kitchen" {
		t.Fatalf("unexpected subject %q", got.Subject)
	}
	if !strings.Contains(got.HTML, "jane@example.com") {
		t.Fatalf("html missing lead email: %s", got.HTML)
	}
}

func TestSendBookingNotificationErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewResendClient("re_bad", "onboarding@resend.dev", "Coral Website", "contact@coral-group.be", time.UTC)
	c.endpoint = srv.URL

	booking := models.Booking{
		ClientName:  "Acme Co",
		ClientEmail: "a@acme.com",
		ServiceType: "Bathroom",
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "09:00 AM",
	}
	if _, err := c.SendBookingNotification(context.Background(), booking); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestBuildLeadNotificationHTMLDefaults(t *testing.T) {
	html, err := buildLeadNotificationHTML(models.Lead{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "Kitchen",
	})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.Contains(html, "N/A") {
		t.Fatalf("missing phone fallback: %s", html)
	}
	if !strings.Contains(html, "No message provided.") {
		t.Fatalf("missing message fallback: %s", html)
	}
}

func TestBuildBookingNotificationHTML(t *testing.T) {
	booking := models.Booking{
		ClientName:  "Acme Co",
		ClientEmail: "a@acme.com",
		ServiceType: "Addition",
		TimeSlot:    "03:00 PM",
	}
	html, err := buildBookingNotificationHTML(booking, "15/09/2026")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	for _, want := range []string{"Acme Co", "a@acme.com", "Addition", "15/09/2026", "03:00 PM"} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q: %s", want, html)
		}
	}
}
