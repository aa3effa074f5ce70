package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

type fakeRepo struct {
	leads       []models.Lead
	failCreates int
	createCalls int
}

func (f *fakeRepo) Create(ctx context.Context, lead models.Lead) error {
	f.createCalls++
	if f.createCalls <= f.failCreates {
		return errors.New("connection reset")
	}
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]models.Lead, error) {
	out := make([]models.Lead, len(f.leads))
	copy(out, f.leads)
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string) (models.Lead, error) {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].Status = status
			return f.leads[i], nil
		}
	}
	return models.Lead{}, mongo.ErrNoDocuments
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) SendLeadNotification(ctx context.Context, lead models.Lead) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "msg_1", nil
}

func TestCreateSetsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC, nil)

	before := time.Now().Add(-time.Second)
	lead, err := svc.Create(context.Background(), CreateRequest{
		Name:    "  Jane Doe ",
		Email:   "jane@example.com",
		Service: "Kitchen",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if lead.ID == "" {
		t.Fatalf("expected generated id")
	}
	if lead.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", lead.Name)
	}
	if lead.Status != models.LeadStatusNew {
		t.Fatalf("expected status NEW, got %q", lead.Status)
	}
	if lead.CreatedAt.Before(before) {
		t.Fatalf("expected fresh createdAt, got %v", lead.CreatedAt)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(repo.leads))
	}
}

func TestCreateRetriesTransientFailure(t *testing.T) {
	repo := &fakeRepo{failCreates: 2}
	svc := NewService(repo, time.UTC, nil)

	if _, err := svc.Create(context.Background(), CreateRequest{Name: "Jane", Email: "jane@example.com", Service: "Kitchen"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if repo.createCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", repo.createCalls)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected lead stored on final attempt")
	}
}

func TestCreateSurfacesExhaustedRetries(t *testing.T) {
	repo := &fakeRepo{failCreates: 10}
	svc := NewService(repo, time.UTC, nil)

	if _, err := svc.Create(context.Background(), CreateRequest{Name: "Jane", Email: "jane@example.com", Service: "Kitchen"}); err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if len(repo.leads) != 0 {
		t.Fatalf("expected no lead stored")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{leads: []models.Lead{{ID: "l1", Status: models.LeadStatusNew}}}
	svc := NewService(repo, time.UTC, nil)

	lead, err := svc.UpdateStatus(context.Background(), "l1", "contacted")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if lead.Status != models.LeadStatusContacted {
		t.Fatalf("expected CONTACTED, got %q", lead.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "l1", "SHOUTING"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", "CONVERTED"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNotifyCreatedWithoutNotifier(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC, nil)
	if err := svc.NotifyCreated(context.Background(), models.Lead{ID: "l1"}); err != nil {
		t.Fatalf("expected nil error without notifier, got %v", err)
	}
}

func TestNotifyCreatedPropagatesSendError(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(&fakeRepo{}, time.UTC, notifier)
	if err := svc.NotifyCreated(context.Background(), models.Lead{ID: "l1"}); err == nil {
		t.Fatalf("expected notifier error to propagate to the caller's log")
	}
	if notifier.calls != 1 {
		t.Fatalf("expected 1 send attempt, got %d", notifier.calls)
	}
}
