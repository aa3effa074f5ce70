package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/portal"
)

// fakePortalRepo backs the page handlers with a single in-memory portal.
type fakePortalRepo struct {
	portal models.ClientPortal
	tasks  []models.Task
}

func (f *fakePortalRepo) CreatePortal(ctx context.Context, p models.ClientPortal) error { return nil }

func (f *fakePortalRepo) ListPortals(ctx context.Context) ([]models.ClientPortal, error) {
	return []models.ClientPortal{f.portal}, nil
}

func (f *fakePortalRepo) GetPortalByID(ctx context.Context, id string) (models.ClientPortal, error) {
	if id == f.portal.ID {
		return f.portal, nil
	}
	return models.ClientPortal{}, mongo.ErrNoDocuments
}

func (f *fakePortalRepo) GetPortalBySlug(ctx context.Context, slug string) (models.ClientPortal, error) {
	if slug == f.portal.Slug {
		return f.portal, nil
	}
	return models.ClientPortal{}, mongo.ErrNoDocuments
}

func (f *fakePortalRepo) PortalExists(ctx context.Context, id string) (bool, error) {
	return id == f.portal.ID, nil
}

func (f *fakePortalRepo) CreateTask(ctx context.Context, task models.Task) error { return nil }

func (f *fakePortalRepo) UpdateTaskStatus(ctx context.Context, id, status string) (models.Task, error) {
	return models.Task{}, mongo.ErrNoDocuments
}

func (f *fakePortalRepo) CreateDocument(ctx context.Context, doc models.Document) error  { return nil }
func (f *fakePortalRepo) CreateMedia(ctx context.Context, m models.ProjectMedia) error   { return nil }
func (f *fakePortalRepo) CreateMessage(ctx context.Context, msg models.Message) error    { return nil }
func (f *fakePortalRepo) CreateUpdate(ctx context.Context, u models.ProjectUpdate) error { return nil }

func (f *fakePortalRepo) ListUpdates(ctx context.Context, portalID string) ([]models.ProjectUpdate, error) {
	return []models.ProjectUpdate{}, nil
}

func (f *fakePortalRepo) ListUpdatesByPortalIDs(ctx context.Context, ids []string) ([]models.ProjectUpdate, error) {
	return []models.ProjectUpdate{}, nil
}

func (f *fakePortalRepo) ListTasks(ctx context.Context, portalID string) ([]models.Task, error) {
	return f.tasks, nil
}

func (f *fakePortalRepo) ListDocuments(ctx context.Context, portalID string) ([]models.Document, error) {
	return []models.Document{}, nil
}

func (f *fakePortalRepo) ListMedia(ctx context.Context, portalID string) ([]models.ProjectMedia, error) {
	return []models.ProjectMedia{}, nil
}

func (f *fakePortalRepo) ListMessages(ctx context.Context, portalID string) ([]models.Message, error) {
	return []models.Message{}, nil
}

func newTestPages(t *testing.T) (*chi.Mux, *fakePortalRepo) {
	t.Helper()
	repo := &fakePortalRepo{
		portal: models.ClientPortal{
			ID:          "portal-1",
			ClientName:  "Martine Dupont",
			ClientEmail: "martine@example.com",
			Slug:        "abc123xyz0",
			Status:      models.PortalStatusActive,
			CreatedAt:   time.Now().UTC(),
		},
		tasks: []models.Task{
			{ID: "t1", PortalID: "portal-1", Title: "Pick tiles", Status: models.TaskStatusTodo},
		},
	}
	svc := portal.NewService(repo, time.UTC)
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	h := NewHandler(svc, log)

	r := chi.NewRouter()
	h.Routes(r)
	return r, repo
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHomePage(t *testing.T) {
	r, _ := newTestPages(t)

	rec := get(t, r, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"inquiry-form", "booking-form", "/api/leads", "/api/bookings/slots"} {
		if !strings.Contains(body, want) {
			t.Fatalf("home page missing %q", want)
		}
	}
}

func TestAdminDashboardPage(t *testing.T) {
	r, _ := newTestPages(t)

	rec := get(t, r, "/admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"/api/leads", "/api/bookings", "/api/portals", "new-portal"} {
		if !strings.Contains(body, want) {
			t.Fatalf("admin page missing %q", want)
		}
	}
}

func TestAdminPortalPage(t *testing.T) {
	r, repo := newTestPages(t)

	rec := get(t, r, "/admin/portals/"+repo.portal.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, repo.portal.ClientName) {
		t.Fatal("admin portal page missing client name")
	}
	if !strings.Contains(body, "Pick tiles") {
		t.Fatal("admin portal page missing seeded task")
	}
}

func TestClientPortalPage(t *testing.T) {
	r, repo := newTestPages(t)

	rec := get(t, r, "/portal/"+repo.portal.Slug)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), repo.portal.ClientName) {
		t.Fatal("client portal page missing client name")
	}
}

func TestUnknownPortalRendersNotFoundPage(t *testing.T) {
	r, _ := newTestPages(t)

	for _, path := range []string{"/admin/portals/missing", "/portal/missing"} {
		rec := get(t, r, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Portal not found") {
			t.Fatalf("%s: expected the not-found page body", path)
		}
	}
}

func TestStaticStylesheet(t *testing.T) {
	r, _ := newTestPages(t)

	rec := get(t, r, "/static/styles.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
