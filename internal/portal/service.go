package portal

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/utils"
)

var (
	ErrNotFound       = errors.New("portal not found")
	ErrPortalMissing  = errors.New("portal does not exist")
	ErrTaskNotFound   = errors.New("task not found")
	ErrSlugGeneration = errors.New("could not generate a unique slug")
)

// slugAttempts bounds regeneration when the unique index reports a
// collision. With a 64-character alphabet and 10 characters this should
// never be hit in practice.
const slugAttempts = 3

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.ClientPortal, error) {
	portal := models.ClientPortal{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		Status:      models.PortalStatusActive,
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		portal.ID = primitive.NewObjectID().Hex()
		portal.Slug = utils.NewSlug()
		portal.CreatedAt = time.Now().In(s.location)

		err := s.repo.CreatePortal(ctx, portal)
		if err == nil {
			return portal, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return models.ClientPortal{}, err
		}
	}

	return models.ClientPortal{}, ErrSlugGeneration
}

func (s *Service) List(ctx context.Context) ([]PortalWithUpdates, error) {
	portals, err := s.repo.ListPortals(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(portals))
	for _, p := range portals {
		ids = append(ids, p.ID)
	}

	updates, err := s.repo.ListUpdatesByPortalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byPortal := make(map[string][]models.ProjectUpdate, len(portals))
	for _, u := range updates {
		byPortal[u.PortalID] = append(byPortal[u.PortalID], u)
	}

	items := make([]PortalWithUpdates, 0, len(portals))
	for _, p := range portals {
		us := byPortal[p.ID]
		if us == nil {
			us = []models.ProjectUpdate{}
		}
		items = append(items, PortalWithUpdates{ClientPortal: p, Updates: us})
	}
	return items, nil
}

func (s *Service) DetailByID(ctx context.Context, id string) (Detail, error) {
	portal, err := s.repo.GetPortalByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}
	return s.detail(ctx, portal)
}

func (s *Service) DetailBySlug(ctx context.Context, slug string) (Detail, error) {
	portal, err := s.repo.GetPortalBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}
	return s.detail(ctx, portal)
}

func (s *Service) detail(ctx context.Context, portal models.ClientPortal) (Detail, error) {
	updates, err := s.repo.ListUpdates(ctx, portal.ID)
	if err != nil {
		return Detail{}, err
	}
	tasks, err := s.repo.ListTasks(ctx, portal.ID)
	if err != nil {
		return Detail{}, err
	}
	documents, err := s.repo.ListDocuments(ctx, portal.ID)
	if err != nil {
		return Detail{}, err
	}
	media, err := s.repo.ListMedia(ctx, portal.ID)
	if err != nil {
		return Detail{}, err
	}
	messages, err := s.repo.ListMessages(ctx, portal.ID)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Portal:    portal,
		Updates:   updates,
		Tasks:     tasks,
		Documents: documents,
		Media:     media,
		Messages:  messages,
	}, nil
}

func (s *Service) requirePortal(ctx context.Context, portalID string) error {
	exists, err := s.repo.PortalExists(ctx, strings.TrimSpace(portalID))
	if err != nil {
		return err
	}
	if !exists {
		return ErrPortalMissing
	}
	return nil
}

func (s *Service) CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	if err := s.requirePortal(ctx, req.PortalID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  strings.TrimSpace(req.PortalID),
		Title:     strings.TrimSpace(req.Title),
		Status:    models.TaskStatusTodo,
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask overwrites the task status unconditionally: concurrent
// toggles resolve last-write-wins, which is the contract the optimistic
// UI relies on.
func (s *Service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	task, err := s.repo.UpdateTaskStatus(ctx, strings.TrimSpace(req.ID), req.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *Service) CreateDocument(ctx context.Context, req CreateDocumentRequest) (models.Document, error) {
	if err := s.requirePortal(ctx, req.PortalID); err != nil {
		return models.Document{}, err
	}

	doc := models.Document{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  strings.TrimSpace(req.PortalID),
		Name:      strings.TrimSpace(req.Name),
		URL:       strings.TrimSpace(req.URL),
		Type:      req.Type,
		CreatedAt: time.Now().In(s.location),
	}
	if doc.Type == "" {
		doc.Type = InferDocumentType(doc.URL)
	}
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (s *Service) CreateMedia(ctx context.Context, req CreateMediaRequest) (models.ProjectMedia, error) {
	if err := s.requirePortal(ctx, req.PortalID); err != nil {
		return models.ProjectMedia{}, err
	}

	media := models.ProjectMedia{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  strings.TrimSpace(req.PortalID),
		URL:       strings.TrimSpace(req.URL),
		Caption:   strings.TrimSpace(req.Caption),
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.CreateMedia(ctx, media); err != nil {
		return models.ProjectMedia{}, err
	}
	return media, nil
}

func (s *Service) CreateMessage(ctx context.Context, req CreateMessageRequest) (models.Message, error) {
	if err := s.requirePortal(ctx, req.PortalID); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  strings.TrimSpace(req.PortalID),
		Content:   strings.TrimSpace(req.Content),
		Sender:    req.Sender,
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (s *Service) CreateUpdate(ctx context.Context, req CreateUpdateRequest) (models.ProjectUpdate, error) {
	if err := s.requirePortal(ctx, req.PortalID); err != nil {
		return models.ProjectUpdate{}, err
	}

	update := models.ProjectUpdate{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  strings.TrimSpace(req.PortalID),
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.repo.CreateUpdate(ctx, update); err != nil {
		return models.ProjectUpdate{}, err
	}
	return update, nil
}

// InferDocumentType classifies a pasted document URL: ".pdf" means PDF,
// anything else is filed as a generic document.
func InferDocumentType(url string) string {
	if strings.HasSuffix(strings.ToLower(url), ".pdf") {
		return models.DocumentTypePDF
	}
	return models.DocumentTypeDoc
}
