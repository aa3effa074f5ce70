package leads

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/retry"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("lead not found")
)

type Notifier interface {
	SendLeadNotification(ctx context.Context, lead models.Lead) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Lead, error) {
	lead := models.Lead{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Message:   strings.TrimSpace(req.Message),
		Status:    models.LeadStatusNew,
		CreatedAt: time.Now().In(s.location),
	}

	err := retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, lead)
	})
	if err != nil {
		return models.Lead{}, err
	}

	return lead, nil
}

func (s *Service) List(ctx context.Context) ([]models.Lead, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (models.Lead, error) {
	id = strings.TrimSpace(id)
	status = strings.ToUpper(strings.TrimSpace(status))
	if !models.IsValidLeadStatus(status) {
		return models.Lead{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Lead{}, ErrNotFound
		}
		return models.Lead{}, err
	}
	return updated, nil
}

// NotifyCreated sends the operator email for a stored lead. The caller is
// expected to log and swallow the error: the lead is already durable, so a
// notification failure never fails the request.
func (s *Service) NotifyCreated(ctx context.Context, lead models.Lead) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendLeadNotification(ctx, lead)
	return err
}
