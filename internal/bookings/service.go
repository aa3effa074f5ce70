package bookings

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
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("booking not found")
)

type Notifier interface {
	SendBookingNotification(ctx context.Context, booking models.Booking) (string, error)
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

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Booking, error) {
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		return models.Booking{}, ErrInvalidDate
	}

	booking := models.Booking{
		ID:          primitive.NewObjectID().Hex(),
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Date:        date.UTC(),
		TimeSlot:    strings.TrimSpace(req.TimeSlot),
		Status:      models.BookingStatusPending,
		CreatedAt:   time.Now().In(s.location),
	}

	err = retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, booking)
	})
	if err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

func (s *Service) List(ctx context.Context) ([]models.Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	status = strings.ToUpper(strings.TrimSpace(status))
	if !models.IsValidBookingStatus(status) {
		return models.Booking{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	return updated, nil
}

// NotifyCreated mirrors the lead path: attempted before the response is
// written, logged and swallowed by the caller on failure.
func (s *Service) NotifyCreated(ctx context.Context, booking models.Booking) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendBookingNotification(ctx, booking)
	return err
}
