package bookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FlorinDG/coral-remodeling-pro/internal/httpx"
	"github.com/FlorinDG/coral-remodeling-pro/internal/middleware"
	"github.com/FlorinDG/coral-remodeling-pro/internal/transport"
	"github.com/FlorinDG/coral-remodeling-pro/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("bookings create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			log.Warn("bookings create: invalid date", slog.String("date", req.Date))
			transport.WriteError(w, http.StatusBadRequest, "invalid date", nil)
			return
		}
		log.Error("bookings create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer notifyCancel()
	if err := h.service.NotifyCreated(notifyCtx, booking); err != nil {
		log.Warn("bookings create: notification failed",
			slog.String("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
	}

	log.Info("bookings create: stored",
		slog.String("booking_id", booking.ID),
		slog.String("service_type", booking.ServiceType),
		slog.String("time_slot", booking.TimeSlot),
	)
	transport.WriteJSON(w, http.StatusCreated, booking)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("bookings list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

// Slots serves the fixed slot labels and the rolling date window the
// public wizard renders; no availability is computed.
func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	dates := UpcomingDates(time.Now(), UpcomingWindowDays, h.service.location)
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format(time.RFC3339))
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"dates":     formatted,
		"timeSlots": TimeSlots,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("bookings status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("bookings status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("bookings status: not found", slog.String("booking_id", id))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("bookings status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings status: ok", slog.String("booking_id", id), slog.String("status", booking.Status))
	transport.WriteJSON(w, http.StatusOK, booking)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
