package portal

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FlorinDG/coral-remodeling-pro/internal/cache"
	"github.com/FlorinDG/coral-remodeling-pro/internal/httpx"
	"github.com/FlorinDG/coral-remodeling-pro/internal/middleware"
	"github.com/FlorinDG/coral-remodeling-pro/internal/transport"
	"github.com/FlorinDG/coral-remodeling-pro/internal/validation"
)

const cachePrefix = "portal:"

type Handler struct {
	service  *Service
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:  service,
		val:      val,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("portals create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("portals create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	portal, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("portals create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("portals create: stored", slog.String("portal_id", portal.ID), slog.String("slug", portal.Slug))
	transport.WriteJSON(w, http.StatusCreated, portal)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("portals list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("portals list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	h.serveDetail(w, r, "portals get", cachePrefix+"id:"+id, id, h.service.DetailByID)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	h.serveDetail(w, r, "portals get by slug", cachePrefix+"slug:"+slug, slug, h.service.DetailBySlug)
}

func (h *Handler) serveDetail(w http.ResponseWriter, r *http.Request, op, cacheKey, key string, lookup func(context.Context, string) (Detail, error)) {
	log := h.logWithRequest(r)
	if key == "" {
		log.Warn(op + ": missing identifier")
		transport.WriteError(w, http.StatusBadRequest, "missing identifier", nil)
		return
	}

	if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
		log.Info(op+": cache hit", slog.String("key", key))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	detail, err := lookup(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn(op+": not found", slog.String("key", key))
			transport.WriteError(w, http.StatusNotFound, "portal not found", nil)
			return
		}
		log.Error(op+": database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if payload, err := json.Marshal(detail); err == nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info(op+": ok", slog.String("portal_id", detail.Portal.ID))
	transport.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateTaskRequest
	if !h.decodeAndValidate(w, log, r, "portal tasks create", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	task, err := h.service.CreateTask(ctx, req)
	if err != nil {
		h.writeChildError(w, log, "portal tasks create", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal tasks create: stored", slog.String("task_id", task.ID), slog.String("portal_id", task.PortalID))
	transport.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpdateTaskRequest
	if !h.decodeAndValidate(w, log, r, "portal tasks update", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	task, err := h.service.UpdateTask(ctx, req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			log.Warn("portal tasks update: not found", slog.String("task_id", req.ID))
			transport.WriteError(w, http.StatusNotFound, "task not found", nil)
			return
		}
		log.Error("portal tasks update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal tasks update: ok", slog.String("task_id", task.ID), slog.String("status", task.Status))
	transport.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateDocumentRequest
	if !h.decodeAndValidate(w, log, r, "portal documents create", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	doc, err := h.service.CreateDocument(ctx, req)
	if err != nil {
		h.writeChildError(w, log, "portal documents create", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal documents create: stored", slog.String("document_id", doc.ID), slog.String("type", doc.Type))
	transport.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateMediaRequest
	if !h.decodeAndValidate(w, log, r, "portal media create", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	media, err := h.service.CreateMedia(ctx, req)
	if err != nil {
		h.writeChildError(w, log, "portal media create", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal media create: stored", slog.String("media_id", media.ID))
	transport.WriteJSON(w, http.StatusOK, media)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateMessageRequest
	if !h.decodeAndValidate(w, log, r, "portal messages create", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	msg, err := h.service.CreateMessage(ctx, req)
	if err != nil {
		h.writeChildError(w, log, "portal messages create", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal messages create: stored", slog.String("message_id", msg.ID), slog.String("sender", msg.Sender))
	transport.WriteJSON(w, http.StatusOK, msg)
}

func (h *Handler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateUpdateRequest
	if !h.decodeAndValidate(w, log, r, "portal updates create", &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	update, err := h.service.CreateUpdate(ctx, req)
	if err != nil {
		h.writeChildError(w, log, "portal updates create", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("portal updates create: stored", slog.String("update_id", update.ID))
	transport.WriteJSON(w, http.StatusCreated, update)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, log *slog.Logger, r *http.Request, op string, req interface{}) bool {
	if err := httpx.DecodeJSON(r.Body, req); err != nil {
		log.Warn(op + ": invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn(op + ": validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return false
	}
	return true
}

// writeChildError maps sub-resource write failures. A missing parent
// portal surfaces as a 500 like any other persistence rejection; the
// body never leaks internals beyond a short message.
func (h *Handler) writeChildError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, ErrPortalMissing) {
		log.Warn(op + ": portal does not exist")
		transport.WriteError(w, http.StatusInternalServerError, "portal not found", nil)
		return
	}
	log.Error(op+": database error", slog.String("error", err.Error()))
	transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
}

func (h *Handler) invalidate(ctx context.Context) {
	_ = h.cache.DeletePrefix(ctx, cachePrefix)
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
