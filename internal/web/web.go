// Package web serves the server-rendered pages: the public landing page,
// the admin dashboard, and the client portal views. Pages are rendered
// from embedded templates; the interactive parts talk to the JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FlorinDG/coral-remodeling-pro/internal/middleware"
	"github.com/FlorinDG/coral-remodeling-pro/internal/portal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

type Handler struct {
	portals *portal.Service
	tmpl    *template.Template
	log     *slog.Logger
}

func NewHandler(portals *portal.Service, log *slog.Logger) *Handler {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("02/01/2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
		"lower": strings.ToLower,
	}
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
	return &Handler{
		portals: portals,
		tmpl:    tmpl,
		log:     log,
	}
}

// Routes mounts the page routes on r. The JSON API is mounted separately.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/admin", h.Admin)
	r.Get("/admin/portals/{id}", h.AdminPortal)
	r.Get("/portal/{slug}", h.ClientPortal)
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home.html", nil)
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "admin.html", nil)
}

func (h *Handler) AdminPortal(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	h.servePortalPage(w, r, "admin_portal.html", id, h.portals.DetailByID)
}

func (h *Handler) ClientPortal(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	h.servePortalPage(w, r, "client_portal.html", slug, h.portals.DetailBySlug)
}

func (h *Handler) servePortalPage(w http.ResponseWriter, r *http.Request, page, key string, lookup func(context.Context, string) (portal.Detail, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	detail, err := lookup(ctx, key)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			h.render(w, r, http.StatusNotFound, "not_found.html", nil)
			return
		}
		h.logWithRequest(r).Error("portal page: lookup failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, page, detail)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logWithRequest(r).Error("render failed", slog.String("template", name), slog.String("error", err.Error()))
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
