package portal

import "github.com/FlorinDG/coral-remodeling-pro/internal/models"

type CreateRequest struct {
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
}

type CreateTaskRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

type UpdateTaskRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=TODO DONE"`
}

type CreateDocumentRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=PDF DOC"`
}

type CreateMediaRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Caption  string `json:"caption"`
}

type CreateMessageRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Sender   string `json:"sender" validate:"required,oneof=ADMIN CLIENT"`
}

type CreateUpdateRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// PortalWithUpdates is the admin list shape: each portal carries its
// update feed so the dashboard can preview activity without extra calls.
type PortalWithUpdates struct {
	models.ClientPortal
	Updates []models.ProjectUpdate `json:"updates"`
}

// Detail is the one-logical-read aggregate behind both the admin view
// (looked up by id) and the client view (looked up by slug).
type Detail struct {
	Portal    models.ClientPortal    `json:"portal"`
	Updates   []models.ProjectUpdate `json:"updates"`
	Tasks     []models.Task          `json:"tasks"`
	Documents []models.Document      `json:"documents"`
	Media     []models.ProjectMedia  `json:"media"`
	Messages  []models.Message       `json:"messages"`
}
