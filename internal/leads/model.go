package leads

type CreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED CONVERTED ARCHIVED"`
}
