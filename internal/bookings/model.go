package bookings

type CreateRequest struct {
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
	ServiceType string `json:"serviceType" validate:"required"`
	Date        string `json:"date" validate:"required,rfc3339"`
	TimeSlot    string `json:"timeSlot" validate:"required,timeslot"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}
