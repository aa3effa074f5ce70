package models

import "time"

const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusConverted = "CONVERTED"
	LeadStatusArchived  = "ARCHIVED"

	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"

	PortalStatusActive    = "ACTIVE"
	PortalStatusCompleted = "COMPLETED"

	TaskStatusTodo = "TODO"
	TaskStatusDone = "DONE"

	SenderAdmin  = "ADMIN"
	SenderClient = "CLIENT"

	DocumentTypePDF = "PDF"
	DocumentTypeDoc = "DOC"
)

var validLeadStatuses = map[string]struct{}{
	LeadStatusNew:       {},
	LeadStatusContacted: {},
	LeadStatusConverted: {},
	LeadStatusArchived:  {},
}

var validBookingStatuses = map[string]struct{}{
	BookingStatusPending:   {},
	BookingStatusConfirmed: {},
	BookingStatusCancelled: {},
}

var validTaskStatuses = map[string]struct{}{
	TaskStatusTodo: {},
	TaskStatusDone: {},
}

var validSenders = map[string]struct{}{
	SenderAdmin:  {},
	SenderClient: {},
}

func IsValidLeadStatus(value string) bool {
	_, ok := validLeadStatuses[value]
	return ok
}

func IsValidBookingStatus(value string) bool {
	_, ok := validBookingStatuses[value]
	return ok
}

func IsValidTaskStatus(value string) bool {
	_, ok := validTaskStatuses[value]
	return ok
}

func IsValidSender(value string) bool {
	_, ok := validSenders[value]
	return ok
}

type Lead struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Service   string    `bson:"service" json:"service"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Booking struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	ClientName  string    `bson:"clientName" json:"clientName"`
	ClientEmail string    `bson:"clientEmail" json:"clientEmail"`
	ServiceType string    `bson:"serviceType" json:"serviceType"`
	Date        time.Time `bson:"date" json:"date"`
	TimeSlot    string    `bson:"timeSlot" json:"timeSlot"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type ClientPortal struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	ClientName  string    `bson:"clientName" json:"clientName"`
	ClientEmail string    `bson:"clientEmail" json:"clientEmail"`
	Slug        string    `bson:"slug" json:"slug"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type ProjectUpdate struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PortalID  string    `bson:"portalId" json:"portalId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	ImageURL  string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Task struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PortalID  string    `bson:"portalId" json:"portalId"`
	Title     string    `bson:"title" json:"title"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Document struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PortalID  string    `bson:"portalId" json:"portalId"`
	Name      string    `bson:"name" json:"name"`
	URL       string    `bson:"url" json:"url"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type ProjectMedia struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PortalID  string    `bson:"portalId" json:"portalId"`
	URL       string    `bson:"url" json:"url"`
	Caption   string    `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PortalID  string    `bson:"portalId" json:"portalId"`
	Content   string    `bson:"content" json:"content"`
	Sender    string    `bson:"sender" json:"sender"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
