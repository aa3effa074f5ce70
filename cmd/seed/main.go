package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FlorinDG/coral-remodeling-pro/internal/bookings"
	"github.com/FlorinDG/coral-remodeling-pro/internal/config"
	"github.com/FlorinDG/coral-remodeling-pro/internal/db"
	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
	"github.com/FlorinDG/coral-remodeling-pro/internal/utils"
)

const demoPortalEmail = "martine.dupont@example.com"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	if err := seedLeads(ctx, cols, now); err != nil {
		log.Fatalf("seed leads error: %v", err)
	}
	if err := seedBooking(ctx, cols, now); err != nil {
		log.Fatalf("seed booking error: %v", err)
	}
	slug, err := seedDemoPortal(ctx, cols, now)
	if err != nil {
		log.Fatalf("seed portal error: %v", err)
	}

	log.Printf("seed completed (demo portal slug %s)", slug)
}

func seedLeads(ctx context.Context, cols *db.Collections, now time.Time) error {
	demoLeads := []models.Lead{
		{
			Name:    "Sophie Lemaire",
			Email:   "sophie.lemaire@example.com",
			Phone:   "+32 478 12 34 56",
			Service: "Kitchen Remodeling",
			Message: "We want to open up the kitchen towards the living room.",
			Status:  models.LeadStatusNew,
		},
		{
			Name:    "Thomas Janssens",
			Email:   "thomas.janssens@example.com",
			Service: "Bathroom Renovation",
			Message: "Walk-in shower and new tiling for a 6m2 bathroom.",
			Status:  models.LeadStatusContacted,
		},
	}

	for i, lead := range demoLeads {
		update := bson.M{"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"name":      lead.Name,
			"email":     lead.Email,
			"phone":     lead.Phone,
			"service":   lead.Service,
			"message":   lead.Message,
			"status":    lead.Status,
			"createdAt": now.Add(time.Duration(-i) * time.Hour),
		}}
		if _, err := cols.Leads.UpdateOne(ctx, bson.M{"email": lead.Email}, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}

func seedBooking(ctx context.Context, cols *db.Collections, now time.Time) error {
	dates := bookings.UpcomingDates(now, bookings.UpcomingWindowDays, now.Location())
	update := bson.M{"$setOnInsert": bson.M{
		"_id":         primitive.NewObjectID().Hex(),
		"clientName":  "Sophie Lemaire",
		"clientEmail": "sophie.lemaire@example.com",
		"serviceType": "Kitchen Remodeling",
		"date":        dates[0].UTC(),
		"timeSlot":    bookings.TimeSlots[0],
		"status":      models.BookingStatusPending,
		"createdAt":   now,
	}}
	_, err := cols.Bookings.UpdateOne(ctx, bson.M{"clientEmail": "sophie.lemaire@example.com"}, update, options.Update().SetUpsert(true))
	return err
}

// seedDemoPortal creates one portal with a few children of every kind so
// /admin/portals/{id} and /portal/{slug} have something to show out of the box.
func seedDemoPortal(ctx context.Context, cols *db.Collections, now time.Time) (string, error) {
	var existing models.ClientPortal
	err := cols.Portals.FindOne(ctx, bson.M{"clientEmail": demoPortalEmail}).Decode(&existing)
	if err == nil {
		return existing.Slug, nil
	}

	portal := models.ClientPortal{
		ID:          primitive.NewObjectID().Hex(),
		ClientName:  "Martine Dupont",
		ClientEmail: demoPortalEmail,
		Slug:        utils.NewSlug(),
		Status:      models.PortalStatusActive,
		CreatedAt:   now,
	}
	if _, err := cols.Portals.InsertOne(ctx, portal); err != nil {
		return "", err
	}

	updates := []models.ProjectUpdate{
		{
			Title:   "Demolition complete",
			Content: "The old kitchen has been removed and the space is prepped for plumbing.",
		},
		{
			Title:    "Cabinets delivered",
			Content:  "All cabinet modules arrived on site and passed inspection.",
			ImageURL: "https://images.example.com/coral/cabinets.jpg",
		},
	}
	for i, u := range updates {
		u.ID = primitive.NewObjectID().Hex()
		u.PortalID = portal.ID
		u.CreatedAt = now.Add(time.Duration(i-len(updates)) * 24 * time.Hour)
		if _, err := cols.ProjectUpdates.InsertOne(ctx, u); err != nil {
			return "", err
		}
	}

	tasks := []models.Task{
		{Title: "Choose countertop material", Status: models.TaskStatusDone},
		{Title: "Pick wall paint color", Status: models.TaskStatusTodo},
		{Title: "Confirm appliance delivery date", Status: models.TaskStatusTodo},
	}
	for i, t := range tasks {
		t.ID = primitive.NewObjectID().Hex()
		t.PortalID = portal.ID
		t.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		if _, err := cols.Tasks.InsertOne(ctx, t); err != nil {
			return "", err
		}
	}

	doc := models.Document{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  portal.ID,
		Name:      "Signed quote",
		URL:       "https://files.example.com/coral/quote-2026-081.pdf",
		Type:      models.DocumentTypePDF,
		CreatedAt: now,
	}
	if _, err := cols.Documents.InsertOne(ctx, doc); err != nil {
		return "", err
	}

	media := models.ProjectMedia{
		ID:        primitive.NewObjectID().Hex(),
		PortalID:  portal.ID,
		URL:       "https://images.example.com/coral/demolition.jpg",
		Caption:   "Kitchen after demolition",
		CreatedAt: now,
	}
	if _, err := cols.Media.InsertOne(ctx, media); err != nil {
		return "", err
	}

	messages := []models.Message{
		{Content: "Welcome to your project portal! We will post progress here.", Sender: models.SenderAdmin},
		{Content: "Thanks, looking forward to it.", Sender: models.SenderClient},
	}
	for i, m := range messages {
		m.ID = primitive.NewObjectID().Hex()
		m.PortalID = portal.ID
		m.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		if _, err := cols.Messages.InsertOne(ctx, m); err != nil {
			return "", err
		}
	}

	return portal.Slug, nil
}
