package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Leads          *mongo.Collection
	Bookings       *mongo.Collection
	Portals        *mongo.Collection
	Tasks          *mongo.Collection
	Documents      *mongo.Collection
	Media          *mongo.Collection
	Messages       *mongo.Collection
	ProjectUpdates *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Leads:          db.Collection("leads"),
		Bookings:       db.Collection("bookings"),
		Portals:        db.Collection("client_portals"),
		Tasks:          db.Collection("tasks"),
		Documents:      db.Collection("documents"),
		Media:          db.Collection("project_media"),
		Messages:       db.Collection("messages"),
		ProjectUpdates: db.Collection("project_updates"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Portals.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Leads.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Bookings.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	children := []*mongo.Collection{
		cols.Tasks,
		cols.Documents,
		cols.Media,
		cols.Messages,
		cols.ProjectUpdates,
	}
	for _, col := range children {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "portalId", Value: 1}, {Key: "createdAt", Value: 1}},
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
