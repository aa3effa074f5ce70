package portal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FlorinDG/coral-remodeling-pro/internal/db"
	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

type Repository interface {
	CreatePortal(ctx context.Context, portal models.ClientPortal) error
	ListPortals(ctx context.Context) ([]models.ClientPortal, error)
	GetPortalByID(ctx context.Context, id string) (models.ClientPortal, error)
	GetPortalBySlug(ctx context.Context, slug string) (models.ClientPortal, error)
	PortalExists(ctx context.Context, id string) (bool, error)

	CreateTask(ctx context.Context, task models.Task) error
	UpdateTaskStatus(ctx context.Context, id, status string) (models.Task, error)
	CreateDocument(ctx context.Context, doc models.Document) error
	CreateMedia(ctx context.Context, media models.ProjectMedia) error
	CreateMessage(ctx context.Context, msg models.Message) error
	CreateUpdate(ctx context.Context, update models.ProjectUpdate) error

	ListUpdates(ctx context.Context, portalID string) ([]models.ProjectUpdate, error)
	ListUpdatesByPortalIDs(ctx context.Context, portalIDs []string) ([]models.ProjectUpdate, error)
	ListTasks(ctx context.Context, portalID string) ([]models.Task, error)
	ListDocuments(ctx context.Context, portalID string) ([]models.Document, error)
	ListMedia(ctx context.Context, portalID string) ([]models.ProjectMedia, error)
	ListMessages(ctx context.Context, portalID string) ([]models.Message, error)
}

type MongoRepository struct {
	cols *db.Collections
}

func NewRepository(cols *db.Collections) *MongoRepository {
	return &MongoRepository{cols: cols}
}

func (r *MongoRepository) CreatePortal(ctx context.Context, portal models.ClientPortal) error {
	_, err := r.cols.Portals.InsertOne(ctx, portal)
	return err
}

func (r *MongoRepository) ListPortals(ctx context.Context) ([]models.ClientPortal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.cols.Portals.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ClientPortal, 0)
	for cursor.Next(ctx) {
		var portal models.ClientPortal
		if err := cursor.Decode(&portal); err != nil {
			return nil, err
		}
		items = append(items, portal)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) GetPortalByID(ctx context.Context, id string) (models.ClientPortal, error) {
	var portal models.ClientPortal
	if err := r.cols.Portals.FindOne(ctx, bson.M{"_id": id}).Decode(&portal); err != nil {
		return models.ClientPortal{}, err
	}
	return portal, nil
}

func (r *MongoRepository) GetPortalBySlug(ctx context.Context, slug string) (models.ClientPortal, error) {
	var portal models.ClientPortal
	if err := r.cols.Portals.FindOne(ctx, bson.M{"slug": slug}).Decode(&portal); err != nil {
		return models.ClientPortal{}, err
	}
	return portal, nil
}

func (r *MongoRepository) PortalExists(ctx context.Context, id string) (bool, error) {
	count, err := r.cols.Portals.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoRepository) CreateTask(ctx context.Context, task models.Task) error {
	_, err := r.cols.Tasks.InsertOne(ctx, task)
	return err
}

func (r *MongoRepository) UpdateTaskStatus(ctx context.Context, id, status string) (models.Task, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$set": bson.M{
			"status": status,
		},
	}

	var updated models.Task
	if err := r.cols.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

func (r *MongoRepository) CreateDocument(ctx context.Context, doc models.Document) error {
	_, err := r.cols.Documents.InsertOne(ctx, doc)
	return err
}

func (r *MongoRepository) CreateMedia(ctx context.Context, media models.ProjectMedia) error {
	_, err := r.cols.Media.InsertOne(ctx, media)
	return err
}

func (r *MongoRepository) CreateMessage(ctx context.Context, msg models.Message) error {
	_, err := r.cols.Messages.InsertOne(ctx, msg)
	return err
}

func (r *MongoRepository) CreateUpdate(ctx context.Context, update models.ProjectUpdate) error {
	_, err := r.cols.ProjectUpdates.InsertOne(ctx, update)
	return err
}

func (r *MongoRepository) ListUpdates(ctx context.Context, portalID string) ([]models.ProjectUpdate, error) {
	return decodeAll[models.ProjectUpdate](ctx, r.cols.ProjectUpdates, bson.M{"portalId": portalID}, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoRepository) ListUpdatesByPortalIDs(ctx context.Context, portalIDs []string) ([]models.ProjectUpdate, error) {
	if len(portalIDs) == 0 {
		return []models.ProjectUpdate{}, nil
	}
	return decodeAll[models.ProjectUpdate](ctx, r.cols.ProjectUpdates, bson.M{"portalId": bson.M{"$in": portalIDs}}, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoRepository) ListTasks(ctx context.Context, portalID string) ([]models.Task, error) {
	return decodeAll[models.Task](ctx, r.cols.Tasks, bson.M{"portalId": portalID}, bson.D{{Key: "createdAt", Value: 1}})
}

func (r *MongoRepository) ListDocuments(ctx context.Context, portalID string) ([]models.Document, error) {
	return decodeAll[models.Document](ctx, r.cols.Documents, bson.M{"portalId": portalID}, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoRepository) ListMedia(ctx context.Context, portalID string) ([]models.ProjectMedia, error) {
	return decodeAll[models.ProjectMedia](ctx, r.cols.Media, bson.M{"portalId": portalID}, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoRepository) ListMessages(ctx context.Context, portalID string) ([]models.Message, error) {
	return decodeAll[models.Message](ctx, r.cols.Messages, bson.M{"portalId": portalID}, bson.D{{Key: "createdAt", Value: 1}})
}

func decodeAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cursor, err := col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
