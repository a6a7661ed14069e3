package mongo

import (
	"context"
	"time"

	"condotrack/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const routesCollection = "routes"

// RouteStore persists route records in the routes collection.
type RouteStore struct {
	collection *mongo.Collection
}

// NewRouteStore creates a store bound to the given database
func NewRouteStore(db *mongo.Database) *RouteStore {
	return &RouteStore{collection: db.Collection(routesCollection)}
}

// Insert stores a new route record and returns the assigned id
func (s *RouteStore) Insert(ctx context.Context, record *model.RouteRecord) (string, error) {
	record.ID = primitive.NewObjectID()

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID.Hex(), nil
}

// FindByCondID returns all routes of a group, most recent first
func (s *RouteStore) FindByCondID(ctx context.Context, condID string) ([]*model.RouteRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{"condId": condID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]*model.RouteRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// End marks the route ended with the given timestamp. Returns false when no
// record matched the id. An id that is not valid ObjectID hex cannot exist,
// so it reports not matched rather than an error.
func (s *RouteStore) End(ctx context.Context, id string, endedAt time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	update := bson.M{"$set": bson.M{
		"status":  model.RouteStatusEnded,
		"endedAt": endedAt,
	}}

	result, err := s.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
