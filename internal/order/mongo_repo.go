package order

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// MongoStore implémente Store sur la collection orders.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (s *MongoStore) Insert(ctx context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if _, err := s.collection.InsertOne(ctx, o); err != nil {
		return &apperrors.NetworkError{Op: "mongo.insert", Err: err}
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "commande", ID: id}
	}

	var o models.Order
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.NotFoundError{Resource: "commande", ID: id}
	}
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.findOne", Err: err}
	}
	return &o, nil
}

func (s *MongoStore) FindByGatewayRef(ctx context.Context, ref string) (*models.Order, error) {
	var o models.Order
	err := s.collection.FindOne(ctx, bson.M{"gatewayRef": ref}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.NotFoundError{Resource: "commande", ID: ref}
	}
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.findOne", Err: err}
	}
	return &o, nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, id, status string) error {
	return s.updateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

func (s *MongoStore) MarkPaid(ctx context.Context, id, status string) error {
	return s.updateByID(ctx, id, bson.M{"$set": bson.M{"payment": true, "status": status}})
}

func (s *MongoStore) SetGatewayRef(ctx context.Context, id, ref string) error {
	return s.updateByID(ctx, id, bson.M{"$set": bson.M{"gatewayRef": ref}})
}

func (s *MongoStore) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperrors.NotFoundError{Resource: "commande", ID: id}
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return &apperrors.NetworkError{Op: "mongo.update", Err: err}
	}
	if res.MatchedCount == 0 {
		return &apperrors.NotFoundError{Resource: "commande", ID: id}
	}
	return nil
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

func (s *MongoStore) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoStore) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	return s.list(ctx, bson.M{
		"status":     StatusCreated,
		"created_at": bson.M{"$lt": cutoff},
	})
}

func (s *MongoStore) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.find", Err: err}
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, &apperrors.NetworkError{Op: "mongo.decode", Err: err}
	}
	return orders, nil
}
