package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhananjayaDev/trivity/internal/model"
)

// CarbonRepo handles MongoDB operations for carbon footprint records
type CarbonRepo interface {
	Create(ctx context.Context, data *model.CarbonData) (string, error)
	GetLatestByUserID(ctx context.Context, userID string) (*model.CarbonData, error)
	GetHistoryByUserID(ctx context.Context, userID string) ([]*model.CarbonData, error)
}

type carbonRepo struct {
	collection *mongo.Collection
}

// NewCarbonRepo creates a new carbon data repository
func NewCarbonRepo(db *mongo.Database) CarbonRepo {
	return &carbonRepo{
		collection: db.Collection("carbon_data"),
	}
}

func (r *carbonRepo) Create(ctx context.Context, data *model.CarbonData) (string, error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, data)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	data.ID = oid.Hex()
	return data.ID, nil
}

func (r *carbonRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.CarbonData, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var data model.CarbonData
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&data)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *carbonRepo) GetHistoryByUserID(ctx context.Context, userID string) ([]*model.CarbonData, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.CarbonData
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
