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

// SDGRepo handles MongoDB operations for SDG recommendations
type SDGRepo interface {
	Create(ctx context.Context, rec *model.SDGRecommendation) (string, error)
	GetLatestByUserID(ctx context.Context, userID string) (*model.SDGRecommendation, error)
}

type sdgRepo struct {
	collection *mongo.Collection
}

// NewSDGRepo creates a new SDG recommendation repository
func NewSDGRepo(db *mongo.Database) SDGRepo {
	return &sdgRepo{
		collection: db.Collection("sdg_recommendations"),
	}
}

func (r *sdgRepo) Create(ctx context.Context, rec *model.SDGRecommendation) (string, error) {
	rec.GeneratedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	rec.ID = oid.Hex()
	return rec.ID, nil
}

func (r *sdgRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.SDGRecommendation, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	var rec model.SDGRecommendation
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
