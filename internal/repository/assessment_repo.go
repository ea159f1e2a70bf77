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

// AssessmentRepo handles MongoDB operations for SRI assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) (string, error)
	GetLatestByUserID(ctx context.Context, userID string) (*model.Assessment, error)
	GetHistoryByUserID(ctx context.Context, userID string) ([]*model.Assessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("sri_assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	now := time.Now()
	assessment.CreatedAt = now
	assessment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	assessment.ID = oid.Hex()
	return assessment.ID, nil
}

func (r *assessmentRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) GetHistoryByUserID(ctx context.Context, userID string) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}
