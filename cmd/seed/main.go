package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/sri"
)

// Seeds a demo account with one completed assessment so the dashboard
// has data to show on a fresh install.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "trivity"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	user := &model.User{
		Email:        "demo@trivity.io",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "User",
		Company:      "Trivity Demo Co",
		Role:         "user",
		IsActive:     true,
		CreatedAt:    now,
	}

	res, err := db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		log.Fatalf("Failed to insert demo user: %v", err)
	}
	userID := res.InsertedID.(primitive.ObjectID).Hex()

	answers := model.AnswerSet{
		"general_1":     model.OptionAnswer("yes"),
		"general_2":     model.OptionAnswer("yes"),
		"environment_1": model.OptionAnswer("yes"),
		"environment_2": model.OptionAnswer("no"),
		"social_1":      model.OptionAnswer("yes"),
		"governance_1":  model.OptionAnswer("no"),
	}

	result := sri.Score(answers, sri.Catalog())
	assessment := &model.Assessment{
		UserID:         userID,
		TotalScore:     result.TotalScore,
		CategoryScores: result.CategoryScores,
		Answers:        answers,
		Industry:       "Technology",
		CompanySize:    "11-50",
		Location:       "Colombo",
		TrophyLevel:    result.TrophyLevel,
		Status:         "completed",
		AIAnalysis:     service.FallbackAnalysis(result.CategoryScores),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := db.Collection("sri_assessments").InsertOne(ctx, assessment); err != nil {
		log.Fatalf("Failed to insert demo assessment: %v", err)
	}

	fmt.Printf("Seeded demo user %s (password demo1234) with total score %.1f\n", user.Email, result.TotalScore)
}
