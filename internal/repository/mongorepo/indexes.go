package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the compound indexes the list queries sort on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	interviewIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "finalized", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(InterviewsCollection).Indexes().CreateMany(ctx, interviewIdx); err != nil {
		return fmt.Errorf("create interview indexes: %w", err)
	}

	feedbackIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "interview_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "attempt_timestamp", Value: -1},
		},
	}
	if _, err := db.Collection(FeedbackCollection).Indexes().CreateOne(ctx, feedbackIdx); err != nil {
		return fmt.Errorf("create feedback indexes: %w", err)
	}
	return nil
}
