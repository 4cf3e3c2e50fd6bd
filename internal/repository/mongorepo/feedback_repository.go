package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type feedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{col: db.Collection(FeedbackCollection)}
}

func (r *feedbackRepository) NewID() string {
	return uuid.NewString()
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *model.Feedback) error {
	if feedback.ID == "" {
		return errors.New("feedback id is required")
	}
	_, err := r.col.ReplaceOne(ctx, byID(feedback.ID), feedback, options.Replace().SetUpsert(true))
	return err
}

func (r *feedbackRepository) FindByID(ctx context.Context, id string) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.col.FindOne(ctx, byID(id)).Decode(&feedback)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindLatest(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	feedbacks, err := r.findPair(ctx, interviewID, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("latest feedback for interview %s: %w", interviewID, err)
	}
	if len(feedbacks) == 0 {
		return nil, repository.ErrNotFound
	}
	return &feedbacks[0], nil
}

func (r *feedbackRepository) FindAllByInterviewAndUser(ctx context.Context, interviewID, userID string) ([]model.Feedback, error) {
	feedbacks, err := r.findPair(ctx, interviewID, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("feedback history for interview %s: %w", interviewID, err)
	}
	return feedbacks, nil
}

func (r *feedbackRepository) findPair(ctx context.Context, interviewID, userID string, limit int) ([]model.Feedback, error) {
	cur, err := r.col.Find(ctx, pairFilter(interviewID, userID), newestFirst("attempt_timestamp", limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	feedbacks := []model.Feedback{}
	if err := cur.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
