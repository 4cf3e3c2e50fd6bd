package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type interviewRepository struct {
	col *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) repository.InterviewRepository {
	return &interviewRepository{col: db.Collection(InterviewsCollection)}
}

func (r *interviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, interview)
	return err
}

func (r *interviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.col.FindOne(ctx, byID(id)).Decode(&interview)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByOwner(ctx context.Context, userID string) ([]model.Interview, error) {
	interviews, err := r.find(ctx, ownerFilter(userID), 0)
	if err != nil {
		return nil, fmt.Errorf("list interviews of user %s: %w", userID, err)
	}
	return interviews, nil
}

func (r *interviewRepository) FindAvailable(ctx context.Context, userID string, limit int) ([]model.Interview, error) {
	interviews, err := r.find(ctx, availableFilter(userID), limit)
	if err != nil {
		return nil, fmt.Errorf("list available interviews for user %s: %w", userID, err)
	}
	return interviews, nil
}

func (r *interviewRepository) find(ctx context.Context, filter bson.D, limit int) ([]model.Interview, error) {
	cur, err := r.col.Find(ctx, filter, newestFirst("created_at", limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	interviews := []model.Interview{}
	if err := cur.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}
