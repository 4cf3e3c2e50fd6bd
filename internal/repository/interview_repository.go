package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/intervu/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *model.Interview) error
	FindByID(ctx context.Context, id string) (*model.Interview, error)
	FindByOwner(ctx context.Context, userID string) ([]model.Interview, error)
	FindAvailable(ctx context.Context, userID string, limit int) ([]model.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByOwner(ctx context.Context, userID string) ([]model.Interview, error) {
	interviews := []model.Interview{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("list interviews of user %s: %w", userID, err)
	}
	return interviews, nil
}

// FindAvailable returns finalized interviews owned by anyone but userID,
// newest first. A non-positive limit means no cap.
func (r *interviewRepository) FindAvailable(ctx context.Context, userID string, limit int) ([]model.Interview, error) {
	interviews := []model.Interview{}
	query := r.db.WithContext(ctx).
		Where("finalized = ?", true).
		Where("user_id <> ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("list available interviews for user %s: %w", userID, err)
	}
	return interviews, nil
}
