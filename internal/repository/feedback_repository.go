package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/intervu/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepository interface {
	// NewID allocates a fresh document id without writing anything.
	NewID() string
	// Save writes the whole record at feedback.ID, replacing any existing one.
	Save(ctx context.Context, feedback *model.Feedback) error
	FindByID(ctx context.Context, id string) (*model.Feedback, error)
	FindLatest(ctx context.Context, interviewID, userID string) (*model.Feedback, error)
	FindAllByInterviewAndUser(ctx context.Context, interviewID, userID string) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) NewID() string {
	return uuid.NewString()
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *model.Feedback) error {
	if feedback.ID == "" {
		return errors.New("feedback id is required")
	}
	// Upsert on the primary key so the update path overwrites every column.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id string) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// FindLatest returns ErrNotFound when the pair has no attempts yet.
func (r *feedbackRepository) FindLatest(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.pairQuery(ctx, interviewID, userID).Limit(1).Find(&feedbacks).Error
	if err != nil {
		return nil, fmt.Errorf("latest feedback for interview %s: %w", interviewID, err)
	}
	if len(feedbacks) == 0 {
		return nil, ErrNotFound
	}
	return &feedbacks[0], nil
}

func (r *feedbackRepository) FindAllByInterviewAndUser(ctx context.Context, interviewID, userID string) ([]model.Feedback, error) {
	feedbacks := []model.Feedback{}
	if err := r.pairQuery(ctx, interviewID, userID).Find(&feedbacks).Error; err != nil {
		return nil, fmt.Errorf("feedback history for interview %s: %w", interviewID, err)
	}
	return feedbacks, nil
}

func (r *feedbackRepository) pairQuery(ctx context.Context, interviewID, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Order("attempt_timestamp DESC")
}
