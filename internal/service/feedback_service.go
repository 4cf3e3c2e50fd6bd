package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/metrics"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrFeedbackPairMismatch means the feedback id given for an update belongs
// to a different interview or user.
var ErrFeedbackPairMismatch = errors.New("feedback belongs to another interview or user")

type FeedbackService interface {
	// CreateOrUpdate never returns an error: any failure is reported as
	// Success=false and logged.
	CreateOrUpdate(ctx context.Context, req dto.CreateFeedbackRequest) dto.CreateFeedbackResult
	// GetLatest returns nil and no error when the pair has no attempts.
	GetLatest(ctx context.Context, interviewID, userID string) (*dto.FeedbackResponseDTO, error)
	GetAll(ctx context.Context, interviewID, userID string) ([]dto.FeedbackResponseDTO, error)
	GetByID(ctx context.Context, feedbackID string) (*dto.FeedbackResponseDTO, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	evaluator    FeedbackEvaluator
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, evaluator FeedbackEvaluator) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		evaluator:    evaluator,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func feedbackLog(level zerolog.Level, stage string) *zerolog.Event {
	return log.WithLevel(level).Str("component", "feedback").Str("stage", stage)
}

func (s *feedbackService) CreateOrUpdate(ctx context.Context, req dto.CreateFeedbackRequest) dto.CreateFeedbackResult {
	feedbackLog(zerolog.InfoLevel, "start").
		Str("interviewID", req.InterviewID).Str("userID", req.UserID).
		Int("turns", len(req.Transcript)).Msg("Evaluating transcript")

	if req.FeedbackID != "" {
		if err := s.checkOwnership(ctx, req); err != nil {
			return s.fail(req, "update", err)
		}
	}

	transcript := FormatTranscript(req.Transcript)

	started := time.Now()
	evaluation, err := s.evaluator.Evaluate(ctx, transcript)
	if err == nil {
		// Evaluators other than Gemini may skip ParseEvaluation.
		err = ValidateEvaluation(evaluation)
	}
	if err != nil {
		metrics.ObserveEvaluation("error", time.Since(started))
		return s.fail(req, "evaluate", err)
	}
	metrics.ObserveEvaluation("ok", time.Since(started))

	now := s.now()
	feedback := model.Feedback{
		InterviewID:         req.InterviewID,
		UserID:              req.UserID,
		AttemptTimestamp:    now,
		TotalScore:          evaluation.TotalScore,
		CategoryScores:      evaluation.CategoryScores,
		Strengths:           evaluation.Strengths,
		AreasForImprovement: evaluation.AreasForImprovement,
		FinalAssessment:     evaluation.FinalAssessment,
		CreatedAt:           now,
	}

	path := "create"
	if req.FeedbackID != "" {
		path = "update"
		feedback.ID = req.FeedbackID
	} else {
		feedback.ID = s.feedbackRepo.NewID()
	}
	feedbackLog(zerolog.InfoLevel, path).
		Str("feedbackID", feedback.ID).Str("interviewID", req.InterviewID).Str("userID", req.UserID).
		Int("totalScore", feedback.TotalScore).Time("attemptTimestamp", now).Msg("Writing feedback")

	err = s.feedbackRepo.Save(ctx, &feedback)
	metrics.ObserveFeedbackWrite(path, err)
	if err != nil {
		return s.fail(req, path, err)
	}
	return dto.CreateFeedbackResult{Success: true, FeedbackID: feedback.ID}
}

// checkOwnership refuses to re-evaluate a record that belongs to another
// (interview, user) pair. An unknown id is allowed and is written as new.
func (s *feedbackService) checkOwnership(ctx context.Context, req dto.CreateFeedbackRequest) error {
	existing, err := s.feedbackRepo.FindByID(ctx, req.FeedbackID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up feedback %s: %w", req.FeedbackID, err)
	}
	if existing.InterviewID != req.InterviewID || existing.UserID != req.UserID {
		return fmt.Errorf("%w: feedback %s", ErrFeedbackPairMismatch, req.FeedbackID)
	}
	return nil
}

func (s *feedbackService) fail(req dto.CreateFeedbackRequest, step string, err error) dto.CreateFeedbackResult {
	feedbackLog(zerolog.ErrorLevel, "error").Err(err).
		Str("step", step).Str("interviewID", req.InterviewID).Str("userID", req.UserID).
		Msg("Error saving feedback")
	return dto.CreateFeedbackResult{Success: false, Error: "Failed to save feedback"}
}

func (s *feedbackService) GetLatest(ctx context.Context, interviewID, userID string) (*dto.FeedbackResponseDTO, error) {
	feedbackLog(zerolog.DebugLevel, "fetch-start").Str("interviewID", interviewID).Str("userID", userID).Msg("Fetching latest feedback")

	feedback, err := s.feedbackRepo.FindLatest(ctx, interviewID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		feedbackLog(zerolog.DebugLevel, "fetch-empty").Str("interviewID", interviewID).Str("userID", userID).Msg("No feedback yet")
		return nil, nil
	}
	if err != nil {
		feedbackLog(zerolog.ErrorLevel, "fetch-error").Err(err).Str("interviewID", interviewID).Str("userID", userID).Msg("Error fetching feedback")
		return nil, fmt.Errorf("error fetching latest feedback: %w", err)
	}

	feedbackLog(zerolog.DebugLevel, "fetch-success").Str("feedbackID", feedback.ID).Time("attemptTimestamp", feedback.AttemptTimestamp).Msg("Fetched latest feedback")
	return toFeedbackDTO(feedback)
}

func (s *feedbackService) GetAll(ctx context.Context, interviewID, userID string) ([]dto.FeedbackResponseDTO, error) {
	feedbacks, err := s.feedbackRepo.FindAllByInterviewAndUser(ctx, interviewID, userID)
	if err != nil {
		feedbackLog(zerolog.ErrorLevel, "fetch-error").Err(err).Str("interviewID", interviewID).Str("userID", userID).Msg("Error fetching feedbacks")
		return nil, fmt.Errorf("error fetching feedbacks: %w", err)
	}

	resp := make([]dto.FeedbackResponseDTO, 0, len(feedbacks))
	if err := copier.Copy(&resp, &feedbacks); err != nil {
		return nil, fmt.Errorf("error preparing feedback response: %w", err)
	}
	return resp, nil
}

func (s *feedbackService) GetByID(ctx context.Context, feedbackID string) (*dto.FeedbackResponseDTO, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			feedbackLog(zerolog.ErrorLevel, "fetch-error").Err(err).Str("feedbackID", feedbackID).Msg("Error fetching feedback")
		}
		return nil, fmt.Errorf("feedback %s: %w", feedbackID, err)
	}
	return toFeedbackDTO(feedback)
}

func toFeedbackDTO(feedback *model.Feedback) (*dto.FeedbackResponseDTO, error) {
	var resp dto.FeedbackResponseDTO
	if err := copier.Copy(&resp, feedback); err != nil {
		return nil, fmt.Errorf("error preparing feedback response: %w", err)
	}
	return &resp, nil
}
