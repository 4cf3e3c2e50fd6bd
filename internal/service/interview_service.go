package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jinzhu/copier"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultAvailableLimit applies when neither the caller nor the config sets one.
const DefaultAvailableLimit = 20

// historyLookupConcurrency bounds the feedback queries issued per history request.
const historyLookupConcurrency = 8

type InterviewService interface {
	Create(ctx context.Context, req dto.CreateInterviewRequest) (*dto.InterviewResponseDTO, error)
	GetByID(ctx context.Context, id string) (*dto.InterviewResponseDTO, error)
	ListByOwner(ctx context.Context, userID string) ([]dto.InterviewResponseDTO, error)
	ListAvailable(ctx context.Context, userID string, limit int) ([]dto.InterviewResponseDTO, error)
	// ListAttempted returns the user's interviews that have at least one
	// feedback record, newest interview first.
	ListAttempted(ctx context.Context, userID string) ([]dto.InterviewHistoryDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	feedbackRepo  repository.FeedbackRepository
	defaultLimit  int
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	feedbackRepo repository.FeedbackRepository,
	defaultLimit int,
) InterviewService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultAvailableLimit
	}
	return &interviewService{
		interviewRepo: interviewRepo,
		feedbackRepo:  feedbackRepo,
		defaultLimit:  defaultLimit,
	}
}

func (s *interviewService) Create(ctx context.Context, req dto.CreateInterviewRequest) (*dto.InterviewResponseDTO, error) {
	var interview model.Interview
	if err := copier.Copy(&interview, &req); err != nil {
		return nil, fmt.Errorf("error preparing interview: %w", err)
	}
	if err := s.interviewRepo.Create(ctx, &interview); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Failed to create interview in database")
		return nil, fmt.Errorf("database error creating interview: %w", err)
	}
	log.Info().Str("interviewID", interview.ID).Str("userID", interview.UserID).Bool("finalized", interview.Finalized).Msg("Interview stored")
	return toInterviewDTO(&interview)
}

func (s *interviewService) GetByID(ctx context.Context, id string) (*dto.InterviewResponseDTO, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("interviewID", id).Msg("Failed to get interview from repository")
		}
		return nil, fmt.Errorf("interview %s: %w", id, err)
	}
	return toInterviewDTO(interview)
}

func (s *interviewService) ListByOwner(ctx context.Context, userID string) ([]dto.InterviewResponseDTO, error) {
	interviews, err := s.interviewRepo.FindByOwner(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list interviews by owner")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}
	return toInterviewDTOs(interviews)
}

func (s *interviewService) ListAvailable(ctx context.Context, userID string, limit int) ([]dto.InterviewResponseDTO, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	interviews, err := s.interviewRepo.FindAvailable(ctx, userID, limit)
	if err != nil {
		// A missing composite index on the store surfaces here.
		log.Error().Err(err).Str("userID", userID).Int("limit", limit).Msg("Failed to list available interviews")
		return nil, fmt.Errorf("error fetching available interviews: %w", err)
	}
	return toInterviewDTOs(interviews)
}

func (s *interviewService) ListAttempted(ctx context.Context, userID string) ([]dto.InterviewHistoryDTO, error) {
	interviews, err := s.interviewRepo.FindByOwner(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list interviews for history")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	histories := make([]*dto.InterviewHistoryDTO, len(interviews))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(historyLookupConcurrency)
	for i := range interviews {
		i := i
		g.Go(func() error {
			feedbacks, err := s.feedbackRepo.FindAllByInterviewAndUser(gctx, interviews[i].ID, userID)
			if err != nil {
				return err
			}
			if len(feedbacks) == 0 {
				return nil
			}
			interviewDTO, err := toInterviewDTO(&interviews[i])
			if err != nil {
				return err
			}
			histories[i] = &dto.InterviewHistoryDTO{
				Interview:       *interviewDTO,
				AttemptCount:    len(feedbacks),
				LatestScore:     feedbacks[0].TotalScore,
				LatestAttemptAt: feedbacks[0].AttemptTimestamp,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load feedback for interview history")
		return nil, fmt.Errorf("error fetching interview history: %w", err)
	}

	resp := []dto.InterviewHistoryDTO{}
	for _, h := range histories {
		if h != nil {
			resp = append(resp, *h)
		}
	}
	return resp, nil
}

var mixedType = regexp.MustCompile(`(?i)mix`)

// NormalizeInterviewType folds every spelling of a mixed interview into "Mixed".
func NormalizeInterviewType(t string) string {
	if mixedType.MatchString(t) {
		return "Mixed"
	}
	return t
}

func toInterviewDTO(interview *model.Interview) (*dto.InterviewResponseDTO, error) {
	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	resp.Type = NormalizeInterviewType(resp.Type)
	return &resp, nil
}

func toInterviewDTOs(interviews []model.Interview) ([]dto.InterviewResponseDTO, error) {
	resp := make([]dto.InterviewResponseDTO, 0, len(interviews))
	for i := range interviews {
		d, err := toInterviewDTO(&interviews[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *d)
	}
	return resp, nil
}
