package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/service"
	"github.com/rs/zerolog/log"
)

const errMissingParams = "Missing required parameters"

type FeedbackController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackController(fs service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: fs}
}

// pairParams reads interviewId and userId from the query string.
func pairParams(ctx *gin.Context) (interviewID, userID string, ok bool) {
	interviewID = ctx.Query("interviewId")
	userID = ctx.Query("userId")
	if interviewID == "" || userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errMissingParams})
		return "", "", false
	}
	return interviewID, userID, true
}

// GetFeedbacks godoc
// @Summary List every feedback attempt of a user on an interview
// @Description Returns the full attempt history, most recent attempt first.
// @Tags Feedback
// @Produce json
// @Param interviewId query string true "Interview ID"
// @Param userId query string true "User ID"
// @Success 200 {array} dto.FeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing required parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch feedbacks"
// @Router /feedback [get]
func (c *FeedbackController) GetFeedbacks(ctx *gin.Context) {
	interviewID, userID, ok := pairParams(ctx)
	if !ok {
		return
	}

	feedbacks, err := c.feedbackService.GetAll(ctx.Request.Context(), interviewID, userID)
	if err != nil {
		log.Error().Err(err).Str("interviewID", interviewID).Str("userID", userID).Msg("GetFeedbacks: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch feedbacks"})
		return
	}
	ctx.JSON(http.StatusOK, feedbacks)
}

// GetLatestFeedback godoc
// @Summary Get the most recent feedback attempt
// @Tags Feedback
// @Produce json
// @Param interviewId query string true "Interview ID"
// @Param userId query string true "User ID"
// @Success 200 {object} dto.FeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing required parameters"
// @Failure 404 {object} dto.ErrorResponse "No attempt yet"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch feedback"
// @Router /feedback/latest [get]
func (c *FeedbackController) GetLatestFeedback(ctx *gin.Context) {
	interviewID, userID, ok := pairParams(ctx)
	if !ok {
		return
	}

	feedback, err := c.feedbackService.GetLatest(ctx.Request.Context(), interviewID, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch feedback"})
		return
	}
	if feedback == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No feedback for this interview yet"})
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// GetFeedbackAttempt godoc
// @Summary Get one feedback attempt by ID
// @Tags Feedback
// @Produce json
// @Param feedback_id path string true "Feedback ID"
// @Success 200 {object} dto.FeedbackResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch feedback"
// @Router /attempts/{feedback_id} [get]
func (c *FeedbackController) GetFeedbackAttempt(ctx *gin.Context) {
	feedbackID := ctx.Param("feedback_id")
	feedback, err := c.feedbackService.GetByID(ctx.Request.Context(), feedbackID)
	if errors.Is(err, repository.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Feedback not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch feedback"})
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// CreateFeedback godoc
// @Summary Evaluate an interview transcript
// @Description Scores the transcript and stores it as a new attempt, or re-evaluates the attempt named by feedbackId in place.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param submission body dto.CreateFeedbackRequest true "Interview, user and transcript"
// @Success 200 {object} dto.CreateFeedbackResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 429 {object} dto.ErrorResponse "Too many evaluations from this client"
// @Failure 500 {object} dto.CreateFeedbackResult "Evaluation or write failed"
// @Router /feedback [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateFeedback: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result := c.feedbackService.CreateOrUpdate(ctx.Request.Context(), req)
	if !result.Success {
		ctx.JSON(http.StatusInternalServerError, result)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
