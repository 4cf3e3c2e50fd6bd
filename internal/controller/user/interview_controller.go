package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(is service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: is}
}

// GetUserInterviews godoc
// @Summary List interviews owned by a user
// @Tags Interviews
// @Produce json
// @Param userId query string true "Owner user ID"
// @Success 200 {array} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing required parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) GetUserInterviews(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errMissingParams})
		return
	}
	interviews, err := c.interviewService.ListByOwner(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve interviews"})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetAvailableInterviews godoc
// @Summary List finalized interviews created by other users
// @Tags Interviews
// @Produce json
// @Param userId query string true "Current user ID"
// @Param limit query int false "Maximum number of interviews (default 20)"
// @Success 200 {array} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /available-interviews [get]
func (c *InterviewController) GetAvailableInterviews(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errMissingParams})
		return
	}
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = val
	}

	interviews, err := c.interviewService.ListAvailable(ctx.Request.Context(), userID, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve available interviews", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetInterview godoc
// @Summary Get one interview
// @Tags Interviews
// @Produce json
// @Param interview_id path string true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{interview_id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	interviewID := ctx.Param("interview_id")
	interview, err := c.interviewService.GetByID(ctx.Request.Context(), interviewID)
	if errors.Is(err, repository.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Interview not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve interview"})
		return
	}
	ctx.JSON(http.StatusOK, interview)
}

// GetInterviewHistory godoc
// @Summary List the interviews a user has attempted
// @Description Only interviews with at least one feedback record are returned, with attempt count and latest score.
// @Tags Interviews
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.InterviewHistoryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/history [get]
func (c *InterviewController) GetInterviewHistory(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	history, err := c.interviewService.ListAttempted(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetInterviewHistory: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve interview history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
