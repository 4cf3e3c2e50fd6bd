package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/lshigami/intervu/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminInterviewController struct {
	interviewService service.InterviewService
}

func NewAdminInterviewController(is service.InterviewService) *AdminInterviewController {
	return &AdminInterviewController{interviewService: is}
}

// CreateInterview godoc
// @Summary (Admin) Store a generated interview
// @Description Called by the interview generation step once the questions are ready. The ID and creation time are assigned by the store.
// @Tags Admin - Interviews
// @Accept json
// @Produce json
// @Param interview body dto.CreateInterviewRequest true "Interview to store"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/interviews [post]
func (c *AdminInterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.CreateInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	interview, err := c.interviewService.Create(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create interview"})
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}
