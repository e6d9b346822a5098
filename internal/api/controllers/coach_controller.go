package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arogya/internal/models/request_models"
	"arogya/internal/services"
	"arogya/pkg/utils"
)

type CoachController struct {
	coachService services.CoachServiceInterface
}

func NewCoachController(coachService services.CoachServiceInterface) *CoachController {
	return &CoachController{coachService: coachService}
}

// Chat godoc
// @Summary Send a message to the AI coach
// @Description Runs one conversation turn and returns the reply with its session id
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Router /aromi/chat [post]
func (co *CoachController) Chat(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := co.coachService.Chat(c.Request.Context(), userID, req.Message, req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (co *CoachController) ListSessions(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	sessions, err := co.coachService.ListSessions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessions, "")
}

func (co *CoachController) SessionMessages(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	messages, err := co.coachService.SessionMessages(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, "")
}
