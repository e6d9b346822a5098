package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arogya/internal/models/request_models"
	"arogya/internal/services"
	"arogya/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{healthService: healthService}
}

func (h *HealthController) GetAssessment(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	assessment, err := h.healthService.GetAssessment(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if assessment == nil {
		// No assessment yet reads as an empty object, not a 404.
		utils.RespondSuccess(c, gin.H{}, "")
		return
	}
	utils.RespondSuccess(c, assessment, "")
}

func (h *HealthController) UpsertAssessment(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.UpsertAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	assessment, updated, err := h.healthService.UpsertAssessment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{
		"id":      assessment.ID.String(),
		"updated": updated,
	}, "Assessment saved")
}
