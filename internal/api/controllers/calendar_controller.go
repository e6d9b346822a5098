package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"arogya/internal/models/request_models"
	"arogya/internal/services"
	"arogya/pkg/utils"
)

type CalendarController struct {
	calendarService services.CalendarService
}

func NewCalendarController(calendarService services.CalendarService) *CalendarController {
	return &CalendarController{calendarService: calendarService}
}

// accessToken pulls the Google access token the frontend forwards in
// the X-Google-Token header.
func accessToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Google-Token"))
}

func (cal *CalendarController) ListEvents(c *gin.Context) {
	if _, ok := ownerID(c); !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	events := cal.calendarService.ListEvents(c.Request.Context(), accessToken(c))
	if len(events) == 0 {
		utils.RespondSuccess(c, gin.H{"events": events, "message": "Connect Google Calendar in settings"}, "")
		return
	}
	utils.RespondSuccess(c, gin.H{"events": events}, "")
}

func (cal *CalendarController) CreateEvent(c *gin.Context) {
	if _, ok := ownerID(c); !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event := cal.calendarService.CreateEvent(c.Request.Context(), accessToken(c), req)
	if event == nil {
		utils.RespondSuccess(c, gin.H{"title": req.Title, "message": "Google Calendar integration pending"}, "")
		return
	}
	utils.RespondSuccess(c, event, "Event created")
}

func (cal *CalendarController) AuthURL(c *gin.Context) {
	user, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	url := cal.calendarService.AuthURL(user.String())
	if url == "" {
		utils.RespondSuccess(c, gin.H{"url": "", "message": "Configure GOOGLE_CLIENT_ID and redirect_uri"}, "")
		return
	}
	utils.RespondSuccess(c, gin.H{"url": url}, "")
}
