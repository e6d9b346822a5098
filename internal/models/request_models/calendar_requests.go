package request_models

type CreateCalendarEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	Description string `json:"description"`
}
