package response_models

// ExerciseVideo is one YouTube lookup hit for an exercise query.
type ExerciseVideo struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
}

// CalendarEvent mirrors the subset of a Google Calendar event the
// frontend renders.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}
