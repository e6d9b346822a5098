package response_models

type AdminStats struct {
	Users        int64 `json:"users"`
	Workouts     int64 `json:"workouts"`
	Meals        int64 `json:"meals"`
	ChatSessions int64 `json:"chat_sessions"`
}
