package services

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"arogya/internal/models/request_models"
	"arogya/internal/models/response_models"
)

// CalendarService wraps the Google Calendar integration. Without OAuth
// client credentials it degrades to empty results and a guidance
// message instead of failing.
type CalendarService interface {
	AuthURL(state string) string
	ListEvents(ctx context.Context, accessToken string) []response_models.CalendarEvent
	CreateEvent(ctx context.Context, accessToken string, req request_models.CreateCalendarEventRequest) *response_models.CalendarEvent
}

type calendarService struct {
	oauthConfig *oauth2.Config
}

func NewCalendarService() CalendarService {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return &calendarService{}
	}
	redirect := os.Getenv("GOOGLE_REDIRECT_URI")
	if redirect == "" {
		redirect = "http://localhost:8000/auth/google/callback"
	}
	return &calendarService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  redirect,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				calendar.CalendarEventsScope,
				calendar.CalendarReadonlyScope,
			},
		},
	}
}

func (s *calendarService) AuthURL(state string) string {
	if s.oauthConfig == nil {
		return ""
	}
	return s.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

func (s *calendarService) ListEvents(ctx context.Context, accessToken string) []response_models.CalendarEvent {
	svc := s.clientFor(ctx, accessToken)
	if svc == nil {
		return []response_models.CalendarEvent{}
	}

	res, err := svc.Events.List("primary").
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		MaxResults(50).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		log.Printf("Calendar event listing failed: %v", err)
		return []response_models.CalendarEvent{}
	}

	events := make([]response_models.CalendarEvent, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, response_models.CalendarEvent{
			ID:          item.Id,
			Title:       item.Summary,
			Start:       eventTime(item.Start),
			End:         eventTime(item.End),
			Description: item.Description,
		})
	}
	return events
}

func (s *calendarService) CreateEvent(ctx context.Context, accessToken string, req request_models.CreateCalendarEventRequest) *response_models.CalendarEvent {
	svc := s.clientFor(ctx, accessToken)
	if svc == nil {
		return nil
	}

	created, err := svc.Events.Insert("primary", &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start:       &calendar.EventDateTime{DateTime: req.Start},
		End:         &calendar.EventDateTime{DateTime: req.End},
	}).Context(ctx).Do()
	if err != nil {
		log.Printf("Calendar event creation failed: %v", err)
		return nil
	}

	return &response_models.CalendarEvent{
		ID:          created.Id,
		Title:       created.Summary,
		Start:       eventTime(created.Start),
		End:         eventTime(created.End),
		Description: created.Description,
	}
}

func (s *calendarService) clientFor(ctx context.Context, accessToken string) *calendar.Service {
	if s.oauthConfig == nil || accessToken == "" {
		return nil
	}
	source := s.oauthConfig.TokenSource(ctx, &oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		log.Printf("Calendar client init failed: %v", err)
		return nil
	}
	return svc
}

func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
