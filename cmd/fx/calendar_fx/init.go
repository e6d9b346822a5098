package calendar_fx

import (
	"go.uber.org/fx"

	"arogya/internal/api/controllers"
	"arogya/internal/services"
)

var Module = fx.Provide(
	provideCalendarService,
	provideCalendarController,
)

func provideCalendarService() services.CalendarService {
	return services.NewCalendarService()
}

func provideCalendarController(calendarService services.CalendarService) *controllers.CalendarController {
	return controllers.NewCalendarController(calendarService)
}
