package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"arogya/cmd/fx/admin_fx"
	"arogya/cmd/fx/auth_fx"
	"arogya/cmd/fx/calendar_fx"
	"arogya/cmd/fx/coach_fx"
	"arogya/cmd/fx/health_fx"
	"arogya/cmd/fx/memcache_fx"
	"arogya/cmd/fx/nutrition_fx"
	"arogya/cmd/fx/progress_fx"
	"arogya/cmd/fx/workout_fx"
	"arogya/internal/api/controllers"
	"arogya/internal/infra"
	"arogya/internal/services"
	"arogya/pkg/middleware"
)

// @title ArogyaMitra API
// @version 1.0
// @description Fitness and wellness backend with an AI wellness coach.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		fx.Provide(infra.InitPostgresql),
		memcache_fx.Module,
		auth_fx.Module,
		workout_fx.Module,
		nutrition_fx.Module,
		progress_fx.Module,
		health_fx.Module,
		coach_fx.Module,
		calendar_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8000"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	workoutController *controllers.WorkoutController,
	nutritionController *controllers.NutritionController,
	progressController *controllers.ProgressController,
	healthController *controllers.HealthController,
	coachController *controllers.CoachController,
	calendarController *controllers.CalendarController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authService,
		authController,
		workoutController,
		nutritionController,
		progressController,
		healthController,
		coachController,
		calendarController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	workoutController *controllers.WorkoutController,
	nutritionController *controllers.NutritionController,
	progressController *controllers.ProgressController,
	healthController *controllers.HealthController,
	coachController *controllers.CoachController,
	calendarController *controllers.CalendarController,
	adminController *controllers.AdminController) {

	r.GET("/", middleware.OptionalAuthMiddleware(authService), func(c *gin.Context) {
		info := gin.H{
			"name":    "ArogyaMitra API",
			"status":  "running",
			"version": "1.0",
		}
		if user, ok := middleware.CurrentUser(c); ok {
			info["user"] = user.Email
		}
		c.JSON(http.StatusOK, info)
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.JWTAuthMiddleware(authService)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/guest", authController.GuestLogin)
	authGroup.GET("/me", authRequired, authController.Me)

	workoutGroup := r.Group("/workouts", authRequired)
	workoutGroup.GET("", workoutController.ListWorkouts)
	workoutGroup.POST("", workoutController.CreateWorkout)
	workoutGroup.GET("/plans", workoutController.ListPlans)
	workoutGroup.POST("/plans", workoutController.CreatePlan)
	workoutGroup.POST("/complete", workoutController.CompleteWorkout)
	workoutGroup.GET("/videos", workoutController.SearchVideos)
	workoutGroup.GET("/:id", workoutController.GetWorkout)

	nutritionGroup := r.Group("/nutrition", authRequired)
	nutritionGroup.GET("/plans", nutritionController.ListPlans)
	nutritionGroup.POST("/plans", nutritionController.CreatePlan)
	nutritionGroup.DELETE("/plans/:id", nutritionController.DeletePlan)
	nutritionGroup.POST("/plans/:id/meals", nutritionController.AddPlanMeals)
	nutritionGroup.GET("/meals", nutritionController.ListMeals)
	nutritionGroup.POST("/meals", nutritionController.LogMeal)
	nutritionGroup.GET("/meals/:id", nutritionController.GetMeal)
	nutritionGroup.DELETE("/meals/:id", nutritionController.DeleteMeal)
	nutritionGroup.GET("/logs", nutritionController.ListLogs)
	nutritionGroup.GET("/daily-totals", nutritionController.DailyTotals)
	nutritionGroup.GET("/search", nutritionController.SearchIngredients)
	nutritionGroup.GET("/ingredients/:id", nutritionController.IngredientInfo)

	progressGroup := r.Group("/progress", authRequired)
	progressGroup.GET("", progressController.ListEntries)
	progressGroup.POST("", progressController.CreateEntry)
	progressGroup.GET("/:id", progressController.GetEntry)

	healthGroup := r.Group("/health", authRequired)
	healthGroup.GET("", healthController.GetAssessment)
	healthGroup.POST("", healthController.UpsertAssessment)

	coachGroup := r.Group("/aromi", authRequired)
	coachGroup.POST("/chat", coachController.Chat)
	coachGroup.GET("/sessions", coachController.ListSessions)
	coachGroup.GET("/sessions/:id/messages", coachController.SessionMessages)

	calendarGroup := r.Group("/calendar", authRequired)
	calendarGroup.GET("/auth-url", calendarController.AuthURL)
	calendarGroup.GET("/events", calendarController.ListEvents)
	calendarGroup.POST("/events", calendarController.CreateEvent)

	adminGroup := r.Group("/admin", authRequired, middleware.AdminMiddleware())
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.GET("/stats", adminController.Stats)
}
