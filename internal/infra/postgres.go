package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"arogya/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	// AutoMigrate is additive: new columns and tables appear, existing
	// data is never dropped.
	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.WorkoutPlan{},
		&db_models.Workout{},
		&db_models.NutritionPlan{},
		&db_models.Meal{},
		&db_models.NutritionLog{},
		&db_models.ProgressEntry{},
		&db_models.HealthAssessment{},
		&db_models.ChatSession{},
		&db_models.ChatMessage{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
