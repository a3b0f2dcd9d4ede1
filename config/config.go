package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gustta03/meals-api/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Settings are the numeric knobs of the core, read once at boot.
type Settings struct {
	MinDailyCalorieGoal int
	MaxDailyCalorieGoal int

	MaxFoodWeightGrams float64
	MaxCalories        float64
	MaxMacroGrams      float64

	// Consistency thresholds. Crossing these attaches warnings, never
	// hard failures.
	CalorieDivergencePct float64
	MacroCoverageMin     float64
	MacroCoverageMax     float64

	ExtractionCacheTTL     time.Duration
	PendingConfirmationTTL time.Duration
}

var Cfg Settings

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment: %v", err)
	}

	Cfg = Settings{
		MinDailyCalorieGoal:    envInt("GOAL_MIN_CALORIES", 800),
		MaxDailyCalorieGoal:    envInt("GOAL_MAX_CALORIES", 10000),
		MaxFoodWeightGrams:     envFloat("NUTRITION_MAX_WEIGHT_G", 1000),
		MaxCalories:            envFloat("NUTRITION_MAX_CALORIES", 5000),
		MaxMacroGrams:          envFloat("NUTRITION_MAX_MACRO_G", 1000),
		CalorieDivergencePct:   envFloat("NUTRITION_DIVERGENCE_PCT", 10),
		MacroCoverageMin:       envFloat("NUTRITION_MACRO_COVERAGE_MIN", 0.85),
		MacroCoverageMax:       envFloat("NUTRITION_MACRO_COVERAGE_MAX", 1.10),
		ExtractionCacheTTL:     envDuration("EXTRACTION_CACHE_TTL", 24*time.Hour),
		PendingConfirmationTTL: envDuration("PENDING_CONFIRMATION_TTL", 30*time.Minute),
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Food{},
		&models.Meal{},
		&models.MealItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using default %v", key, v, def)
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using default %v", key, v, def)
	}
	return def
}
