package main

import (
	"log"
	"os"

	"github.com/gustta03/meals-api/config"
	"github.com/gustta03/meals-api/controllers"
	"github.com/gustta03/meals-api/routes"
	"github.com/gustta03/meals-api/services"
	"github.com/gustta03/meals-api/utils"
)

func main() {
	config.Load()
	config.InitDB()
	utils.InitS3()

	ai := services.NewGeminiService()
	catalog := services.NewCatalogService(config.DB)
	resolver := services.NewResolverService(catalog)
	calculator := services.NewCalculatorService()
	validator := services.NewValidatorService(config.Cfg)
	cache := services.NewNutritionCache(config.Cfg.ExtractionCacheTTL)
	extractor := services.NewExtractorService(ai, validator, cache)
	analysis := services.NewAnalysisService(ai, resolver, calculator, extractor)

	sessions := services.NewSessionService(config.DB)
	users := services.NewUserService(config.DB)
	meals := services.NewMealService(config.DB)
	reports := services.NewReportService(meals)
	hub := services.NewRealtimeHub()

	dispatcher := services.NewDispatcherService(sessions, users, meals, analysis, reports, ai, config.Cfg).
		WithCharts(services.NewChartService()).
		WithHub(hub)

	if screener, err := services.NewRekognitionService(); err != nil {
		log.Printf("rekognition unavailable, skipping image pre-screen: %v", err)
	} else {
		dispatcher.WithScreener(screener)
	}

	whapi := services.NewWhapiService()
	archivePhotos := os.Getenv("S3_BUCKET") != ""
	webhook := controllers.NewWebhookController(dispatcher, whapi, archivePhotos)

	r := routes.SetupRouter(
		webhook,
		controllers.NewFoodController(catalog),
		controllers.NewReportController(reports),
		controllers.NewRealtimeController(hub),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
