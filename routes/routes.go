package routes

import (
	"github.com/gustta03/meals-api/controllers"
	"github.com/gustta03/meals-api/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	webhook *controllers.WebhookController,
	foods *controllers.FoodController,
	reports *controllers.ReportController,
	realtime *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	// Whapi webhook (public, token-verified)
	hook := r.Group("/webhook")
	{
		hook.GET("/whapi", webhook.Verify)
		hook.POST("/whapi", webhook.Receive)
	}

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	// Protected admin routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/foods", foods.Create)
		admin.GET("/foods", foods.List)
		admin.GET("/foods/search", foods.Search)
		admin.GET("/foods/:code", foods.Get)
		admin.PUT("/foods/:code", foods.Update)
		admin.DELETE("/foods/:code", foods.Delete)

		admin.GET("/reports/:phone/daily", reports.DailySummary)
		admin.GET("/reports/:phone/weekly", reports.WeeklyReport)

		admin.GET("/ws/:phone", realtime.Stream)
	}

	return r
}
