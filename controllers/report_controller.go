package controllers

import (
	"net/http"
	"time"

	"github.com/gustta03/meals-api/services"

	"github.com/gin-gonic/gin"
)

// ReportController exposes the same aggregations the bot replies with as
// JSON, for the dashboard.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (rc *ReportController) DailySummary(c *gin.Context) {
	phone := c.Param("phone")
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := rc.reports.DailySummary(c.Request.Context(), phone, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) WeeklyReport(c *gin.Context) {
	phone := c.Param("phone")
	var start time.Time
	if q := c.Query("start"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	report, err := rc.reports.WeeklyReport(c.Request.Context(), phone, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
