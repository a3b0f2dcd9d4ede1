package services

import (
	"log"
	"math"
	"time"
)

// All day boundaries are computed in the bot timezone, never the caller's.
var botLocation = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("could not load timezone %s, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

func dayStart(t time.Time) time.Time {
	t = t.In(botLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, botLocation)
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// weekStart returns the Monday of t's week.
func weekStart(t time.Time) time.Time {
	t = dayStart(t)
	diff := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

func dateKey(t time.Time) string {
	return dayStart(t).Format("2006-01-02")
}

// round2 rounds half up to two decimals. All nutrient values in the system
// pass through this before being summed or shown.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
