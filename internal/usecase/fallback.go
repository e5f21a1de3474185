package usecase

import (
	"time"

	"PMTerminal/internal/domain/models"
)

// Placeholder payloads served when an endpoint flagged MockFallback gets an
// HTTP error, so the widget keeps rendering. Values are fixed; only the COT
// dates follow the clock.

func mockCotChart(now time.Time, weeks int) models.CotChart {
	if weeks <= 0 || weeks > 52 {
		weeks = 52
	}
	// COT reports are dated Tuesdays
	last := now.UTC().Truncate(24 * time.Hour)
	for last.Weekday() != time.Tuesday {
		last = last.AddDate(0, 0, -1)
	}

	out := models.CotChart{Points: make([]models.CotPoint, weeks), IsMock: true}
	for i := 0; i < weeks; i++ {
		long := 120000 + float64(i%6)*4500
		short := 95000 + float64(i%4)*3800
		out.Points[i] = models.CotPoint{
			Date:  last.AddDate(0, 0, -7*(weeks-1-i)).Format("2006-01-02"),
			Long:  long,
			Short: short,
			Net:   long - short,
		}
	}
	return out
}

var mockSeasonalityValues = []float64{0.42, -0.18, 0.95, 1.31, 0.67, -0.44, 0.21, -0.89, -1.12, 0.35, 1.08, 0.76}

func mockSeasonalityPerformance() models.SeasonalityPerformance {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	out := models.SeasonalityPerformance{Points: make([]models.PerformancePoint, len(months)), IsMock: true}
	for i, m := range months {
		out.Points[i] = models.PerformancePoint{Label: m, Value: mockSeasonalityValues[i]}
	}
	return out
}
