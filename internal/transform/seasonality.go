package transform

import (
	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"

	"github.com/tidwall/gjson"
)

const trendThreshold = 0.05

// ClassifyTrend is bullish strictly above +0.05, bearish strictly below -0.05.
func ClassifyTrend(prognosis float64) models.Trend {
	switch {
	case prognosis > trendThreshold:
		return models.TrendBullish
	case prognosis < -trendThreshold:
		return models.TrendBearish
	default:
		return models.TrendNeutral
	}
}

// SeasonalityForecast maps forecast table rows and classifies each trend on
// the unrounded prognosis.
func SeasonalityForecast(doc gjson.Result) []models.ForecastRow {
	rows := rowsOf(jsonx.Unwrap(doc))
	out := make([]models.ForecastRow, 0, len(rows))
	for _, row := range rows {
		prognosis := jsonx.FloatOr(jsonx.First(row, "prognosis", "forecast"), 0)
		out = append(out, models.ForecastRow{
			Label:     jsonx.StringOr(jsonx.First(row, "label", "month", "period", "name", "date"), jsonx.Placeholder),
			Prognosis: Round3(prognosis),
			WinRate:   Round3(jsonx.FloatOr(jsonx.First(row, "winRate", "win_rate"), 0)),
			AvgReturn: Round3(jsonx.FloatOr(jsonx.First(row, "avgReturn", "averageReturn", "avg_return"), 0)),
			Trend:     ClassifyTrend(prognosis),
		})
	}
	return out
}

// SeasonalityPerformance reads either {labels:[], values:[]} or rows of
// {label|date, value}.
func SeasonalityPerformance(doc gjson.Result) models.SeasonalityPerformance {
	body := jsonx.Unwrap(doc)
	out := models.SeasonalityPerformance{Points: []models.PerformancePoint{}}

	if labels, values := body.Get("labels"), body.Get("values"); labels.IsArray() && values.IsArray() {
		l, v := labels.Array(), values.Array()
		for i := range l {
			var val float64
			if i < len(v) {
				val = jsonx.FloatOr(v[i], 0)
			}
			out.Points = append(out.Points, models.PerformancePoint{
				Label: jsonx.StringOr(l[i], jsonx.Placeholder),
				Value: Round3(val),
			})
		}
		return out
	}

	for _, row := range rowsOf(body) {
		out.Points = append(out.Points, models.PerformancePoint{
			Label: jsonx.StringOr(jsonx.First(row, "label", "date", "month", "day"), jsonx.Placeholder),
			Value: Round3(jsonx.FloatOr(jsonx.First(row, "value", "performance", "return"), 0)),
		})
	}
	return out
}
