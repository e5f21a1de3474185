package transform

import (
	"sort"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"

	"github.com/tidwall/gjson"
)

// PriceChart maps OHLC rows to chart points keyed by unix seconds, sorted
// ascending. Rows without a readable time are dropped.
func PriceChart(doc gjson.Result) []models.ChartPoint {
	rows := rowsOf(jsonx.Unwrap(doc))
	out := make([]models.ChartPoint, 0, len(rows))
	for _, row := range rows {
		t, ok := timeOf(jsonx.First(row, "time", "date", "t", "datetime", "timestamp"))
		if !ok {
			continue
		}
		out = append(out, models.ChartPoint{
			Time:   t.Unix(),
			Open:   jsonx.FloatOr(jsonx.First(row, "open", "o"), 0),
			High:   jsonx.FloatOr(jsonx.First(row, "high", "h"), 0),
			Low:    jsonx.FloatOr(jsonx.First(row, "low", "l"), 0),
			Close:  jsonx.FloatOr(jsonx.First(row, "close", "c"), 0),
			Volume: jsonx.FloatOr(jsonx.First(row, "volume", "v"), 0),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
