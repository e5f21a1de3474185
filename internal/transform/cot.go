package transform

import (
	"sort"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"

	"github.com/tidwall/gjson"
)

// CotChart maps report rows to long/short/net points in date order. Rows
// with unparseable dates keep their raw label and sort last.
func CotChart(doc gjson.Result) models.CotChart {
	type dated struct {
		at    time.Time
		ok    bool
		point models.CotPoint
	}
	rows := rowsOf(jsonx.Unwrap(doc))
	items := make([]dated, 0, len(rows))
	for _, row := range rows {
		dateRes := jsonx.First(row, "date", "reportDate", "report_date", "datetime")
		long := jsonx.FloatOr(jsonx.First(row, "long", "longPositions", "long_positions"), 0)
		short := jsonx.FloatOr(jsonx.First(row, "short", "shortPositions", "short_positions"), 0)

		d := dated{point: models.CotPoint{Long: Round3(long), Short: Round3(short), Net: Round3(long - short)}}
		d.at, d.ok = timeOf(dateRes)
		if d.ok {
			d.point.Date = d.at.Format("2006-01-02")
		} else {
			d.point.Date = jsonx.StringOr(dateRes, jsonx.Placeholder)
		}
		items = append(items, d)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].at.Before(items[j].at)
	})

	out := models.CotChart{Points: make([]models.CotPoint, len(items))}
	for i, it := range items {
		out.Points[i] = it.point
	}
	return out
}

// CotPositioning expresses each participant's long and short positions as
// shares of its total open interest.
func CotPositioning(doc gjson.Result) []models.CotPositioningRow {
	rows := rowsOf(jsonx.Unwrap(doc))
	out := make([]models.CotPositioningRow, 0, len(rows))
	for _, row := range rows {
		long := jsonx.FloatOr(jsonx.First(row, "long", "longPositions", "long_positions"), 0)
		short := jsonx.FloatOr(jsonx.First(row, "short", "shortPositions", "short_positions"), 0)

		var longPct, shortPct, netPct float64
		if total := long + short; total != 0 {
			longPct = long / total * 100
			shortPct = short / total * 100
			netPct = (long - short) / total * 100
		}
		out = append(out, models.CotPositioningRow{
			Participant:  jsonx.StringOr(jsonx.First(row, "participant", "name", "category", "type"), jsonx.Placeholder),
			Long:         long,
			Short:        short,
			LongPercent:  Percent3(longPct),
			ShortPercent: Percent3(shortPct),
			NetPercent:   Percent3(netPct),
		})
	}
	return out
}
