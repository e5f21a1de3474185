package transform

import (
	"math"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"
	"PMTerminal/pkg/util"

	"github.com/tidwall/gjson"
)

const (
	targetBinWidth = 0.345
	minBins        = 10
	maxBins        = 20
)

// RangeProbability buckets high-low ranges by their percentage deviation
// from the mean range.
func RangeProbability(doc gjson.Result) models.RangeProbability {
	ranges := rangesOf(jsonx.Unwrap(doc))
	out := models.RangeProbability{Rows: []models.HistogramRow{}, Total: len(ranges)}
	if len(ranges) == 0 {
		return out
	}

	mean := meanOf(ranges)
	devs := make([]float64, len(ranges))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, r := range ranges {
		if mean != 0 {
			devs[i] = (r - mean) / mean * 100
		}
		lo = math.Min(lo, devs[i])
		hi = math.Max(hi, devs[i])
	}

	pad := math.Max((hi-lo)*0.02, 0.01)
	lo -= pad
	hi += pad
	span := hi - lo

	bins := int(math.Ceil(span / targetBinWidth))
	if bins < minBins {
		bins = minBins
	}
	if bins > maxBins {
		bins = maxBins
	}
	width := span / float64(bins)

	counts := make([]int, bins)
	for _, d := range devs {
		idx := int(math.Floor((d - lo) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	total := float64(len(devs))
	cum := 0
	out.Rows = make([]models.HistogramRow, bins)
	for i, c := range counts {
		cum += c
		out.Rows[i] = models.HistogramRow{
			StartValue:            Round3(lo + float64(i)*width),
			EndValue:              Round3(lo + float64(i+1)*width),
			Count:                 c,
			Probability:           Round3(float64(c) / total * 100),
			CumulativeProbability: Round3(float64(cum) / total * 100),
		}
	}
	out.MeanRange = Round3(mean)
	out.BinWidth = Round3(width)
	return out
}

// rangesOf reads high-low ranges from parallel high/low arrays, bare
// numbers, or rows carrying a range or high and low members.
func rangesOf(body gjson.Result) []float64 {
	if highs, lows := body.Get("high"), body.Get("low"); highs.IsArray() && lows.IsArray() {
		h, l := highs.Array(), lows.Array()
		out := make([]float64, 0, len(h))
		for i := 0; i < len(h) && i < len(l); i++ {
			hv, ok1 := jsonx.Float(h[i])
			lv, ok2 := jsonx.Float(l[i])
			if ok1 && ok2 {
				out = append(out, hv-lv)
			}
		}
		return out
	}
	if r := jsonx.First(body, "ranges"); r.IsArray() {
		return jsonx.Floats(r)
	}

	rows := rowsOf(body)
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := jsonx.Float(row); ok {
			out = append(out, v)
			continue
		}
		if v, ok := highToLow(row); ok {
			out = append(out, v)
		}
	}
	return out
}

func highToLow(row gjson.Result) (float64, bool) {
	if v, ok := jsonx.Float(jsonx.First(row, "highToLow", "high_to_low", "range", "highLow")); ok {
		return v, true
	}
	h, ok1 := jsonx.Float(jsonx.First(row, "high", "h"))
	l, ok2 := jsonx.Float(jsonx.First(row, "low", "l"))
	if ok1 && ok2 {
		return h - l, true
	}
	return 0, false
}

// Average-range grouping modes.
const (
	ModeDaily   = "daily"
	ModeWeekly  = "weekly"
	ModeMonthly = "monthly"
)

var (
	dayLabels   = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	weekLabels  = []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}
	monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// AverageRange averages high-to-low and ATR samples per calendar bucket:
// UTC weekday (daily), week of month (weekly) or month (monthly). The row set
// is fixed per mode; empty buckets report zeros. Unknown modes fall back to daily.
func AverageRange(doc gjson.Result, mode string) models.AverageRangeHistogram {
	labels, bucket := bucketsFor(mode)
	if mode != ModeWeekly && mode != ModeMonthly {
		mode = ModeDaily
	}

	sumHL := make([]float64, len(labels))
	sumATR := make([]float64, len(labels))
	counts := make([]int, len(labels))

	for _, row := range rowsOf(jsonx.Unwrap(doc)) {
		t, ok := timeOf(jsonx.First(row, "date", "datetime", "time", "timestamp"))
		if !ok {
			continue
		}
		hl, _ := highToLow(row)
		atr := jsonx.FloatOr(jsonx.First(row, "atr", "ATR"), 0)
		b := bucket(t)
		sumHL[b] += hl
		sumATR[b] += atr
		counts[b]++
	}

	out := models.AverageRangeHistogram{Mode: mode, Rows: make([]models.AverageRangeRow, len(labels))}
	for i, label := range labels {
		row := models.AverageRangeRow{Label: label, Samples: counts[i]}
		if counts[i] > 0 {
			row.HighToLow = Round3(sumHL[i] / float64(counts[i]))
			row.ATR = Round3(sumATR[i] / float64(counts[i]))
		}
		out.Rows[i] = row
	}
	return out
}

func bucketsFor(mode string) ([]string, func(time.Time) int) {
	switch mode {
	case ModeWeekly:
		return weekLabels, func(t time.Time) int { return util.WeekOfMonth(t) - 1 }
	case ModeMonthly:
		return monthLabels, func(t time.Time) int { return int(t.Month()) - 1 }
	default:
		return dayLabels, func(t time.Time) int { return int(t.UTC().Weekday()) }
	}
}
