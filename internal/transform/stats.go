package transform

import (
	"sort"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"

	"github.com/tidwall/gjson"
)

// DistributionStats summarizes a series of raw returns. Median and standard
// deviation come from the upstream document; every other figure is computed
// from the returns. Kurtosis is excess kurtosis.
func DistributionStats(doc gjson.Result) models.DistributionStats {
	body := jsonx.Unwrap(doc)

	var returns []float64
	if body.IsArray() {
		returns = jsonx.Floats(body)
	} else {
		returns = jsonx.Floats(jsonx.First(body, "returns", "values", "rawReturns", "data"))
	}

	n := len(returns)
	var sum, mean, minV, maxV float64
	var pos, neg int
	for i, x := range returns {
		sum += x
		if i == 0 || x < minV {
			minV = x
		}
		if i == 0 || x > maxV {
			maxV = x
		}
		if x > 0 {
			pos++
		} else if x < 0 {
			neg++
		}
	}
	if n > 0 {
		mean = sum / float64(n)
	}

	median, ok := jsonx.Float(jsonx.First(body, "median"))
	if !ok {
		median = medianOf(returns)
	}
	stdDev, hasStd := jsonx.Float(jsonx.First(body, "stdDev", "std_dev", "standardDeviation", "std"))

	var kurtosis, skewness float64
	if n > 0 && hasStd && stdDev != 0 {
		var m3, m4 float64
		for _, x := range returns {
			z := (x - mean) / stdDev
			m3 += z * z * z
			m4 += z * z * z * z
		}
		skewness = m3 / float64(n)
		kurtosis = m4/float64(n) - 3
	}

	var posPct, negPct float64
	if n > 0 {
		posPct = float64(pos) / float64(n) * 100
		negPct = float64(neg) / float64(n) * 100
	}

	return models.DistributionStats{Rows: []models.StatRow{
		{Label: "Mean", Value: Fixed3(mean)},
		{Label: "Median", Value: Fixed3(median)},
		{Label: "Mode", Value: Fixed3(modeOf(returns))},
		{Label: "Standard Deviation", Value: Fixed3(stdDev)},
		{Label: "Variance", Value: Fixed3(stdDev * stdDev)},
		{Label: "Kurtosis", Value: Fixed3(kurtosis)},
		{Label: "Skewness", Value: Fixed3(skewness)},
		{Label: "Range", Value: Fixed3(maxV - minV)},
		{Label: "Minimum", Value: Fixed3(minV)},
		{Label: "Maximum", Value: Fixed3(maxV)},
		{Label: "Sum", Value: Fixed3(sum)},
		{Label: "Count", Value: Fixed3(float64(n))},
		{Label: "Positive Returns", Value: Percent3(posPct)},
		{Label: "Negative Returns", Value: Percent3(negPct)},
	}}
}

// modeOf returns the most frequent value after rounding to 3 decimals.
// Ties go to the value seen first.
func modeOf(xs []float64) float64 {
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[Round3(x)]++
	}
	var best float64
	bestCount := 0
	for _, x := range xs {
		r := Round3(x)
		if counts[r] > bestCount {
			best, bestCount = r, counts[r]
		}
	}
	return best
}

func medianOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// meanOf returns 0 for an empty slice.
func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}
