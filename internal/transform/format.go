// Package transform reshapes upstream JSON into widget payloads.
//
// Every function here is pure: no I/O, no clock reads unless the time is
// passed in, and no failure for syntactically valid input. Missing fields
// default to zero, empty arrays or jsonx.Placeholder.
package transform

import (
	"math"
	"time"

	"PMTerminal/pkg/jsonx"
	"PMTerminal/pkg/util"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Fixed3 formats v with exactly three decimals.
func Fixed3(v float64) string {
	return decimal.NewFromFloat(finite(v)).StringFixed(3)
}

// Percent3 formats v with exactly three decimals and a "%" suffix.
func Percent3(v float64) string {
	return Fixed3(v) + "%"
}

// Round3 rounds v half away from zero to three decimals.
func Round3(v float64) float64 {
	f, _ := decimal.NewFromFloat(finite(v)).Round(3).Float64()
	return f
}

// timeOf reads a timestamp from a date string or a unix seconds/millis number.
func timeOf(r gjson.Result) (time.Time, bool) {
	switch r.Type {
	case gjson.Number:
		if r.Num <= 0 {
			return time.Time{}, false
		}
		return util.FromUnix(int64(r.Num)), true
	case gjson.String:
		return util.ParseDate(r.Str)
	}
	return time.Time{}, false
}

// rowsOf unwraps doc and returns its row array.
func rowsOf(doc gjson.Result) []gjson.Result {
	rows := jsonx.Rows(doc)
	if rows == nil {
		return []gjson.Result{}
	}
	return rows
}
