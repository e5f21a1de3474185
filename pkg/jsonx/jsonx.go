// Package jsonx provides get-with-default access to untyped upstream JSON.
//
// Upstream payloads have no shared schema: fields go missing, numbers arrive
// as strings and rows sit at the root or under a wrapper key. Every accessor
// here returns a usable zero value instead of an error.
package jsonx

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Placeholder is shown for text fields the upstream did not provide.
const Placeholder = "—"

// rowKeys are the wrapper members searched for row arrays, in order.
var rowKeys = []string{"data", "results", "items", "rows"}

// Parse returns the parsed document, or an empty result when b is not valid JSON.
func Parse(b []byte) gjson.Result {
	if len(b) == 0 || !gjson.ValidBytes(b) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(b)
}

// Unwrap returns the "data" member when present, otherwise r itself.
func Unwrap(r gjson.Result) gjson.Result {
	if r.IsObject() {
		if d := r.Get("data"); d.Exists() {
			return d
		}
	}
	return r
}

// Rows locates the row array of a payload: the root array, or the first
// wrapper member holding an array. Nested wrappers ({"data":{"rows":[]}}) are
// followed one level deep.
func Rows(r gjson.Result) []gjson.Result {
	if r.IsArray() {
		return r.Array()
	}
	if !r.IsObject() {
		return nil
	}
	for _, k := range rowKeys {
		v := r.Get(k)
		if v.IsArray() {
			return v.Array()
		}
		if v.IsObject() {
			if rows := Rows(v); rows != nil {
				return rows
			}
		}
	}
	return nil
}

// First returns the first member of r that exists among keys.
func First(r gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// Float reads a finite number from a JSON number or numeric string.
// A trailing "%" is tolerated.
func Float(r gjson.Result) (float64, bool) {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		s := strings.TrimSuffix(strings.TrimSpace(r.Str), "%")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FloatOr reads a number or returns def.
func FloatOr(r gjson.Result, def float64) float64 {
	if v, ok := Float(r); ok {
		return v
	}
	return def
}

// Floats reads every numeric element of an array, skipping the rest.
func Floats(r gjson.Result) []float64 {
	if !r.IsArray() {
		return []float64{}
	}
	arr := r.Array()
	out := make([]float64, 0, len(arr))
	for _, e := range arr {
		if v, ok := Float(e); ok {
			out = append(out, v)
		}
	}
	return out
}

// StringOr reads a non-empty string (numbers are rendered as text) or returns def.
func StringOr(r gjson.Result, def string) string {
	switch r.Type {
	case gjson.String:
		if s := strings.TrimSpace(r.Str); s != "" {
			return s
		}
	case gjson.Number:
		return r.Raw
	}
	return def
}

// BoolOr reads a boolean, accepting "true"/"false" strings and 0/1 numbers.
func BoolOr(r gjson.Result, def bool) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		if b, err := strconv.ParseBool(strings.TrimSpace(r.Str)); err == nil {
			return b
		}
	}
	return def
}
