package transform

import (
	"sort"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"
	"PMTerminal/pkg/util"

	"github.com/tidwall/gjson"
)

// RiskReversals merges the put-side (MRR) and call-side (MO) series by their
// raw datetime string. Points are ordered chronologically; a side missing
// for a date reports 0 and unparseable dates are dropped.
func RiskReversals(doc gjson.Result) []models.RiskReversalPoint {
	body := jsonx.Unwrap(doc)

	type merged struct {
		at        time.Time
		raw       string
		put, call float64
	}
	byRaw := make(map[string]*merged)
	order := make([]*merged, 0)

	add := func(series gjson.Result, put bool) {
		dates := series.Get("datetime").Array()
		values := series.Get("value").Array()
		for i, d := range dates {
			raw := d.String()
			m, ok := byRaw[raw]
			if !ok {
				at, parsed := util.ParseDate(raw)
				if !parsed {
					continue
				}
				m = &merged{at: at, raw: raw}
				byRaw[raw] = m
				order = append(order, m)
			}
			var v float64
			if i < len(values) {
				v = jsonx.FloatOr(values[i], 0)
			}
			if put {
				m.put = v
			} else {
				m.call = v
			}
		}
	}
	add(body.Get("MRR"), true)
	add(body.Get("MO"), false)

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].at.Equal(order[j].at) {
			return order[i].raw < order[j].raw
		}
		return order[i].at.Before(order[j].at)
	})

	out := make([]models.RiskReversalPoint, len(order))
	for i, m := range order {
		out[i] = models.RiskReversalPoint{
			Date: m.at.Format("Jan 2"),
			Put:  Round3(m.put),
			Call: Round3(m.call),
		}
	}
	return out
}
