// Package analysis holds the pure functions that turn a normalized Dataset
// into classified customer movements, decline trajectories, revenue-change
// attribution, sector aggregates and top-N rankings. Nothing here mutates the
// Dataset.
package analysis

import (
	"sort"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// unknownBucket labels churned customers whose monthly series never shows activity.
const unknownBucket = "Unknown"

// AnalyzeCohorts partitions every customer into churned / declining / growing /
// new for the (curr, prev) LTM pair. The four conditions are exhaustive and
// mutually exclusive over customers with any movement; customers flat at zero
// or exactly unchanged are excluded.
func AnalyzeCohorts(ds *model.Dataset, curr, prev string) *model.Cohorts {
	c := &model.Cohorts{}

	for _, cust := range ds.Customers {
		curV := cust.LTMValue(curr)
		preV := cust.LTMValue(prev)
		chg := curV - preV

		switch {
		case preV > 0 && curV == 0:
			c.Churned = append(c.Churned, model.CohortRecord{
				Customer:  cust.ID,
				Previous:  preV,
				Current:   curV,
				Change:    chg,
				LastMonth: lastActiveMonth(cust),
			})
		case preV == 0 && curV > 0:
			c.New = append(c.New, model.CohortRecord{
				Customer: cust.ID,
				Current:  curV,
			})
		case chg < 0:
			c.Declining = append(c.Declining, model.CohortRecord{
				Customer: cust.ID,
				Previous: preV,
				Current:  curV,
				Change:   chg,
				Pct:      pctChange(chg, preV),
			})
		case chg > 0:
			c.Growing = append(c.Growing, model.CohortRecord{
				Customer: cust.ID,
				Previous: preV,
				Current:  curV,
				Change:   chg,
				Pct:      pctChange(chg, preV),
			})
		}
	}

	// Fixed sort orders keep the output deterministic and put the biggest
	// movements on top of each table.
	sort.SliceStable(c.Churned, func(i, j int) bool { return c.Churned[i].Previous > c.Churned[j].Previous })
	sort.SliceStable(c.Declining, func(i, j int) bool { return c.Declining[i].Change < c.Declining[j].Change })
	sort.SliceStable(c.Growing, func(i, j int) bool { return c.Growing[i].Change > c.Growing[j].Change })
	sort.SliceStable(c.New, func(i, j int) bool { return c.New[i].Current > c.New[j].Current })

	c.ChurnTimeline = buildChurnTimeline(c.Churned)

	return c
}

// lastActiveMonth finds the most recent calendar month with revenue, scanning
// the monthly series in reverse chronological order. "" when none.
func lastActiveMonth(cust *model.Entity) string {
	months := make([]string, 0, len(cust.Monthly))
	for m := range cust.Monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	for i := len(months) - 1; i >= 0; i-- {
		if cust.Monthly[months[i]] > 0 {
			return months[i]
		}
	}
	return ""
}

// buildChurnTimeline groups churned records by their last active month,
// chronological with the Unknown bucket last.
func buildChurnTimeline(churned []model.CohortRecord) []model.ChurnBucket {
	byMonth := make(map[string]*model.ChurnBucket)
	for _, r := range churned {
		m := r.LastMonth
		if m == "" {
			m = unknownBucket
		}
		b, ok := byMonth[m]
		if !ok {
			b = &model.ChurnBucket{Month: m}
			byMonth[m] = b
		}
		b.Count++
		b.Total += r.Previous
	}

	buckets := make([]model.ChurnBucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Month == unknownBucket {
			return false
		}
		if buckets[j].Month == unknownBucket {
			return true
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

func pctChange(delta, base float64) float64 {
	if base == 0 {
		return 0
	}
	return delta / base * 100
}
