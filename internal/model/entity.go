package model

// Entity is one row of the master file: an article or a customer, with three
// independent time series keyed by period label.
//   - Monthly: calendar months, keys "YYYY-MM"
//   - Fiscal:  fiscal-year and YTD aggregates, keys "FY2024", "YTD", ...
//   - LTM:     trailing-twelve-month totals, keys "LTM 25-nov", ...
//
// Only numeric, non-zero cells are stored; a missing key means "no amount",
// never zero.
type Entity struct {
	ID      string             `json:"id"`   // article number, or customer name
	Name    string             `json:"name"` // display name
	Monthly map[string]float64 `json:"monthly"`
	Fiscal  map[string]float64 `json:"fiscal"`
	LTM     map[string]float64 `json:"ltm"`
}

// HasActivity reports whether the entity carries any monthly or fiscal value.
// Rows without activity are blank trailing rows and are discarded at parse time.
func (e *Entity) HasActivity() bool {
	return len(e.Monthly) > 0 || len(e.Fiscal) > 0
}

// LTMValue returns the LTM value at key, or 0 when absent.
func (e *Entity) LTMValue(key string) float64 {
	return e.LTM[key]
}

// Dataset is the normalized in-memory model built once per report generation.
// MonthlyTotals sums article series per calendar month; LTMTrend sums customer
// series per LTM label. The two source tables are the same ledger viewed from
// two angles; totals are computed from the table complete for that axis.
type Dataset struct {
	Articles  []*Entity `json:"articles"`
	Customers []*Entity `json:"customers"`

	MonthlyTotals map[string]float64 `json:"monthlyTotals"`
	LTMTrend      map[string]float64 `json:"ltmTrend"`

	// Key slices in chronological order; maps alone lose ordering.
	MonthKeys []string `json:"monthKeys"`
	LTMKeys   []string `json:"ltmKeys"`
}

// CurrentLTM returns the most recent LTM key, or "" when no LTM data exists.
func (d *Dataset) CurrentLTM() string {
	if len(d.LTMKeys) == 0 {
		return ""
	}
	return d.LTMKeys[len(d.LTMKeys)-1]
}

// ComparisonLTM returns the LTM key offset steps back from the most recent one,
// clamped to the oldest available. With a monthly-cadence series offset 13
// approximates "same month, prior year"; that is a convention, not a guarantee,
// so the offset is a parameter.
func (d *Dataset) ComparisonLTM(offset int) string {
	if len(d.LTMKeys) == 0 {
		return ""
	}
	idx := len(d.LTMKeys) - offset
	if idx < 0 {
		idx = 0
	}
	return d.LTMKeys[idx]
}

// ActiveCustomers counts customers with revenue in the given LTM period.
func (d *Dataset) ActiveCustomers(key string) int {
	n := 0
	for _, c := range d.Customers {
		if c.LTMValue(key) > 0 {
			n++
		}
	}
	return n
}
