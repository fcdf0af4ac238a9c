package model

// CohortRecord captures one customer's movement between two LTM periods.
// Ephemeral: recomputed per (current, previous) pair, never persisted.
type CohortRecord struct {
	Customer  string  `json:"customer"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Change    float64 `json:"change"`
	Pct       float64 `json:"pct"`
	LastMonth string  `json:"lastMonth,omitempty"` // churned only: last month with revenue, "" if unknown
}

// ChurnBucket aggregates churned customers by their last month of activity.
type ChurnBucket struct {
	Month string  `json:"month"` // "YYYY-MM", or "Unknown"
	Count int     `json:"count"`
	Total float64 `json:"total"` // sum of previous-period LTM lost
}

// Cohorts is the four-way partition of customers for one period pair.
// The lists are disjoint; customers flat at zero or unchanged are excluded.
type Cohorts struct {
	Churned   []CohortRecord `json:"churned"`
	Declining []CohortRecord `json:"declining"`
	Growing   []CohortRecord `json:"growing"`
	New       []CohortRecord `json:"new"`

	ChurnTimeline []ChurnBucket `json:"churnTimeline"` // chronological, "Unknown" last
}

// ChurnLoss is the total previous-period revenue of churned customers.
func (c *Cohorts) ChurnLoss() float64 {
	var sum float64
	for _, r := range c.Churned {
		sum += r.Previous
	}
	return sum
}

// DeclineLoss is the total revenue lost to declining customers, as a positive number.
func (c *Cohorts) DeclineLoss() float64 {
	var sum float64
	for _, r := range c.Declining {
		sum += r.Change
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// GrowthGain is the total revenue gained from growing customers.
func (c *Cohorts) GrowthGain() float64 {
	var sum float64
	for _, r := range c.Growing {
		sum += r.Change
	}
	return sum
}

// NewGain is the total current-period revenue of new customers.
func (c *Cohorts) NewGain() float64 {
	var sum float64
	for _, r := range c.New {
		sum += r.Current
	}
	return sum
}
