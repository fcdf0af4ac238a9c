package analysis

import "testing"

func TestAnalyzeCohorts_Classification(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	ds := newDataset([]string{prev, curr},
		newCustomer("Churned AB", map[string]float64{prev: 100000}),
		newCustomer("New AB", map[string]float64{curr: 40000}),
		newCustomer("Declining AB", map[string]float64{prev: 200000, curr: 150000}),
		newCustomer("Growing AB", map[string]float64{prev: 100000, curr: 130000}),
		newCustomer("Flat AB", map[string]float64{prev: 50000, curr: 50000}),
	)

	c := AnalyzeCohorts(ds, curr, prev)

	if len(c.Churned) != 1 || c.Churned[0].Customer != "Churned AB" {
		t.Fatalf("churned: %+v", c.Churned)
	}
	if len(c.New) != 1 || c.New[0].Customer != "New AB" {
		t.Fatalf("new: %+v", c.New)
	}
	if len(c.Declining) != 1 || c.Declining[0].Customer != "Declining AB" {
		t.Fatalf("declining: %+v", c.Declining)
	}
	if len(c.Growing) != 1 || c.Growing[0].Customer != "Growing AB" {
		t.Fatalf("growing: %+v", c.Growing)
	}

	// Flat customers belong to no cohort.
	total := len(c.Churned) + len(c.New) + len(c.Declining) + len(c.Growing)
	if total != 4 {
		t.Fatalf("expected 4 classified customers, got %d", total)
	}
}

func TestAnalyzeCohorts_ChangeAndPct(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	ds := newDataset([]string{prev, curr},
		newCustomer("Declining AB", map[string]float64{prev: 200000, curr: 150000}),
	)

	c := AnalyzeCohorts(ds, curr, prev)
	d := c.Declining[0]
	if d.Change != -50000 {
		t.Fatalf("change: %v", d.Change)
	}
	if d.Pct != -25 {
		t.Fatalf("pct: %v", d.Pct)
	}
}

func TestAnalyzeCohorts_SortOrders(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	ds := newDataset([]string{prev, curr},
		newCustomer("Small churn", map[string]float64{prev: 10000}),
		newCustomer("Big churn", map[string]float64{prev: 500000}),
		newCustomer("Mild decline", map[string]float64{prev: 100000, curr: 90000}),
		newCustomer("Steep decline", map[string]float64{prev: 100000, curr: 20000}),
	)

	c := AnalyzeCohorts(ds, curr, prev)
	if c.Churned[0].Customer != "Big churn" {
		t.Fatalf("churned order: %+v", c.Churned)
	}
	if c.Declining[0].Customer != "Steep decline" {
		t.Fatalf("declining order: %+v", c.Declining)
	}
}

func TestAnalyzeCohorts_ChurnTimeline(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	early := newCustomer("Early AB", map[string]float64{prev: 100000})
	early.Monthly = map[string]float64{"2024-03": 5000, "2024-07": 3000}
	late := newCustomer("Late AB", map[string]float64{prev: 50000})
	late.Monthly = map[string]float64{"2024-11": 2000}
	noMonths := newCustomer("Silent AB", map[string]float64{prev: 30000})

	ds := newDataset([]string{prev, curr}, early, late, noMonths)
	c := AnalyzeCohorts(ds, curr, prev)

	if len(c.ChurnTimeline) != 3 {
		t.Fatalf("timeline buckets: %+v", c.ChurnTimeline)
	}
	if c.ChurnTimeline[0].Month != "2024-07" {
		t.Fatalf("first bucket: %+v", c.ChurnTimeline[0])
	}
	if c.ChurnTimeline[1].Month != "2024-11" {
		t.Fatalf("second bucket: %+v", c.ChurnTimeline[1])
	}
	// customers with no monthly activity land in the trailing Unknown bucket
	lastBucket := c.ChurnTimeline[len(c.ChurnTimeline)-1]
	if lastBucket.Month != "Unknown" || lastBucket.Total != 30000 {
		t.Fatalf("unknown bucket: %+v", lastBucket)
	}
}

func TestCohortAggregates(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	ds := newDataset([]string{prev, curr},
		newCustomer("Churned AB", map[string]float64{prev: 100000}),
		newCustomer("New AB", map[string]float64{curr: 40000}),
		newCustomer("Declining AB", map[string]float64{prev: 200000, curr: 150000}),
		newCustomer("Growing AB", map[string]float64{prev: 100000, curr: 130000}),
	)

	c := AnalyzeCohorts(ds, curr, prev)
	if c.ChurnLoss() != 100000 {
		t.Fatalf("churn loss: %v", c.ChurnLoss())
	}
	if c.DeclineLoss() != 50000 {
		t.Fatalf("decline loss: %v", c.DeclineLoss())
	}
	if c.GrowthGain() != 30000 {
		t.Fatalf("growth gain: %v", c.GrowthGain())
	}
	if c.NewGain() != 40000 {
		t.Fatalf("new gain: %v", c.NewGain())
	}
}
