package model

import "testing"

func TestComparisonLTM(t *testing.T) {
	t.Parallel()

	ds := &Dataset{LTMKeys: []string{
		"LTM 24-okt", "LTM 24-nov", "LTM 24-dec",
		"LTM 25-jan", "LTM 25-feb", "LTM 25-mar", "LTM 25-apr",
		"LTM 25-maj", "LTM 25-jun", "LTM 25-jul", "LTM 25-aug",
		"LTM 25-sep", "LTM 25-okt", "LTM 25-nov",
	}}

	if ds.CurrentLTM() != "LTM 25-nov" {
		t.Fatalf("current: %q", ds.CurrentLTM())
	}
	// 14 keys: offset 13 lands on the same month a year earlier
	if got := ds.ComparisonLTM(13); got != "LTM 24-nov" {
		t.Fatalf("comparison: %q", got)
	}
}

func TestComparisonLTM_ShortHistory(t *testing.T) {
	t.Parallel()

	ds := &Dataset{LTMKeys: []string{"LTM 25-sep", "LTM 25-okt", "LTM 25-nov"}}
	if got := ds.ComparisonLTM(13); got != "LTM 25-sep" {
		t.Fatalf("expected clamp to oldest, got %q", got)
	}

	empty := &Dataset{}
	if empty.ComparisonLTM(13) != "" || empty.CurrentLTM() != "" {
		t.Fatalf("empty dataset must yield empty keys")
	}
}

func TestHasActivityAndActiveCustomers(t *testing.T) {
	t.Parallel()

	active := &Entity{ID: "A", Monthly: map[string]float64{"2025-01": 10}}
	idle := &Entity{ID: "B", Monthly: map[string]float64{}, Fiscal: map[string]float64{}}
	if !active.HasActivity() || idle.HasActivity() {
		t.Fatalf("activity check failed")
	}

	ds := &Dataset{Customers: []*Entity{
		{ID: "A", LTM: map[string]float64{"LTM 25-nov": 100}},
		{ID: "B", LTM: map[string]float64{}},
	}}
	if got := ds.ActiveCustomers("LTM 25-nov"); got != 1 {
		t.Fatalf("active customers: %d", got)
	}
}
