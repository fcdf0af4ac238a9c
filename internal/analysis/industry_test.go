package analysis

import "testing"

func TestClassifyIndustry(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Volvo Trucks AB":        "Automotive/EV",
		"Sandvik Coromant":       "Manufacturing/Industrial",
		"Kitron Electronics":     "Electronics/Tech",
		"Gambro Lundia AB":       "Medical/Healthcare",
		"Vattenfall Vindkraft":   "Energy/Wind",
		"SSAB Oxelösund":         "Mining/Steel",
		"Tetra Pak Processing":   "Food/Packaging",
		"Skanska Bygg AB":        "Construction/Building",
		"Saab Dynamics":          "Defense/Aerospace",
		"Nordisk Transport AB":   "Logistics/Transport",
		"Okänd Handelsfirma":     "Other/General",
		"":                       "Other/General",
	}
	for name, want := range cases {
		if got := ClassifyIndustry(name); got != want {
			t.Fatalf("%q: want %q got %q", name, want, got)
		}
	}
}

func TestClassifyIndustry_FirstMatchWins(t *testing.T) {
	t.Parallel()

	// "volvo" (Automotive/EV) is checked before "verkstad" (Manufacturing)
	if got := ClassifyIndustry("Volvo Verkstad AB"); got != "Automotive/EV" {
		t.Fatalf("got %q", got)
	}
}

func TestAnalyzeIndustries(t *testing.T) {
	t.Parallel()

	curr, prev := "LTM 25-nov", "LTM 24-nov"
	ds := newDataset([]string{prev, curr},
		newCustomer("Volvo Trucks AB", map[string]float64{prev: 100000, curr: 120000}),
		newCustomer("Scania CV AB", map[string]float64{prev: 80000}),
		newCustomer("Polestar AB", map[string]float64{curr: 30000}),
		newCustomer("Okänd Firma", map[string]float64{prev: 10000, curr: 5000}),
		newCustomer("Vilande AB", map[string]float64{}),
	)

	rows := AnalyzeIndustries(ds, curr, prev)
	if len(rows) != 2 {
		t.Fatalf("rows: %+v", rows)
	}

	auto := rows[0]
	if auto.Industry != "Automotive/EV" {
		t.Fatalf("top sector: %q", auto.Industry)
	}
	if auto.Count != 3 {
		t.Fatalf("count: %d", auto.Count)
	}
	if auto.CurrLTM != 150000 || auto.PrevLTM != 180000 {
		t.Fatalf("sums: %v %v", auto.CurrLTM, auto.PrevLTM)
	}
	if auto.ChurnedRev != 80000 {
		t.Fatalf("churned rev: %v", auto.ChurnedRev)
	}
	if auto.NewRev != 30000 {
		t.Fatalf("new rev: %v", auto.NewRev)
	}
	if auto.GrowingRev != 20000 {
		t.Fatalf("growing rev: %v", auto.GrowingRev)
	}

	other := rows[1]
	if other.Industry != "Other/General" || other.DecliningRev != 5000 {
		t.Fatalf("other sector: %+v", other)
	}
}
