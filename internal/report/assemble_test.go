package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

func fixtureDataset() *model.Dataset {
	curr, prev := "LTM 25-nov", "LTM 24-nov"
	keys := []string{
		prev, "LTM 24-dec", "LTM 25-jan", "LTM 25-feb", "LTM 25-mar",
		"LTM 25-apr", "LTM 25-maj", "LTM 25-jun", "LTM 25-jul",
		"LTM 25-aug", "LTM 25-sep", "LTM 25-okt", curr,
	}

	grower := &model.Entity{
		ID: "Volvo Trucks AB", Name: "Volvo Trucks AB",
		Monthly: map[string]float64{"2025-10": 90000, "2025-11": 100000},
		LTM:     map[string]float64{},
	}
	churner := &model.Entity{
		ID: "Borta AB", Name: "Borta AB",
		Monthly: map[string]float64{"2025-02": 20000},
		LTM:     map[string]float64{prev: 300000},
	}
	for i, k := range keys {
		grower.LTM[k] = 900000 + float64(i)*10000
	}

	ds := &model.Dataset{
		Articles: []*model.Entity{
			{ID: "A100", Name: "Neodymmagnet", Monthly: map[string]float64{
				"2024-11": 70000, "2025-10": 90000, "2025-11": 100000,
			}, LTM: map[string]float64{curr: 800000}},
		},
		Customers:     []*model.Entity{grower, churner},
		MonthlyTotals: map[string]float64{"2024-11": 70000, "2025-10": 90000, "2025-11": 100000},
		LTMTrend:      map[string]float64{},
		MonthKeys:     []string{"2024-11", "2025-10", "2025-11"},
		LTMKeys:       keys,
	}
	for _, c := range ds.Customers {
		for k, v := range c.LTM {
			ds.LTMTrend[k] += v
		}
	}
	return ds
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	r := Assemble(fixtureDataset(), Options{})

	if r.CurrentLabel != "Nov 25" {
		t.Fatalf("current label: %q", r.CurrentLabel)
	}
	// 13 keys: offset 13 clamps to the oldest, the year-earlier period
	if r.PrevLabel != "Nov 24" {
		t.Fatalf("prev label: %q", r.PrevLabel)
	}
	if r.TotalLTM != 1020000 {
		t.Fatalf("total ltm: %v", r.TotalLTM)
	}
	if r.PrevLTM != 1200000 {
		t.Fatalf("prev ltm: %v", r.PrevLTM)
	}
	if r.YoYChg != -180000 {
		t.Fatalf("yoy change: %v", r.YoYChg)
	}
	if r.ActiveCustomers != 1 {
		t.Fatalf("active customers: %d", r.ActiveCustomers)
	}
	if len(r.Cohorts.Churned) != 1 || len(r.Cohorts.Growing) != 1 {
		t.Fatalf("cohorts: %+v", r.Cohorts)
	}
	if len(r.LTMTrend.Labels) != 13 {
		t.Fatalf("ltm series: %v", r.LTMTrend.Labels)
	}
	if len(r.Monthly.Labels) != 3 {
		t.Fatalf("monthly series: %v", r.Monthly.Labels)
	}
	if len(r.Decomposition) != 12 {
		t.Fatalf("decomposition points: %d", len(r.Decomposition))
	}
	if r.Commentary == nil {
		t.Fatalf("commentary map must be initialized")
	}
}

func TestAssemble_YoYSeries(t *testing.T) {
	t.Parallel()

	r := Assemble(fixtureDataset(), Options{})
	if len(r.YoY) != 2 {
		t.Fatalf("yoy years: %+v", r.YoY)
	}
	if r.YoY[0].Year != "2024" || r.YoY[1].Year != "2025" {
		t.Fatalf("year order: %+v", r.YoY)
	}
	if r.YoY[0].Values[10] != 70000 {
		t.Fatalf("nov 2024 value: %v", r.YoY[0].Values[10])
	}
	if r.YoY[1].Values[0] != 0 {
		t.Fatalf("missing months must be zero, got %v", r.YoY[1].Values[0])
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := Assemble(fixtureDataset(), Options{})
	r.Commentary = map[string]string{
		"summary": "A solid period with concentrated churn risk.",
	}

	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		t.Fatalf("render: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"HYAB Sales Intelligence",
		"Nov 25",
		"Volvo Trucks AB",
		"A solid period with concentrated churn risk.",
		"ltmChart",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered dashboard missing %q", want)
		}
	}
}

func TestSpark(t *testing.T) {
	t.Parallel()

	s := Spark([]float64{0, 50, 100})
	if got := []rune(s); len(got) != 3 || got[0] != '▁' || got[2] != '█' {
		t.Fatalf("spark: %q", s)
	}

	if Spark(nil) != "" {
		t.Fatalf("empty input must yield empty sparkline")
	}

	flat := Spark([]float64{5, 5, 5})
	if flat != "▁▁▁" {
		t.Fatalf("flat spark: %q", flat)
	}
}

func TestBuildMetrics(t *testing.T) {
	t.Parallel()

	r := Assemble(fixtureDataset(), Options{})
	m := BuildMetrics(r)

	if m.CurrentLabel != "Nov 25" || m.PrevLabel != "Nov 24" {
		t.Fatalf("labels: %q %q", m.CurrentLabel, m.PrevLabel)
	}
	if m.ChurnedCount != 1 || m.ChurnLoss != 300000 {
		t.Fatalf("churn metrics: %d %v", m.ChurnedCount, m.ChurnLoss)
	}
	if !strings.Contains(m.TopChurned, "Borta AB") {
		t.Fatalf("churn summary: %q", m.TopChurned)
	}
	if !strings.Contains(m.LTMTrendSummary, "Nov 25") {
		t.Fatalf("trend summary: %q", m.LTMTrendSummary)
	}
}
