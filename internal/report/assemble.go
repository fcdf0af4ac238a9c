// Package report assembles every analysis result into a single Report and
// renders the self-contained HTML dashboard.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Debelvoir/HYAB-6.2/internal/analysis"
	"github.com/Debelvoir/HYAB-6.2/internal/model"
	"github.com/Debelvoir/HYAB-6.2/internal/parser"
)

const trendDepth = 24 // months/periods shown on the trend charts

// Options carries the tunable analysis parameters. Zero values select the
// defaults from the analysis package.
type Options struct {
	TrajectoryWindow     int
	MaterialityFloor     float64
	DecompositionPeriods int
	ComparisonOffset     int
}

func (o Options) withDefaults() Options {
	if o.TrajectoryWindow <= 0 {
		o.TrajectoryWindow = analysis.DefaultTrajectoryWindow
	}
	if o.MaterialityFloor <= 0 {
		o.MaterialityFloor = analysis.DefaultMaterialityFloor
	}
	if o.DecompositionPeriods <= 0 {
		o.DecompositionPeriods = analysis.DefaultDecompositionPeriods
	}
	if o.ComparisonOffset <= 0 {
		o.ComparisonOffset = 13
	}
	return o
}

// Series is a label-aligned value sequence for a chart.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// YearSeries holds one calendar year's monthly totals, index 0 = January.
// Months without data carry zero.
type YearSeries struct {
	Year   string    `json:"year"`
	Values []float64 `json:"values"`
}

// Report is the complete dashboard payload: headline figures, every chart
// series and table, and the optional commentary.
type Report struct {
	GeneratedAt time.Time

	CurrentLabel string
	PrevLabel    string
	TotalLTM     float64
	PrevLTM      float64
	YoYChg       float64
	YoYPct       float64

	ActiveCustomers int

	Cohorts       *model.Cohorts
	Trajectories  *model.Trajectories
	Decomposition []model.DecompositionPoint
	Industries    []model.IndustryRow

	TopCustomers          []model.CustomerRank
	TopArticles           []model.ArticleRank
	CustomerConcentration float64
	ArticleConcentration  float64

	Monthly  Series       // calendar-month totals, most recent 24
	LTMTrend Series       // rolling-window aggregate, most recent 24
	YoY      []YearSeries // monthly totals split per calendar year, last 3 years

	Commentary map[string]string
}

// Assemble runs the full analysis suite over a parsed dataset. Commentary is
// attached separately by the caller.
func Assemble(ds *model.Dataset, opts Options) *Report {
	opts = opts.withDefaults()

	curr := ds.CurrentLTM()
	prev := ds.ComparisonLTM(opts.ComparisonOffset)

	r := &Report{
		GeneratedAt:  time.Now(),
		CurrentLabel: parser.FormatLTMLabel(curr),
		PrevLabel:    parser.FormatLTMLabel(prev),
		TotalLTM:     ds.LTMTrend[curr],
		PrevLTM:      ds.LTMTrend[prev],

		ActiveCustomers: ds.ActiveCustomers(curr),

		Cohorts:       analysis.AnalyzeCohorts(ds, curr, prev),
		Trajectories:  analysis.AnalyzeTrajectories(ds, opts.TrajectoryWindow, opts.MaterialityFloor),
		Decomposition: analysis.DecomposeLTM(ds, opts.DecompositionPeriods),
		Industries:    analysis.AnalyzeIndustries(ds, curr, prev),

		TopCustomers: analysis.TopCustomers(ds, curr, prev),
		TopArticles:  analysis.TopArticles(ds, curr),

		Commentary: map[string]string{},
	}

	r.YoYChg = r.TotalLTM - r.PrevLTM
	if r.PrevLTM != 0 {
		r.YoYPct = r.YoYChg / r.PrevLTM * 100
	}
	r.CustomerConcentration = analysis.CustomerConcentration(r.TopCustomers, r.TotalLTM)
	r.ArticleConcentration = analysis.ArticleConcentration(r.TopArticles, r.TotalLTM)

	r.Monthly = monthlySeries(ds)
	r.LTMTrend = ltmSeries(ds)
	r.YoY = yoySeries(ds)
	return r
}

func monthlySeries(ds *model.Dataset) Series {
	keys := sortedMonthKeys(ds.MonthlyTotals)
	if len(keys) > trendDepth {
		keys = keys[len(keys)-trendDepth:]
	}
	s := Series{}
	for _, k := range keys {
		s.Labels = append(s.Labels, parser.FormatMonthLabel(k))
		s.Values = append(s.Values, ds.MonthlyTotals[k])
	}
	return s
}

func ltmSeries(ds *model.Dataset) Series {
	keys := append([]string(nil), ds.LTMKeys...)
	parser.SortLTMKeys(keys)
	if len(keys) > trendDepth {
		keys = keys[len(keys)-trendDepth:]
	}
	s := Series{}
	for _, k := range keys {
		s.Labels = append(s.Labels, parser.FormatLTMLabel(k))
		s.Values = append(s.Values, ds.LTMTrend[k])
	}
	return s
}

// yoySeries splits the monthly totals into per-year tracks for the overlay
// chart, keeping the three most recent calendar years.
func yoySeries(ds *model.Dataset) []YearSeries {
	byYear := map[string][]float64{}
	for key, total := range ds.MonthlyTotals {
		year, month, ok := splitMonthKey(key)
		if !ok {
			continue
		}
		if _, seen := byYear[year]; !seen {
			byYear[year] = make([]float64, 12)
		}
		byYear[year][month-1] = total
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)
	if len(years) > 3 {
		years = years[len(years)-3:]
	}

	out := make([]YearSeries, 0, len(years))
	for _, y := range years {
		out = append(out, YearSeries{Year: y, Values: byYear[y]})
	}
	return out
}

func splitMonthKey(key string) (year string, month int, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return "", 0, false
	}
	return parts[0], m, true
}

func sortedMonthKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
