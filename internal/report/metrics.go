package report

import (
	"fmt"
	"strings"

	"github.com/Debelvoir/HYAB-6.2/internal/commentary"
)

const summaryRows = 10 // rows per list fed into the prompt

// BuildMetrics condenses a report into the prompt-ready summary for the
// commentary generator.
func BuildMetrics(r *Report) commentary.Metrics {
	return commentary.Metrics{
		CurrentLabel: r.CurrentLabel,
		PrevLabel:    r.PrevLabel,

		TotalLTM: r.TotalLTM,
		PrevLTM:  r.PrevLTM,
		YoYChg:   r.YoYChg,
		YoYPct:   r.YoYPct,

		ActiveCustomers: r.ActiveCustomers,
		ChurnedCount:    len(r.Cohorts.Churned),
		ChurnLoss:       r.Cohorts.ChurnLoss(),
		NewCount:        len(r.Cohorts.New),
		NewGain:         r.Cohorts.NewGain(),
		GrowingCount:    len(r.Cohorts.Growing),
		GrowthGain:      r.Cohorts.GrowthGain(),
		DecliningCount:  len(r.Cohorts.Declining),
		DeclineLoss:     r.Cohorts.DeclineLoss(),

		ConcentrationPct: r.CustomerConcentration,

		LTMTrendSummary:      ltmTrendSummary(r),
		TopChurned:           churnedSummary(r),
		AtRiskSummary:        atRiskSummary(r),
		TopGrowing:           growingSummary(r),
		ChurnTimelineSummary: churnTimelineSummary(r),
		IndustryAnalysis:     industrySummary(r),
	}
}

func ltmTrendSummary(r *Report) string {
	var b strings.Builder
	for i, label := range r.LTMTrend.Labels {
		fmt.Fprintf(&b, "%s: %.1f MSEK\n", label, r.LTMTrend.Values[i]/1e6)
	}
	return strings.TrimRight(b.String(), "\n")
}

func churnedSummary(r *Report) string {
	var b strings.Builder
	for i, rec := range r.Cohorts.Churned {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(&b, "%s: was %.0f kSEK, last active %s\n",
			rec.Customer, rec.Previous/1e3, rec.LastMonth)
	}
	return strings.TrimRight(b.String(), "\n")
}

func atRiskSummary(r *Report) string {
	var b strings.Builder
	for i, rec := range r.Trajectories.AtRisk {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(&b, "%s: %.0f kSEK, down %.0f%% from peak, %d straight declining periods\n",
			rec.Customer, rec.Current/1e3, rec.DeclinePct, rec.ConsecutiveMonths)
	}
	return strings.TrimRight(b.String(), "\n")
}

func growingSummary(r *Report) string {
	var b strings.Builder
	for i, rec := range r.Cohorts.Growing {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(&b, "%s: %.0f kSEK, up %+.0f kSEK (%+.0f%%)\n",
			rec.Customer, rec.Current/1e3, rec.Change/1e3, rec.Pct)
	}
	return strings.TrimRight(b.String(), "\n")
}

func churnTimelineSummary(r *Report) string {
	var b strings.Builder
	for _, bucket := range r.Cohorts.ChurnTimeline {
		fmt.Fprintf(&b, "%s: %d customers, %.0f kSEK\n",
			bucket.Month, bucket.Count, bucket.Total/1e3)
	}
	return strings.TrimRight(b.String(), "\n")
}

func industrySummary(r *Report) string {
	var b strings.Builder
	for _, row := range r.Industries {
		fmt.Fprintf(&b, "%s: %.1f MSEK (%+.1f%% YoY), %d customers, churned %.0f kSEK, new %.0f kSEK\n",
			row.Industry, row.CurrLTM/1e6, row.ChangePct, row.Count,
			row.ChurnedRev/1e3, row.NewRev/1e3)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Spark renders a value series as a block-character sparkline.
func Spark(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - min) / span * float64(len(blocks)-1))
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
