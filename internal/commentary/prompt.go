package commentary

import (
	"fmt"
	"strings"
)

// sectionKeys lists the JSON keys the model is asked to fill. The dashboard
// looks sections up by these exact names, so the prompt and the template must
// stay in sync.
var sectionKeys = []string{
	"summary",
	"ltm_trend",
	"monthly_sales",
	"yoy_comparison",
	"decomposition",
	"churn_timeline",
	"revenue_bridge",
	"cohorts",
	"industry_analysis",
	"at_risk",
	"top_customers",
	"strategic_recommendations",
}

// buildPrompt renders the metrics summary into the analyst prompt. Amounts
// are stated in MSEK to keep the numbers readable.
func buildPrompt(m Metrics) string {
	var b strings.Builder

	b.WriteString("You are a senior business analyst reviewing the sales ledger of HYAB Magneter AB, ")
	b.WriteString("a Swedish industrial supplier of magnets and magnet systems. ")
	b.WriteString("Write concise commentary for an executive dashboard. Be specific, cite numbers, ")
	b.WriteString("and flag risks plainly. All amounts are SEK.\n\n")

	b.WriteString("== KEY METRICS ==\n")
	fmt.Fprintf(&b, "Current period: %s, prior period: %s\n", m.CurrentLabel, m.PrevLabel)
	fmt.Fprintf(&b, "LTM revenue: %.1f MSEK (prior %.1f MSEK, change %+.1f MSEK / %+.1f%%)\n",
		m.TotalLTM/1e6, m.PrevLTM/1e6, m.YoYChg/1e6, m.YoYPct)
	fmt.Fprintf(&b, "Active customers: %d\n", m.ActiveCustomers)
	fmt.Fprintf(&b, "Churned: %d customers, -%.1f MSEK\n", m.ChurnedCount, m.ChurnLoss/1e6)
	fmt.Fprintf(&b, "Declining: %d customers, -%.1f MSEK\n", m.DecliningCount, m.DeclineLoss/1e6)
	fmt.Fprintf(&b, "Growing: %d customers, +%.1f MSEK\n", m.GrowingCount, m.GrowthGain/1e6)
	fmt.Fprintf(&b, "New: %d customers, +%.1f MSEK\n", m.NewCount, m.NewGain/1e6)
	fmt.Fprintf(&b, "Top-20 customer concentration: %.1f%% of LTM revenue\n\n", m.ConcentrationPct)

	writeSection(&b, "LTM TREND", m.LTMTrendSummary)
	writeSection(&b, "LARGEST CHURNED CUSTOMERS", m.TopChurned)
	writeSection(&b, "AT-RISK CUSTOMERS", m.AtRiskSummary)
	writeSection(&b, "FASTEST GROWING CUSTOMERS", m.TopGrowing)
	writeSection(&b, "CHURN TIMELINE", m.ChurnTimelineSummary)
	writeSection(&b, "INDUSTRY BREAKDOWN", m.IndustryAnalysis)

	b.WriteString("== OUTPUT FORMAT ==\n")
	b.WriteString("Respond with a single JSON object and nothing else. Keys:\n")
	for _, k := range sectionKeys {
		fmt.Fprintf(&b, "  %q", k)
		if k == "strategic_recommendations" {
			b.WriteString(": array of 3-5 short action items")
		} else if k == "summary" {
			b.WriteString(": 3-4 sentence executive summary")
		} else {
			b.WriteString(": 2-3 sentences for that chart")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "== %s ==\n%s\n\n", title, body)
}
