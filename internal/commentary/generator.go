// Package commentary wraps the external language-model call that produces
// narrative text for the dashboard. The collaborator is opaque to the
// analytics core: it either returns a flat section->text mapping or it
// returns nothing, and the report renders identically either way.
package commentary

import "context"

// Metrics is the structured summary handed to the generator. Every field is
// already computed and formatted by the report assembler; the generator never
// touches the Dataset.
type Metrics struct {
	CurrentLabel string
	PrevLabel    string

	TotalLTM float64
	PrevLTM  float64
	YoYChg   float64
	YoYPct   float64

	ActiveCustomers int
	ChurnedCount    int
	ChurnLoss       float64
	NewCount        int
	NewGain         float64
	GrowingCount    int
	GrowthGain      float64
	DecliningCount  int
	DeclineLoss     float64

	ConcentrationPct float64

	// Pre-rendered multi-line summaries for the prompt.
	LTMTrendSummary      string
	TopChurned           string
	AtRiskSummary        string
	TopGrowing           string
	ChurnTimelineSummary string
	IndustryAnalysis     string
}

// Generator produces per-section commentary for a metrics summary.
// Implementations must be fail-open: any transport, status or parse problem
// yields an error and the caller degrades to an empty commentary map; it must
// never abort report generation.
type Generator interface {
	Generate(ctx context.Context, m Metrics) (map[string]string, error)
}

// NopGenerator returns no commentary. Used when no API key is configured.
type NopGenerator struct{}

func (NopGenerator) Generate(ctx context.Context, m Metrics) (map[string]string, error) {
	return map[string]string{}, nil
}
