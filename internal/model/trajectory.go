package model

// TrajectoryRecord is a customer whose LTM revenue shows a sustained decline
// over the analysis window.
type TrajectoryRecord struct {
	Customer          string    `json:"customer"`
	Current           float64   `json:"current"`
	Peak              float64   `json:"peak"`  // at-risk: max before the declining run
	Start             float64   `json:"start"` // consistent decline: first window value
	DeclinePct        float64   `json:"declinePct"`
	ConsecutiveMonths int       `json:"consecutiveMonths"`
	Trajectory        []float64 `json:"trajectory"` // trailing values for sparkline rendering
}

// Trajectories holds the multi-period decline scan results.
// AtRisk: 3+ consecutive declining periods ending at the most recent one.
// ConsistentDecline: strictly monotonic decline across the whole window.
// Both capped to the 10 most severe.
type Trajectories struct {
	AtRisk            []TrajectoryRecord `json:"atRisk"`
	ConsistentDecline []TrajectoryRecord `json:"consistentDecline"`
	Periods           []string           `json:"periods"` // the LTM window scanned
}

// DecompositionPoint attributes one LTM-over-LTM aggregate change to four
// mutually exclusive customer movements. Churn and Decline are negative;
// Growth and New positive. TotalChange comes from the separately-computed
// LTM trend aggregate and is not forced to reconcile with the components.
type DecompositionPoint struct {
	Period      string  `json:"period"`
	TotalChange float64 `json:"totalChange"`
	Churn       float64 `json:"churn"`
	Decline     float64 `json:"decline"`
	Growth      float64 `json:"growth"`
	New         float64 `json:"new"`
}

// IndustryRow aggregates cohort movement per industry sector for one period pair.
type IndustryRow struct {
	Industry     string  `json:"industry"`
	CurrLTM      float64 `json:"currLtm"`
	PrevLTM      float64 `json:"prevLtm"`
	ChangePct    float64 `json:"changePct"`
	ChurnedRev   float64 `json:"churnedRev"`
	NewRev       float64 `json:"newRev"`
	GrowingRev   float64 `json:"growingRev"`
	DecliningRev float64 `json:"decliningRev"`
	Count        int     `json:"count"`
}

// ArticleRank is one row of the top-articles table.
type ArticleRank struct {
	ArticleNo string  `json:"articleNo"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
}

// CustomerRank is one row of the top-customers table, with the prior-period
// value for YoY display.
type CustomerRank struct {
	Customer string  `json:"customer"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}
