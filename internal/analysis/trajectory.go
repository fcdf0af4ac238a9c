package analysis

import (
	"sort"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

const (
	// DefaultTrajectoryWindow is the number of trailing LTM periods scanned.
	DefaultTrajectoryWindow = 6
	// DefaultMaterialityFloor excludes accounts whose window peak never
	// reaches this value; tiny accounts produce noise, not signal.
	DefaultMaterialityFloor = 50000
	// trajectoryCap limits each result list to the most severe entries.
	trajectoryCap = 10
)

// AnalyzeTrajectories scans each customer's LTM values over the most recent
// `window` periods for sustained decline patterns. Fewer than 3 LTM periods
// means there is nothing to detect.
func AnalyzeTrajectories(ds *model.Dataset, window int, floor float64) *model.Trajectories {
	if window <= 0 {
		window = DefaultTrajectoryWindow
	}
	if len(ds.LTMKeys) < 3 {
		return &model.Trajectories{}
	}

	periods := ds.LTMKeys
	if len(periods) > window {
		periods = periods[len(periods)-window:]
	}

	t := &model.Trajectories{Periods: periods}

	for _, cust := range ds.Customers {
		values := make([]float64, len(periods))
		maxV := 0.0
		for i, p := range periods {
			values[i] = cust.LTMValue(p)
			if values[i] > maxV {
				maxV = values[i]
			}
		}
		if maxV < floor {
			continue
		}

		declines := consecutiveDeclines(values)
		last := values[len(values)-1]

		if declines >= 3 && last > 0 {
			peak := peakBeforeDecline(values, declines)
			t.AtRisk = append(t.AtRisk, model.TrajectoryRecord{
				Customer:          cust.ID,
				Current:           last,
				Peak:              peak,
				DeclinePct:        declinePct(peak, last),
				ConsecutiveMonths: declines,
				Trajectory:        tail(values, 6),
			})
		}

		if strictlyDeclining(values) && len(values) >= 4 && last > 0 {
			t.ConsistentDecline = append(t.ConsistentDecline, model.TrajectoryRecord{
				Customer:   cust.ID,
				Start:      values[0],
				Current:    last,
				DeclinePct: declinePct(values[0], last),
				Trajectory: values,
			})
		}
	}

	sort.SliceStable(t.AtRisk, func(i, j int) bool {
		return t.AtRisk[i].DeclinePct > t.AtRisk[j].DeclinePct
	})
	sort.SliceStable(t.ConsistentDecline, func(i, j int) bool {
		di := t.ConsistentDecline[i].Start - t.ConsistentDecline[i].Current
		dj := t.ConsistentDecline[j].Start - t.ConsistentDecline[j].Current
		return di > dj
	})
	if len(t.AtRisk) > trajectoryCap {
		t.AtRisk = t.AtRisk[:trajectoryCap]
	}
	if len(t.ConsistentDecline) > trajectoryCap {
		t.ConsistentDecline = t.ConsistentDecline[:trajectoryCap]
	}

	return t
}

// consecutiveDeclines counts contiguous strictly-decreasing steps scanning
// backward from the most recent value; an increase or flat step breaks the run.
func consecutiveDeclines(values []float64) int {
	count := 0
	for i := len(values) - 1; i > 0; i-- {
		if values[i] < values[i-1] {
			count++
		} else {
			break
		}
	}
	return count
}

// strictlyDeclining reports whether every step is strictly down, judged only
// where the earlier value is positive (a zero start says nothing about decline).
func strictlyDeclining(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > 0 && values[i] >= values[i-1] {
			return false
		}
	}
	return true
}

// peakBeforeDecline is the maximum value preceding the declining run, or the
// window start when the run spans the whole window.
func peakBeforeDecline(values []float64, declines int) float64 {
	if len(values) <= declines {
		return values[0]
	}
	peak := values[0]
	for _, v := range values[:len(values)-declines] {
		if v > peak {
			peak = v
		}
	}
	return peak
}

func declinePct(peak, current float64) float64 {
	if peak <= 0 {
		return 0
	}
	return (peak - current) / peak * 100
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
