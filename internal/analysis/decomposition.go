package analysis

import "github.com/Debelvoir/HYAB-6.2/internal/model"

// DefaultDecompositionPeriods is the number of consecutive LTM pairs attributed.
const DefaultDecompositionPeriods = 12

// DecomposeLTM walks the most recent n consecutive LTM pairs and attributes
// each aggregate change to churn, decline, growth and new business using the
// same four-way classification as the cohort analysis.
//
// TotalChange is computed from the LTM trend aggregate while the components
// come from per-customer iteration; the two are deliberately not forced to
// reconcile, so a gap between them is a reproducible data artifact of the
// source tables, not an arithmetic error here.
func DecomposeLTM(ds *model.Dataset, n int) []model.DecompositionPoint {
	if n <= 0 {
		n = DefaultDecompositionPeriods
	}
	keys := ds.LTMKeys
	if len(keys) < 2 {
		return nil
	}
	// n pairs need n+1 keys.
	if len(keys) > n+1 {
		keys = keys[len(keys)-(n+1):]
	}

	points := make([]model.DecompositionPoint, 0, len(keys)-1)
	for i := 1; i < len(keys); i++ {
		currKey, prevKey := keys[i], keys[i-1]

		var churnLoss, declineLoss, growthGain, newGain float64
		for _, cust := range ds.Customers {
			curV := cust.LTMValue(currKey)
			preV := cust.LTMValue(prevKey)
			switch {
			case preV > 0 && curV == 0:
				churnLoss += preV
			case preV == 0 && curV > 0:
				newGain += curV
			case curV < preV:
				declineLoss += preV - curV
			case curV > preV:
				growthGain += curV - preV
			}
		}

		points = append(points, model.DecompositionPoint{
			Period:      currKey,
			TotalChange: ds.LTMTrend[currKey] - ds.LTMTrend[prevKey],
			Churn:       -churnLoss,
			Decline:     -declineLoss,
			Growth:      growthGain,
			New:         newGain,
		})
	}
	return points
}
