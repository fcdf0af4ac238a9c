package analysis

import "github.com/Debelvoir/HYAB-6.2/internal/model"

// test fixtures shared by the analysis tests

func newCustomer(id string, ltm map[string]float64) *model.Entity {
	return &model.Entity{
		ID:      id,
		Name:    id,
		Monthly: map[string]float64{},
		Fiscal:  map[string]float64{},
		LTM:     ltm,
	}
}

// newDataset wires customers into a Dataset and derives the LTM aggregate the
// way the parser does.
func newDataset(keys []string, customers ...*model.Entity) *model.Dataset {
	ds := &model.Dataset{
		Customers:     customers,
		MonthlyTotals: map[string]float64{},
		LTMTrend:      map[string]float64{},
		LTMKeys:       keys,
	}
	for _, c := range customers {
		for k, v := range c.LTM {
			ds.LTMTrend[k] += v
		}
	}
	return ds
}
