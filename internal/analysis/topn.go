package analysis

import (
	"sort"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// TopNSize is the fixed size of the concentration tables.
const TopNSize = 20

// TopArticles returns the highest-revenue articles for one LTM period.
// Articles with no revenue in the period are excluded.
func TopArticles(ds *model.Dataset, key string) []model.ArticleRank {
	ranks := make([]model.ArticleRank, 0, len(ds.Articles))
	for _, a := range ds.Articles {
		if v := a.LTMValue(key); v > 0 {
			ranks = append(ranks, model.ArticleRank{ArticleNo: a.ID, Name: a.Name, Value: v})
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Value > ranks[j].Value })
	if len(ranks) > TopNSize {
		ranks = ranks[:TopNSize]
	}
	return ranks
}

// TopCustomers returns the highest-revenue customers for the current period,
// with the prior-period value and delta for YoY display.
func TopCustomers(ds *model.Dataset, curr, prev string) []model.CustomerRank {
	ranks := make([]model.CustomerRank, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		curV := c.LTMValue(curr)
		if curV <= 0 {
			continue
		}
		preV := c.LTMValue(prev)
		ranks = append(ranks, model.CustomerRank{
			Customer: c.ID,
			Current:  curV,
			Previous: preV,
			Change:   curV - preV,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Current > ranks[j].Current })
	if len(ranks) > TopNSize {
		ranks = ranks[:TopNSize]
	}
	return ranks
}

// CustomerConcentration is the top-20 share of the total current-period
// aggregate, as a percentage.
func CustomerConcentration(top []model.CustomerRank, total float64) float64 {
	if total <= 0 {
		return 0
	}
	var sum float64
	for _, r := range top {
		sum += r.Current
	}
	return sum / total * 100
}

// ArticleConcentration is the top-article share of the total, as a percentage.
func ArticleConcentration(top []model.ArticleRank, total float64) float64 {
	if total <= 0 {
		return 0
	}
	var sum float64
	for _, r := range top {
		sum += r.Value
	}
	return sum / total * 100
}
