// Package orderbook cleans the weekly Briox order-book export: currency
// conversion to SEK, invoice-status flags and customer/month rollups.
package orderbook

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
	"github.com/Debelvoir/HYAB-6.2/internal/parser"
)

// DefaultFX holds the fallback exchange rates to SEK. Callers override them
// with configured or user-supplied rates.
var DefaultFX = map[string]float64{
	"SEK": 1.0,
	"EUR": 11.30,
	"USD": 10.50,
	"GBP": 13.20,
}

// agedAfter marks orders older than this as aged in the summary.
const agedAfter = 90 * 24 * time.Hour

var sheetCandidates = []string{"Order book", "Sheet1", "Orders", "Orderbook"}

// invoice statuses that mean an order is at least partly invoiced
var partialStatuses = map[string]bool{
	"delfakt.":      true,
	"fakturerad":    true,
	"delfakturerad": true,
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"2006/01/02",
	"02.01.2006",
}

// Result is a processed order book with its derived rollups.
type Result struct {
	Orders            []model.Order
	TotalSEK          float64
	PartialOrders     int
	PartialSEK        float64
	ZeroOrders        int
	UniqueCustomers   int
	AgedOrders        int
	AgedSEK           float64
	ByCustomer        []model.OrderGroup // sorted by total desc
	ByMonth           []model.OrderGroup // sorted by month asc, "Unknown" last
	FX                map[string]float64
}

// Process reads the order-book sheet of an open workbook. Column layout is
// fixed: order number, order date, customer, status, invoice status, amount.
// Rows whose amount cell does not parse are skipped.
func Process(f *excelize.File, fx map[string]float64) (*Result, error) {
	if fx == nil {
		fx = DefaultFX
	}

	sheet := parser.FindSheet(f, sheetCandidates...)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no order book sheet (looked for %s)",
			strings.Join(sheetCandidates, ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	now := time.Now()
	res := &Result{FX: fx}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		amt, cur, ok := parser.CleanAmount(cell(row, 5))
		if !ok {
			continue
		}

		rate, known := fx[cur]
		if !known {
			rate = 1.0
		}
		invoiceStatus := cell(row, 4)
		o := model.Order{
			OrderNo:           cell(row, 0),
			Customer:          cell(row, 2),
			Status:            cell(row, 3),
			InvoiceStatus:     invoiceStatus,
			PartiallyInvoiced: partialStatuses[strings.ToLower(strings.TrimSpace(invoiceStatus))],
			OriginalAmount:    amt,
			OriginalCurrency:  cur,
			AmountSEK:         round2(amt * rate),
		}
		if d, ok := parseOrderDate(cell(row, 1)); ok {
			o.OrderDate = d
			o.HasDate = true
		}

		res.Orders = append(res.Orders, o)
		res.TotalSEK += o.AmountSEK
		if o.PartiallyInvoiced {
			res.PartialOrders++
			res.PartialSEK += o.AmountSEK
		}
		if o.AmountSEK == 0 {
			res.ZeroOrders++
		}
		if o.HasDate && now.Sub(o.OrderDate) > agedAfter && o.AmountSEK > 0 {
			res.AgedOrders++
			res.AgedSEK += o.AmountSEK
		}
	}

	res.ByCustomer, res.UniqueCustomers = groupByCustomer(res.Orders)
	res.ByMonth = groupByMonth(res.Orders)
	return res, nil
}

// groupByCustomer rolls up orders with value per customer, sorted by total
// descending. The customer count covers all orders, zero-value included.
func groupByCustomer(orders []model.Order) ([]model.OrderGroup, int) {
	seen := map[string]bool{}
	agg := map[string]*model.OrderGroup{}
	for _, o := range orders {
		seen[o.Customer] = true
		if o.AmountSEK <= 0 {
			continue
		}
		g := agg[o.Customer]
		if g == nil {
			g = &model.OrderGroup{Key: o.Customer}
			agg[o.Customer] = g
		}
		g.Orders++
		g.Total += o.AmountSEK
	}

	groups := make([]model.OrderGroup, 0, len(agg))
	for _, g := range agg {
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Key < groups[j].Key
	})
	return groups, len(seen)
}

// groupByMonth rolls up orders with value per placement month. Undated orders
// land in an "Unknown" bucket sorted last.
func groupByMonth(orders []model.Order) []model.OrderGroup {
	agg := map[string]*model.OrderGroup{}
	for _, o := range orders {
		if o.AmountSEK <= 0 {
			continue
		}
		key := "Unknown"
		if o.HasDate {
			key = o.OrderDate.Format("2006-01")
		}
		g := agg[key]
		if g == nil {
			g = &model.OrderGroup{Key: key}
			agg[key] = g
		}
		g.Orders++
		g.Total += o.AmountSEK
	}

	groups := make([]model.OrderGroup, 0, len(agg))
	for _, g := range agg {
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Key == "Unknown" {
			return false
		}
		if groups[j].Key == "Unknown" {
			return true
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

func parseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
