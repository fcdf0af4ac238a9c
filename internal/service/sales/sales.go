// Package sales cleans the monthly sales export: per-article and per-customer
// totals ready to paste into the master work file.
package sales

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
	"github.com/Debelvoir/HYAB-6.2/internal/parser"
)

const topN = 20

var (
	articleSheets  = []string{"Article", "Articles", "Artikel"}
	customerSheets = []string{"Company", "Companies", "Företag", "Kund"}
)

// Result is a processed monthly sales export. Both lists are sorted by amount
// descending; rows without a usable amount are dropped.
type Result struct {
	Articles  []model.SalesLine
	Customers []model.SalesLine

	TotalArticles  float64
	TotalCustomers float64
	Top20ArtPct    float64
	Top20CustPct   float64
}

// Process reads the article and customer sheets of the monthly export.
// Either sheet may be absent; at least one must be present.
func Process(f *excelize.File) (*Result, error) {
	res := &Result{}

	artSheet := parser.FindSheet(f, articleSheets...)
	custSheet := parser.FindSheet(f, customerSheets...)
	if artSheet == "" && custSheet == "" {
		return nil, fmt.Errorf("workbook has neither an article nor a customer sheet")
	}
	if artSheet == custSheet {
		// Single-sheet fallback resolved both lookups to the same sheet.
		// Treat it as the article export.
		custSheet = ""
	}

	if artSheet != "" {
		// Articles key on the article number.
		lines, err := readLines(f, artSheet, 0, 1, 2, 0)
		if err != nil {
			return nil, err
		}
		res.Articles = lines
	}
	if custSheet != "" {
		// Column 3 on the customer sheet is the customer type; the amount
		// sits in column 4. Rows key on the name, a missing customer
		// number does not drop the row.
		lines, err := readLines(f, custSheet, 0, 1, 3, 1)
		if err != nil {
			return nil, err
		}
		res.Customers = lines
	}

	for _, a := range res.Articles {
		res.TotalArticles += a.Amount
	}
	for _, c := range res.Customers {
		res.TotalCustomers += c.Amount
	}
	res.Top20ArtPct = topShare(res.Articles, res.TotalArticles)
	res.Top20CustPct = topShare(res.Customers, res.TotalCustomers)
	return res, nil
}

// readLines extracts (number, name, amount) columns from a sheet, skipping
// the header, rows with a blank key column and zero amounts.
func readLines(f *excelize.File, sheet string, noCol, nameCol, amtCol, keyCol int) ([]model.SalesLine, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var lines []model.SalesLine
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cell(row, keyCol) == "" {
			continue
		}
		amt, ok := parser.CleanNumber(cell(row, amtCol))
		if !ok || amt == 0 {
			continue
		}
		lines = append(lines, model.SalesLine{
			No:     cell(row, noCol),
			Name:   cell(row, nameCol),
			Amount: amt,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Amount > lines[j].Amount
	})
	return lines, nil
}

func topShare(lines []model.SalesLine, total float64) float64 {
	if total <= 0 {
		return 0
	}
	n := topN
	if len(lines) < n {
		n = len(lines)
	}
	var sum float64
	for _, l := range lines[:n] {
		sum += l.Amount
	}
	return sum / total * 100
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
