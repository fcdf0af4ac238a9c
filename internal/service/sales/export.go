package sales

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// Export renders a processed sales month into the five-sheet workbook:
// Summary, Top 20 Articles, Top 20 Customers, Articles, Customers.
func Export(res *Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, res); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeTopSheet(f, "Top 20 Articles", "TOP 20 ARTICLES", "Article No", "Article Name",
		res.Articles, res.TotalArticles, res.Top20ArtPct); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeTopSheet(f, "Top 20 Customers", "TOP 20 CUSTOMERS", "Customer No", "Customer Name",
		res.Customers, res.TotalCustomers, res.Top20CustPct); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeFullSheet(f, "Articles", "Article No", "Article Name", res.Articles); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeFullSheet(f, "Customers", "Customer No", "Customer Name", res.Customers); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSummarySheet(f *excelize.File, res *Result) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}

	cells := [][2]any{
		{"A1", "HYAB MONTHLY SALES"},
		{"A2", "Generated: " + time.Now().Format("2006-01-02 15:04")},
		{"A4", "Total Sales (excl. VAT)"}, {"B4", res.TotalArticles},
		{"A5", "Number of Articles"}, {"B5", len(res.Articles)},
		{"A6", "Number of Customers"}, {"B6", len(res.Customers)},
		{"A8", "Top 20 Articles"}, {"B8", fmt.Sprintf("%.0f%% of total", res.Top20ArtPct)},
		{"A9", "Top 20 Customers"}, {"B9", fmt.Sprintf("%.0f%% of total", res.Top20CustPct)},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c[0].(string), c[1]); err != nil {
			return fmt.Errorf("write summary cell %s: %w", c[0], err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 26); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 18)
}

func writeTopSheet(f *excelize.File, sheet, heading, noHeader, nameHeader string,
	lines []model.SalesLine, total, topPct float64) error {

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("%s (%.0f%% of total)", heading, topPct)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
		return err
	}

	header := []any{"#", noHeader, nameHeader, "Amount SEK", "% of Total"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return err
	}

	n := topN
	if len(lines) < n {
		n = len(lines)
	}
	for i, l := range lines[:n] {
		share := "0%"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", l.Amount/total*100)
		}
		row := []any{i + 1, l.No, l.Name, l.Amount, share}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write top row %d: %w", i+4, err)
		}
	}
	return f.SetColWidth(sheet, "C", "C", 40)
}

func writeFullSheet(f *excelize.File, sheet, noHeader, nameHeader string, lines []model.SalesLine) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	header := []any{noHeader, nameHeader, "Amount SEK"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, l := range lines {
		row := []any{l.No, l.Name, l.Amount}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(sheet, "B", "B", 40)
}
