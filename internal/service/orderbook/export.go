package orderbook

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// Export renders a processed order book into the five-sheet tracking workbook:
// Summary, All Orders, By Customer, By Month, Partially Invoiced.
func Export(res *Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, res); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeAllOrdersSheet(f, res); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeGroupSheet(f, "By Customer", "ORDER BOOK BY CUSTOMER", "Customer", res.ByCustomer, res.TotalSEK); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeGroupSheet(f, "By Month", "ORDERS BY PLACEMENT MONTH", "Month", res.ByMonth, res.TotalSEK); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writePartialSheet(f, res); err != nil {
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

	title, err := titleStyle(f)
	if err != nil {
		return err
	}

	cells := [][2]any{
		{"A1", "HYAB ORDER BOOK"},
		{"A2", "Generated: " + time.Now().Format("2006-01-02 15:04")},
		{"A4", "Total Orders"}, {"B4", len(res.Orders)},
		{"A5", "Total Value (SEK)"}, {"B5", res.TotalSEK},
		{"A6", "Unique Customers"}, {"B6", res.UniqueCustomers},
		{"A7", "Partially Invoiced Orders"}, {"B7", res.PartialOrders},
		{"A8", "Partially Invoiced Value"}, {"B8", res.PartialSEK},
		{"A9", "Orders Older Than 90 Days"}, {"B9", res.AgedOrders},
		{"A10", "Aged Value (SEK)"}, {"B10", res.AgedSEK},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c[0].(string), c[1]); err != nil {
			return fmt.Errorf("write summary cell %s: %w", c[0], err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 16)
}

func writeAllOrdersSheet(f *excelize.File, res *Result) error {
	const sheet = "All Orders"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	header := []any{"Ordernr", "Orderdatum", "Kundnamn", "Fakt.stat", "Original", "Currency", "Belopp SEK"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	orders := append([]model.Order(nil), res.Orders...)
	sort.SliceStable(orders, func(i, j int) bool {
		return orderTime(orders[i]).After(orderTime(orders[j]))
	})

	for i, o := range orders {
		row := []any{o.OrderNo, dateString(o), o.Customer, o.InvoiceStatus,
			o.OriginalAmount, o.OriginalCurrency, o.AmountSEK}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write order row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(sheet, "C", "C", 40)
}

func writeGroupSheet(f *excelize.File, sheet, heading, keyHeader string, groups []model.OrderGroup, total float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	title, err := titleStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", heading); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
		return err
	}

	header := []any{keyHeader, "Orders", "Total SEK", "% of Total"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return err
	}
	for i, g := range groups {
		row := []any{g.Key, g.Orders, g.Total, shareLabel(g.Total, total)}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write group row %d: %w", i+4, err)
		}
	}
	return f.SetColWidth(sheet, "A", "A", 40)
}

func writePartialSheet(f *excelize.File, res *Result) error {
	const sheet = "Partially Invoiced"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}

	title, err := titleStyle(f)
	if err != nil {
		return err
	}
	heading := fmt.Sprintf("PARTIALLY INVOICED ORDERS (%d orders, %.0f SEK)",
		res.PartialOrders, res.PartialSEK)
	if err := f.SetCellValue(sheet, "A1", heading); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
		return err
	}

	header := []any{"Ordernr", "Orderdatum", "Kundnamn", "Fakt.stat", "Belopp SEK"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return err
	}

	var partial []model.Order
	for _, o := range res.Orders {
		if o.PartiallyInvoiced {
			partial = append(partial, o)
		}
	}
	sort.SliceStable(partial, func(i, j int) bool {
		return partial[i].AmountSEK > partial[j].AmountSEK
	})

	for i, o := range partial {
		row := []any{o.OrderNo, dateString(o), o.Customer, o.InvoiceStatus, o.AmountSEK}
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write partial row %d: %w", i+4, err)
		}
	}
	return f.SetColWidth(sheet, "C", "C", 40)
}

func titleStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return 0, fmt.Errorf("create title style: %w", err)
	}
	return style, nil
}

func shareLabel(part, total float64) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", part/total*100)
}

func orderTime(o model.Order) time.Time {
	if o.HasDate {
		return o.OrderDate
	}
	return time.Time{}
}

func dateString(o model.Order) string {
	if !o.HasDate {
		return ""
	}
	return o.OrderDate.Format("2006-01-02")
}
