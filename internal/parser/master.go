package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// Sheet names in the master workbook.
const (
	SheetArticles  = "Försäljning per artikel"
	SheetCustomers = "Försäljning per kund"
)

// totalSentinel marks the aggregate row appended by the export; it is not an entity.
const totalSentinel = "Summa"

// FindSheet locates a sheet by any of the candidate names, case-insensitively.
// A workbook with a single sheet matches regardless of name. Returns "" when
// nothing matches.
func FindSheet(f *excelize.File, names ...string) string {
	sheets := f.GetSheetList()
	lower := make(map[string]string, len(sheets))
	for _, s := range sheets {
		lower[strings.ToLower(s)] = s
	}
	for _, n := range names {
		if s, ok := lower[strings.ToLower(n)]; ok {
			return s
		}
	}
	if len(sheets) == 1 {
		return sheets[0]
	}
	return ""
}

// findNamedSheet locates a sheet by exact name, case-insensitively, with no
// single-sheet fallback.
func findNamedSheet(f *excelize.File, name string) string {
	for _, s := range f.GetSheetList() {
		if strings.EqualFold(s, name) {
			return s
		}
	}
	return ""
}

// ParseMaster reads the two master tables into a normalized Dataset.
// Row-level noise (blank rows, the "Summa" row, non-numeric cells) is skipped
// silently; a missing table is a structural error and aborts the parse.
func ParseMaster(f *excelize.File) (*model.Dataset, error) {
	ds := &model.Dataset{
		MonthlyTotals: make(map[string]float64),
		LTMTrend:      make(map[string]float64),
	}

	// Both master tables must be present by name. The single-sheet fallback
	// of FindSheet would resolve a one-sheet workbook to the same table
	// twice, so it does not apply here.
	artSheet := findNamedSheet(f, SheetArticles)
	if artSheet == "" {
		return nil, fmt.Errorf("master file: sheet %q not found", SheetArticles)
	}
	custSheet := findNamedSheet(f, SheetCustomers)
	if custSheet == "" {
		return nil, fmt.Errorf("master file: sheet %q not found", SheetCustomers)
	}

	articles, err := parseEntitySheet(f, artSheet, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", artSheet, err)
	}
	ds.Articles = articles

	customers, err := parseEntitySheet(f, custSheet, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", custSheet, err)
	}
	ds.Customers = customers

	// Monthly totals come from the article table, LTM trend from the customer
	// table: each is summed from the table complete for that axis.
	monthSet := make(map[string]bool)
	for _, a := range ds.Articles {
		for k, v := range a.Monthly {
			monthSet[k] = true
			ds.MonthlyTotals[k] += v
		}
	}
	ds.MonthKeys = make([]string, 0, len(monthSet))
	for k := range monthSet {
		ds.MonthKeys = append(ds.MonthKeys, k)
	}
	sort.Strings(ds.MonthKeys)

	ltmSet := make(map[string]bool)
	for _, c := range ds.Customers {
		for k, v := range c.LTM {
			ltmSet[k] = true
			ds.LTMTrend[k] += v
		}
	}
	ds.LTMKeys = make([]string, 0, len(ltmSet))
	for k := range ltmSet {
		ds.LTMKeys = append(ds.LTMKeys, k)
	}
	SortLTMKeys(ds.LTMKeys)

	return ds, nil
}

// parseEntitySheet reads one entity table. idCol/nameCol are zero-based; the
// article sheet keys on column 1, the customer sheet on column 2 (the name
// doubles as the identifier there).
func parseEntitySheet(f *excelize.File, sheet string, idCol, nameCol int) ([]*model.Entity, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	cols := ClassifyColumns(rows[0], 2)

	entities := make([]*model.Entity, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := strings.TrimSpace(getCell(row, idCol))
		if id == "" || id == totalSentinel {
			continue
		}

		e := &model.Entity{
			ID:      id,
			Name:    strings.TrimSpace(getCell(row, nameCol)),
			Monthly: make(map[string]float64),
			Fiscal:  make(map[string]float64),
			LTM:     make(map[string]float64),
		}
		collectSeries(row, cols.Months, e.Monthly)
		collectSeries(row, cols.Fiscal, e.Fiscal)
		collectSeries(row, cols.LTM, e.LTM)

		if e.HasActivity() {
			entities = append(entities, e)
		}
	}
	return entities, nil
}

// collectSeries copies numeric, non-zero cells into a series map. Anything
// else is dropped, not zero-filled.
func collectSeries(row []string, cols map[string]int, out map[string]float64) {
	for key, col := range cols {
		v, ok := CleanNumber(getCell(row, col))
		if !ok || v == 0 {
			continue
		}
		out[key] = v
	}
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
