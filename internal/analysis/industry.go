package analysis

import (
	"sort"
	"strings"

	"github.com/Debelvoir/HYAB-6.2/internal/model"
)

// DefaultSector is assigned to empty names and names no keyword matches.
const DefaultSector = "Other/General"

type sectorKeywords struct {
	Sector   string
	Keywords []string
}

// sectorTable maps name fragments to industry sectors. Order matters: the
// first sector with a matching keyword wins. Static vocabulary, tuned to the
// actual customer base; keep it verbatim when extending.
var sectorTable = []sectorKeywords{
	{"Automotive/EV", []string{"volvo", "scania", "autoliv", "automotive", "car-o-liner", "motor", "vehicle", "polestar"}},
	{"Manufacturing/Industrial", []string{"manufacturing", "industri", "produktion", "verkstad", "maskin", "tool", "sandvik", "atlas copco", "skf", "abb", "seco tool"}},
	{"Electronics/Tech", []string{"elektr", "electronic", "tech", "sensor", "circuit", "pcb", "kitron", "zollner", "gpv", "keba", "automation", "amada"}},
	{"Medical/Healthcare", []string{"medical", "medic", "health", "pharma", "hospital", "dental", "medi", "gambro"}},
	{"Energy/Wind", []string{"energy", "energi", "wind", "solar", "power", "kraft", "vattenfall", "nibe", "heat pump", "linak"}},
	{"Mining/Steel", []string{"mining", "gruv", "steel", "stål", "metall", "metal", "ssab", "lkab", "boliden", "metso"}},
	{"Food/Packaging", []string{"food", "livsmedel", "tetra pak", "packaging", "förpackning", "metos"}},
	{"Construction/Building", []string{"bygg", "construction", "building", "fastighet", "property"}},
	{"Defense/Aerospace", []string{"defense", "försvar", "military", "aerospace", "flyg", "saab"}},
	{"Logistics/Transport", []string{"transport", "logist", "shipping", "frakt", "truckcam"}},
}

// ClassifyIndustry maps a customer name to an industry sector by keyword
// matching against the fixed table, first match wins.
func ClassifyIndustry(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSector
	}
	for _, s := range sectorTable {
		for _, kw := range s.Keywords {
			if strings.Contains(name, kw) {
				return s.Sector
			}
		}
	}
	return DefaultSector
}

// AnalyzeIndustries aggregates LTM revenue and cohort movement per sector for
// the (curr, prev) pair. Customers with no activity in either period are
// skipped. Sorted by current-period sector revenue, descending.
func AnalyzeIndustries(ds *model.Dataset, curr, prev string) []model.IndustryRow {
	stats := make(map[string]*model.IndustryRow)

	for _, cust := range ds.Customers {
		curV := cust.LTMValue(curr)
		preV := cust.LTMValue(prev)
		if curV == 0 && preV == 0 {
			continue
		}

		sector := ClassifyIndustry(cust.ID)
		row, ok := stats[sector]
		if !ok {
			row = &model.IndustryRow{Industry: sector}
			stats[sector] = row
		}
		row.CurrLTM += curV
		row.PrevLTM += preV
		row.Count++

		switch {
		case curV == 0 && preV > 0:
			row.ChurnedRev += preV
		case curV > 0 && preV == 0:
			row.NewRev += curV
		case curV > preV:
			row.GrowingRev += curV - preV
		case curV < preV:
			row.DecliningRev += preV - curV
		}
	}

	rows := make([]model.IndustryRow, 0, len(stats))
	for _, row := range stats {
		if row.CurrLTM <= 0 && row.PrevLTM <= 0 {
			continue
		}
		row.ChangePct = pctChange(row.CurrLTM-row.PrevLTM, row.PrevLTM)
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CurrLTM != rows[j].CurrLTM {
			return rows[i].CurrLTM > rows[j].CurrLTM
		}
		return rows[i].Industry < rows[j].Industry
	})
	return rows
}
