package sales

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildSalesExport(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Article"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("Company"); err != nil {
		t.Fatalf("create sheet: %v", err)
	}

	artRows := [][]any{
		{"Artikelnr", "Artikelnamn", "Summa"},
		{"A100", "Neodymmagnet 10mm", "5 000"},
		{"A200", "Ferritmagnet 25mm", "12 000"},
		{"A300", "Utgått", ""},
		{"A400", "Nollrad", "0"},
		{"", "Namnlös", "3 000"},
	}
	for i := range artRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Article", cell, &artRows[i]); err != nil {
			t.Fatalf("write article row: %v", err)
		}
	}

	custRows := [][]any{
		{"Kundnr", "Kund", "Kundtyp", "Summa"},
		{"K1", "Volvo Trucks AB", "OEM", "9 000"},
		{"K2", "Scania CV AB", "OEM", "14 000"},
		{"", "Okänd Kund AB", "Distributör", "2 000"},
	}
	for i := range custRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Company", cell, &custRows[i]); err != nil {
			t.Fatalf("write customer row: %v", err)
		}
	}
	return f
}

func TestProcess(t *testing.T) {
	t.Parallel()

	f := buildSalesExport(t)
	defer f.Close()

	res, err := Process(f)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	// blank-keyed and zero rows are dropped; remaining rows sorted by
	// amount desc. Articles key on the number, so the numberless row goes.
	if len(res.Articles) != 2 {
		t.Fatalf("articles: %+v", res.Articles)
	}
	if res.Articles[0].No != "A200" || res.Articles[0].Amount != 12000 {
		t.Fatalf("top article: %+v", res.Articles[0])
	}
	if res.TotalArticles != 17000 {
		t.Fatalf("article total: %v", res.TotalArticles)
	}

	// customers key on the name, so the row without a customer number stays
	if len(res.Customers) != 3 {
		t.Fatalf("customers: %+v", res.Customers)
	}
	// the customer amount sits in column 4, after the Kundtyp column
	if res.Customers[0].No != "K2" || res.Customers[0].Name != "Scania CV AB" || res.Customers[0].Amount != 14000 {
		t.Fatalf("top customer: %+v", res.Customers[0])
	}
	if res.Customers[2].No != "" || res.Customers[2].Name != "Okänd Kund AB" || res.Customers[2].Amount != 2000 {
		t.Fatalf("numberless customer: %+v", res.Customers[2])
	}
	if res.TotalCustomers != 25000 {
		t.Fatalf("customer total: %v", res.TotalCustomers)
	}

	// fewer than 20 rows: the top-20 share covers everything
	if res.Top20ArtPct != 100 || res.Top20CustPct != 100 {
		t.Fatalf("top20 share: %v %v", res.Top20ArtPct, res.Top20CustPct)
	}
}

func TestProcess_NoRecognizedSheets(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Data"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("Misc"); err != nil {
		t.Fatalf("create sheet: %v", err)
	}

	if _, err := Process(f); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExport_Sheets(t *testing.T) {
	t.Parallel()

	f := buildSalesExport(t)
	defer f.Close()

	res, err := Process(f)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	out, err := Export(res)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer out.Close()

	want := []string{"Summary", "Top 20 Articles", "Top 20 Customers", "Articles", "Customers"}
	sheets := out.GetSheetList()
	if len(sheets) != len(want) {
		t.Fatalf("sheets: %v", sheets)
	}
	for i, s := range want {
		if sheets[i] != s {
			t.Fatalf("sheet %d: %q", i, sheets[i])
		}
	}

	v, err := out.GetCellValue("Top 20 Articles", "B4")
	if err != nil || v != "A200" {
		t.Fatalf("top article cell: %q %v", v, err)
	}
}
