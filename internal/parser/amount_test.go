package parser

import "testing"

func TestCleanAmount_SwedishFormat(t *testing.T) {
	t.Parallel()

	v, cur, ok := CleanAmount("1 234,50 SEK")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 1234.50 || cur != "SEK" {
		t.Fatalf("unexpected result: %v %s", v, cur)
	}
}

func TestCleanAmount_AngloFormat(t *testing.T) {
	t.Parallel()

	v, cur, ok := CleanAmount("1,234.50")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 1234.50 || cur != "SEK" {
		t.Fatalf("unexpected result: %v %s", v, cur)
	}
}

func TestCleanAmount_ForeignCurrency(t *testing.T) {
	t.Parallel()

	v, cur, ok := CleanAmount("500 EUR")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 500 || cur != "EUR" {
		t.Fatalf("unexpected result: %v %s", v, cur)
	}

	v, cur, ok = CleanAmount("2 000,00 usd")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 2000 || cur != "USD" {
		t.Fatalf("unexpected result: %v %s", v, cur)
	}
}

func TestCleanAmount_DecimalCommaOnly(t *testing.T) {
	t.Parallel()

	// "1.234,50" uses dot as thousands separator
	v, _, ok := CleanAmount("1.234,50")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 1234.50 {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestCleanAmount_NotAnAmount(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "n/a", "abc"} {
		if _, _, ok := CleanAmount(raw); ok {
			t.Fatalf("expected not-ok for %q", raw)
		}
	}
}

func TestCleanNumber(t *testing.T) {
	t.Parallel()

	v, ok := CleanNumber("12 345")
	if !ok || v != 12345 {
		t.Fatalf("unexpected: %v %v", v, ok)
	}

	v, ok = CleanNumber("-250,75")
	if !ok || v != -250.75 {
		t.Fatalf("unexpected: %v %v", v, ok)
	}

	for _, raw := range []string{"", "n/a", "None", "-", "text"} {
		if _, ok := CleanNumber(raw); ok {
			t.Fatalf("expected not-ok for %q", raw)
		}
	}
}
