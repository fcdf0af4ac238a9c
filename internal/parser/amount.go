package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultCurrency is assumed when an amount carries no currency code.
const DefaultCurrency = "SEK"

var (
	amountRe        = regexp.MustCompile(`^([0-9\s\x{00A0}.,]+)\s*(?i:(SEK|EUR|USD|GBP))?`)
	decimalCommaRe  = regexp.MustCompile(`,\d{2}$`)
	nonAmountValues = map[string]bool{"": true, "n/a": true, "None": true, "-": true}
)

// CleanAmount extracts a numeric amount and currency code from a raw cell
// value. Handles both Swedish ("1 234,50") and Anglo ("1,234.50") separator
// conventions: a trailing comma followed by exactly two digits marks the comma
// as decimal separator. Currency defaults to SEK. Returns ok=false when the
// value is absent or not an amount; the caller must treat that as "no amount",
// not zero.
func CleanAmount(raw string) (value float64, currency string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, "", false
	}

	m := amountRe.FindStringSubmatch(s)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return 0, "", false
	}

	currency = DefaultCurrency
	if m[2] != "" {
		currency = strings.ToUpper(m[2])
	}

	num, ok := normalizeNumber(m[1])
	if !ok {
		return 0, "", false
	}
	return num, currency, true
}

// CleanNumber normalizes a plain numeric cell. Placeholder values ("n/a", "-")
// and anything that fails numeric conversion yield ok=false.
func CleanNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if nonAmountValues[s] {
		return 0, false
	}
	return normalizeNumber(s)
}

func normalizeNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	if decimalCommaRe.MatchString(s) {
		// "1.234,50" -> "1234.50"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		// "1,234.50" -> "1234.50"
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
