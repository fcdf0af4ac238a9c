package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// The master file labels LTM columns "LTM YY-mon" with Swedish month
// abbreviations.
var swedishMonths = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "maj": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "okt": 10, "nov": 11, "dec": 12,
}

var displayMonths = map[string]string{
	"jan": "Jan", "feb": "Feb", "mar": "Mar", "apr": "Apr", "maj": "May", "jun": "Jun",
	"jul": "Jul", "aug": "Aug", "sep": "Sep", "okt": "Oct", "nov": "Nov", "dec": "Dec",
}

// LTMSortKey maps an LTM label to a chronological (year, month) key.
// Malformed labels sort after all well-formed ones: unknown data goes to the
// end instead of silently succeeding.
func LTMSortKey(label string) (year, month int) {
	parts := strings.SplitN(strings.TrimPrefix(label, "LTM "), "-", 2)
	if len(parts) != 2 {
		return 9999, 99
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 9999, 99
	}
	m, ok := swedishMonths[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return 9999, 99
	}
	return y + 2000, m
}

// SortLTMKeys sorts LTM labels chronologically in place. Every windowed
// algorithm downstream depends on this ordering, not lexical order.
func SortLTMKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		yi, mi := LTMSortKey(keys[i])
		yj, mj := LTMSortKey(keys[j])
		if yi != yj {
			return yi < yj
		}
		if mi != mj {
			return mi < mj
		}
		return keys[i] < keys[j]
	})
}

// FormatLTMLabel renders an LTM label for display: "LTM 25-nov" -> "Nov 25".
// Unparseable labels are returned unchanged.
func FormatLTMLabel(label string) string {
	parts := strings.SplitN(strings.TrimPrefix(label, "LTM "), "-", 2)
	if len(parts) != 2 {
		return label
	}
	m, ok := displayMonths[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return label
	}
	return fmt.Sprintf("%s %s", m, parts[0])
}

// FormatMonthLabel renders a "YYYY-MM" month key as "Nov 25" for chart axes.
func FormatMonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 06")
}

// headerDateLayouts covers the renderings excelize produces for date-typed
// header cells under the common number formats.
var headerDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1-2-06",
	"2006/01/02",
	"01/02/2006",
	"Jan-06",
	"2006-01",
}

// ParseHeaderDate interprets a header cell as a calendar date. Returns the
// normalized "YYYY-MM" month key.
func ParseHeaderDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range headerDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

// ColumnClasses indexes a sheet's value columns by kind, mapping period key to
// zero-based column index.
type ColumnClasses struct {
	Months map[string]int // normalized "YYYY-MM" -> column
	Fiscal map[string]int // "FY..." and "YTD" -> column
	LTM    map[string]int // raw "LTM ..." label -> column
}

// ClassifyColumns scans a header row from column `start` (zero-based) and
// buckets each column: literal dates are calendar months, "FY..."/"YTD" are
// fiscal aggregates, "LTM..." are trailing-twelve-month cuts. Unrecognized
// headers are ignored.
func ClassifyColumns(header []string, start int) ColumnClasses {
	c := ColumnClasses{
		Months: make(map[string]int),
		Fiscal: make(map[string]int),
		LTM:    make(map[string]int),
	}
	end := len(header)
	if end > 99 {
		end = 99
	}
	for i := start; i < end; i++ {
		h := strings.TrimSpace(header[i])
		if h == "" {
			continue
		}
		switch {
		case strings.HasPrefix(h, "FY"), h == "YTD":
			c.Fiscal[h] = i
		case strings.HasPrefix(h, "LTM"):
			c.LTM[h] = i
		default:
			if key, ok := ParseHeaderDate(h); ok {
				c.Months[key] = i
			}
		}
	}
	return c
}
