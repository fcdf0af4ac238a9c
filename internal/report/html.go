package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed dashboard.html.tmpl
var templateFS embed.FS

var dashboardTmpl = template.Must(template.New("dashboard.html.tmpl").
	Funcs(template.FuncMap{
		"json":  jsonJS,
		"msek":  formatMSEK,
		"ksek":  formatKSEK,
		"sek":   formatSEK,
		"pct":   formatPct,
		"spark": Spark,
	}).
	ParseFS(templateFS, "dashboard.html.tmpl"))

// Render writes the dashboard HTML for a report.
func Render(w io.Writer, r *Report) error {
	if err := dashboardTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// jsonJS marshals chart data for inline <script> use.
func jsonJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func formatMSEK(v float64) string {
	return fmt.Sprintf("%.1f MSEK", v/1e6)
}

func formatKSEK(v float64) string {
	return fmt.Sprintf("%.0f kSEK", v/1e3)
}

// formatSEK renders a whole-SEK amount with thin-space thousand separators.
func formatSEK(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func formatPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
