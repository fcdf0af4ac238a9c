package commentary

import (
	"fmt"
	"sort"
	"strings"
)

// FlattenSections normalizes a decoded commentary object to the flat
// section->text contract. Models occasionally return lists or nested objects
// for a section; those are collapsed to readable strings rather than
// rejected.
func FlattenSections(raw map[string]any) map[string]string {
	flat := make(map[string]string, len(raw))
	for key, val := range raw {
		text := flattenValue(key, val)
		if text != "" {
			flat[key] = text
		}
	}
	return flat
}

func flattenValue(key string, val any) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		return flattenList(key, v)
	case map[string]any:
		return flattenMap(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// flattenList joins list items. Recommendation lists are numbered so the
// dashboard can show them as action items.
func flattenList(key string, items []any) string {
	var parts []string
	for _, item := range items {
		text := ""
		switch it := item.(type) {
		case string:
			text = strings.TrimSpace(it)
		case map[string]any:
			text = flattenMap(it)
		default:
			text = strings.TrimSpace(fmt.Sprint(it))
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if key == "strategic_recommendations" {
		for i, p := range parts {
			parts[i] = fmt.Sprintf("(%d) %s", i+1, p)
		}
		return strings.Join(parts, "\n")
	}
	return strings.Join(parts, " ")
}

// flattenMap keeps the substantive string values of a nested object and drops
// short labels like {"title": "..."} noise.
func flattenMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if len(s) > 10 {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
