package commentary

import "testing"

func TestFlattenSections_Strings(t *testing.T) {
	t.Parallel()

	flat := FlattenSections(map[string]any{
		"summary":   "  Revenue grew 8% year over year.  ",
		"ltm_trend": "Steady climb since spring.",
		"empty":     "",
	})

	if flat["summary"] != "Revenue grew 8% year over year." {
		t.Fatalf("summary: %q", flat["summary"])
	}
	if _, present := flat["empty"]; present {
		t.Fatalf("empty sections must be dropped")
	}
}

func TestFlattenSections_RecommendationList(t *testing.T) {
	t.Parallel()

	flat := FlattenSections(map[string]any{
		"strategic_recommendations": []any{
			"Call the three largest churned accounts.",
			"Review pricing for declining OEM customers.",
		},
	})

	want := "(1) Call the three largest churned accounts.\n(2) Review pricing for declining OEM customers."
	if flat["strategic_recommendations"] != want {
		t.Fatalf("got %q", flat["strategic_recommendations"])
	}
}

func TestFlattenSections_PlainListJoined(t *testing.T) {
	t.Parallel()

	flat := FlattenSections(map[string]any{
		"cohorts": []any{"Churn is concentrated in automotive.", "New accounts offset half the loss."},
	})
	want := "Churn is concentrated in automotive. New accounts offset half the loss."
	if flat["cohorts"] != want {
		t.Fatalf("got %q", flat["cohorts"])
	}
}

func TestFlattenSections_NestedMap(t *testing.T) {
	t.Parallel()

	flat := FlattenSections(map[string]any{
		"at_risk": map[string]any{
			"title":    "At risk", // short labels are noise
			"analysis": "Two accounts have declined four straight periods.",
		},
	})
	if flat["at_risk"] != "Two accounts have declined four straight periods." {
		t.Fatalf("got %q", flat["at_risk"])
	}
}

func TestParseSections_RepairsSloppyJSON(t *testing.T) {
	t.Parallel()

	out := "Here is the commentary you asked for:\n```json\n" +
		`{"summary": "Solid quarter", "ltm_trend": "Up and to the right",}` +
		"\n```"

	flat, err := parseSections(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if flat["summary"] != "Solid quarter" {
		t.Fatalf("summary: %q", flat["summary"])
	}
}

func TestParseSections_NoObject(t *testing.T) {
	t.Parallel()

	if _, err := parseSections("I cannot produce commentary right now."); err == nil {
		t.Fatalf("expected error")
	}
}
