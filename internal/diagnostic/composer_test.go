package diagnostic

import (
	"strings"
	"testing"
	"time"
)

func TestComposeBuildsReportFromTopicTables(t *testing.T) {
	lib := DefaultLibrary()
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	answers := makeAnswers(6, 4)

	report := lib.Compose("Cash Flow Checkup", 60, answers, "Acme Bakery", now)

	if report.ClientName != "Acme Bakery" {
		t.Fatalf("unexpected client name: %q", report.ClientName)
	}
	if report.Date != "3/5/2026" {
		t.Fatalf("unexpected date: %q", report.Date)
	}
	if len(report.KeyInsights) != 3 {
		t.Fatalf("expected 3 key insights, got %d", len(report.KeyInsights))
	}
	if report.KeyInsights[0].Title != "Cash Flow Visibility Gap" {
		t.Fatalf("unexpected first insight: %q", report.KeyInsights[0].Title)
	}
	if len(report.Recommendations) == 0 || len(report.Metrics) == 0 {
		t.Fatalf("expected topic recommendations and metrics")
	}
	if len(report.Timeline.Immediate) != 3 || len(report.Timeline.ShortTerm) != 3 || len(report.Timeline.LongTerm) != 3 {
		t.Fatalf("unexpected timeline shape: %+v", report.Timeline)
	}
}

func TestExecutiveSummaryTiers(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{85, "demonstrate strong performance"},
		{80, "demonstrate strong performance"},
		{70, "indicating good foundational practices"},
		{60, "indicating good foundational practices"},
		{59, "highlighting substantial opportunities"},
		{0, "highlighting substantial opportunities"},
	}
	for _, tc := range cases {
		got := executiveSummary("Cash Flow Checkup", tc.score, 4, 6)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("score %d: expected summary containing %q, got %q", tc.score, tc.want, got)
		}
		// Summaries lead with the first word of the tool name only.
		if !strings.HasPrefix(got, "Your Cash ") {
			t.Fatalf("score %d: expected tool short name, got %q", tc.score, got)
		}
	}
}

func TestRenderIncludesAllSections(t *testing.T) {
	lib := DefaultLibrary()
	now := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	report := lib.Compose("Data Hygiene Snapshot", 40, makeAnswers(4, 6), "Valued Client", now)

	doc := report.Render()
	sections := []string{
		"**NBLK BUSINESS DIAGNOSTIC REPORT**",
		"**Client:** Valued Client",
		"**Score:** 40/100",
		"**EXECUTIVE SUMMARY**",
		"**KEY INSIGHTS**",
		"**STRATEGIC RECOMMENDATIONS**",
		"**IMPLEMENTATION TIMELINE**",
		"**Immediate (0-30 days):**",
		"**SUCCESS METRICS**",
		"**NEXT STEPS**",
		"NBLK Consulting",
		"awashington@nblkconsulting.com",
	}
	for _, section := range sections {
		if !strings.Contains(doc, section) {
			t.Fatalf("rendered report missing %q", section)
		}
	}
	if !strings.Contains(doc, "• ") {
		t.Fatalf("expected bulleted lists in rendered report")
	}
}
