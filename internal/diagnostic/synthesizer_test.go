package diagnostic

import (
	"strings"
	"testing"
)

const marketingTool = "Marketing Effectiveness Grader"

func TestSynthesizeAllYesUsesFixedCopy(t *testing.T) {
	lib := DefaultLibrary()
	entries := lib.Synthesize(makeAnswers(10, 0), marketingTool, BucketAllYes)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Kind != KindInsight {
		t.Fatalf("expected first entry to be an insight, got %s", entries[0].Kind)
	}
	if !strings.Contains(entries[0].Description, "excellent practices across all areas") {
		t.Fatalf("unexpected all-yes insight: %q", entries[0].Description)
	}
	for _, e := range entries[1:] {
		if e.Kind != KindChallenge {
			t.Fatalf("expected challenge entries, got %s", e.Kind)
		}
	}
}

func TestSynthesizeAllNoNeverMentionsStrengths(t *testing.T) {
	lib := DefaultLibrary()
	entries := lib.Synthesize(makeAnswers(0, 10), marketingTool, BucketAllNo)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !strings.Contains(entries[0].Description, "first step toward business success") {
		t.Fatalf("unexpected all-no insight: %q", entries[0].Description)
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Description), "strong foundation that many businesses") {
			t.Fatalf("all-no entries must not borrow all-yes copy: %q", e.Description)
		}
	}
}

func TestSynthesizeMixedAnswers(t *testing.T) {
	lib := DefaultLibrary()
	answers := []Answer{
		{Question: "Do you collect customer feedback regularly?", Value: Yes},
		{Question: "Do you know which ads bring in customers?", Value: No},
		{Question: "Do you follow up on overdue invoices?", Value: No},
		{Question: "Do you have clear sales goals?", Value: No},
	}

	entries := lib.Synthesize(answers, marketingTool, BucketMostlyNo)
	if len(entries) != 3 {
		t.Fatalf("expected 1 insight + 2 challenges, got %d entries", len(entries))
	}

	if entries[0].Kind != KindInsight {
		t.Fatalf("expected first entry insight, got %s", entries[0].Kind)
	}
	if entries[0].Description != "You understand your customers and gather feedback effectively." {
		t.Fatalf("unexpected insight: %q", entries[0].Description)
	}

	// First No answer rewrites its auxiliary phrase and appends the
	// matched action step.
	want := "You need to know which ads bring in customers? Start tracking which marketing efforts bring in customers."
	if entries[1].Description != want {
		t.Fatalf("unexpected challenge: %q", entries[1].Description)
	}
	if entries[2].Kind != KindChallenge {
		t.Fatalf("expected second challenge, got %s", entries[2].Kind)
	}
}

func TestSynthesizeNoYesAnswersUsesFirstStepInsight(t *testing.T) {
	lib := DefaultLibrary()
	answers := []Answer{
		{Question: "Do you track spending?", Value: No},
		{Question: "Is it easy to find customer info?", Value: No},
	}

	entries := lib.Synthesize(answers, "Cash Flow Checkup", BucketMostlyNo)
	if entries[0].Description != "You're taking the right first step by assessing your business needs." {
		t.Fatalf("unexpected insight: %q", entries[0].Description)
	}
}

func TestSynthesizeFallbackActionStep(t *testing.T) {
	lib := DefaultLibrary()
	answers := []Answer{
		{Question: "Do you document onboarding?", Value: Yes},
		{Question: "Do you rotate inventory weekly?", Value: No},
	}

	entries := lib.Synthesize(answers, "Operations Checkup", BucketBalanced)
	last := entries[len(entries)-1]
	if !strings.HasSuffix(last.Description, "Take one small step this week to improve this area.") {
		t.Fatalf("expected fallback action step, got %q", last.Description)
	}
}

func TestRewriteAuxiliary(t *testing.T) {
	cases := map[string]string{
		"Do you track spending?":         "You need to track spending?",
		"Have you set a budget?":         "You need to set a budget?",
		"Is it easy to find info?":       "You need to easy to find info?",
		"Are your tools connected?":      "You need to tools connected?",
		"Can you forecast three months?": "You need to forecast three months?",
		"Does the team meet weekly?":     "Does the team meet weekly?",
	}
	for in, want := range cases {
		if got := rewriteAuxiliary(in); got != want {
			t.Fatalf("rewriteAuxiliary(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPreviewCardsMatchesAndPads(t *testing.T) {
	lib := DefaultLibrary()
	answers := []Answer{
		{Question: "Is your customer info centralized?", Value: No},
		{Question: "Do your tools talk to each other?", Value: No},
		{Question: "Do you rotate inventory weekly?", Value: No},
		{Question: "Do you track spending?", Value: Yes},
	}

	cards := lib.PreviewCards(answers, "Data Hygiene Snapshot")
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0].Title != "CRM System Missing" {
		t.Fatalf("unexpected first card: %q", cards[0].Title)
	}
	if cards[1].Title != "System Integration Gap" {
		t.Fatalf("unexpected second card: %q", cards[1].Title)
	}
	if cards[2].Title != "Business Process Gap" {
		t.Fatalf("expected padding card, got %q", cards[2].Title)
	}
}

func TestPreviewCardsEmptyWithoutNoAnswers(t *testing.T) {
	lib := DefaultLibrary()
	cards := lib.PreviewCards(makeAnswers(10, 0), "Data Hygiene Snapshot")
	if len(cards) != 0 {
		t.Fatalf("expected no cards for an all-yes set, got %d", len(cards))
	}
}

func TestTopicForDispatchesBySubstring(t *testing.T) {
	cases := map[string]Topic{
		"Data Hygiene Snapshot":          TopicDataHygiene,
		"Marketing Effectiveness Grader": TopicMarketing,
		"Cash Flow Checkup":              TopicCashFlow,
		"Operations Checkup":             TopicGeneric,
	}
	for tool, want := range cases {
		if got := TopicFor(tool); got != want {
			t.Fatalf("TopicFor(%q) = %s, want %s", tool, got, want)
		}
	}
}
