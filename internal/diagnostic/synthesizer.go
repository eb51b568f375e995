package diagnostic

import "strings"

// Fixed copy for the all-Yes and all-No buckets. Neither path references
// answer text: the all-No branch must never surface strengths that do not
// exist, and the all-Yes branch sells the full report instead of repeating
// the questionnaire.
var (
	allYesEntries = []InsightEntry{
		{Kind: KindInsight, Description: "Your business shows excellent practices across all areas. You have a strong foundation that many businesses strive for."},
		{Kind: KindChallenge, Description: "Even with your strong performance, there's always room to grow. Get your detailed report to discover advanced strategies that could take your business to the next level."},
		{Kind: KindChallenge, Description: "Consider how you can scale your current success. The detailed report will show you exactly where to focus for maximum impact."},
	}
	allNoEntries = []InsightEntry{
		{Kind: KindInsight, Description: "Taking this diagnostic is your first step toward business success. You're ready to build a stronger foundation."},
		{Kind: KindChallenge, Description: "Your business needs a systematic approach to operations. Start with one area and build from there."},
		{Kind: KindChallenge, Description: "Get your detailed report to see exactly which steps to take first. Every successful business started exactly where you are now."},
	}
)

const noYesInsight = "You're taking the right first step by assessing your business needs."

// maxChallenges caps how many No answers become challenge entries.
const maxChallenges = 2

// Synthesize turns a classified answer set into at most three narrative
// entries: one insight plus up to two challenges. It never fails on
// well-formed input; missing matches degrade to generic templates.
func (l *Library) Synthesize(answers []Answer, toolName string, bucket Bucket) []InsightEntry {
	switch bucket {
	case BucketAllYes:
		return append([]InsightEntry(nil), allYesEntries...)
	case BucketAllNo:
		return append([]InsightEntry(nil), allNoEntries...)
	}

	yesAnswers := filterAnswers(answers, Yes)
	noAnswers := filterAnswers(answers, No)

	entries := make([]InsightEntry, 0, 1+maxChallenges)
	entries = append(entries, InsightEntry{
		Kind:        KindInsight,
		Description: l.insightFromYes(yesAnswers, toolName),
	})
	entries = append(entries, l.challengesFromNo(noAnswers, maxChallenges)...)
	return entries
}

// insightFromYes summarizes what the business does well, matching Yes
// question text against the topic library's trigger rules.
func (l *Library) insightFromYes(yesAnswers []Answer, toolName string) string {
	if len(yesAnswers) == 0 {
		return noYesInsight
	}

	rules := l.TopicRules(toolName)
	for _, rule := range rules.InsightRules {
		for _, a := range yesAnswers {
			if rule.matches(strings.ToLower(a.Question)) {
				return rule.Text
			}
		}
	}
	return rules.InsightFallback
}

// challengesFromNo builds one challenge per No answer, in original order,
// up to count. The question's leading auxiliary verb phrase is rewritten
// to "You need to" and the matched action step is appended.
func (l *Library) challengesFromNo(noAnswers []Answer, count int) []InsightEntry {
	if count > len(noAnswers) {
		count = len(noAnswers)
	}
	out := make([]InsightEntry, 0, count)
	for _, a := range noAnswers[:count] {
		action := l.ActionFallback
		lowered := strings.ToLower(a.Question)
		for _, rule := range l.ActionRules {
			if rule.matches(lowered) {
				action = rule.Text
				break
			}
		}
		out = append(out, InsightEntry{
			Kind:        KindChallenge,
			Description: rewriteAuxiliary(a.Question) + " " + action,
		})
	}
	return out
}

var auxiliaryPhrases = []string{"Do you", "Have you", "Is it", "Are your", "Can you"}

func rewriteAuxiliary(question string) string {
	out := question
	for _, phrase := range auxiliaryPhrases {
		out = strings.Replace(out, phrase, "You need to", 1)
	}
	return out
}

func filterAnswers(answers []Answer, value AnswerValue) []Answer {
	var out []Answer
	for _, a := range answers {
		if a.Value == value {
			out = append(out, a)
		}
	}
	return out
}

// PreviewCards builds the three titled cards for the partial report by
// matching No answers against the topic library's card triggers, padding
// from remaining No answers when fewer than three triggers fire.
func (l *Library) PreviewCards(answers []Answer, toolName string) []InsightEntry {
	noAnswers := filterAnswers(answers, No)
	rules := l.TopicRules(toolName)

	out := make([]InsightEntry, 0, 3)
	for _, card := range rules.Cards {
		for _, a := range noAnswers {
			if card.matchesQuestion(a.Question) {
				out = append(out, InsightEntry{Kind: KindInsight, Title: card.Title, Description: card.Description})
				break
			}
		}
	}
	for len(out) < 3 && len(out) < len(noAnswers) {
		out = append(out, InsightEntry{
			Kind:        KindInsight,
			Title:       "Business Process Gap",
			Description: noAnswers[len(out)].Question,
		})
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func (c Card) matchesQuestion(question string) bool {
	for _, kw := range c.Keywords {
		if strings.Contains(question, kw) {
			return true
		}
	}
	return false
}
