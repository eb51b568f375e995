package diagnostic

import (
	"fmt"
	"strings"
	"time"
)

// Timeline groups implementation steps by horizon. The content is fixed
// across all tools.
type Timeline struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// Report is the fully composed document. It is derived state: regenerated
// per request from the answer set, never stored or mutated.
type Report struct {
	ClientName       string       `json:"clientName"`
	ToolName         string       `json:"toolName"`
	Score            int          `json:"score"`
	Date             string       `json:"date"`
	ExecutiveSummary string       `json:"executiveSummary"`
	KeyInsights      []KeyInsight `json:"keyInsights"`
	Recommendations  []string     `json:"recommendations"`
	Timeline         Timeline     `json:"timeline"`
	Metrics          []string     `json:"metrics"`
}

var fixedTimeline = Timeline{
	Immediate: []string{
		"Review diagnostic report with leadership team",
		"Prioritize top 3 recommendations by impact and resources",
		"Assign team members as owners for each initiative",
	},
	ShortTerm: []string{
		"Create detailed implementation plans for priority areas",
		"Begin implementing quick wins for immediate results",
		"Set up weekly progress check-ins",
	},
	LongTerm: []string{
		"Establish quarterly business diagnostic reviews",
		"Scale successful improvements across other business areas",
		"Consider engaging professional consultants for complex implementations",
	},
}

// Compose assembles the structured report from the answer set and the
// static per-topic tables.
func (l *Library) Compose(toolName string, score int, answers []Answer, clientName string, now time.Time) Report {
	yes := len(filterAnswers(answers, Yes))
	no := len(filterAnswers(answers, No))
	rules := l.TopicRules(toolName)

	insights := rules.KeyInsights
	if len(insights) > 3 {
		insights = insights[:3]
	}

	return Report{
		ClientName:       clientName,
		ToolName:         toolName,
		Score:            score,
		Date:             now.Format("1/2/2006"),
		ExecutiveSummary: executiveSummary(toolName, score, no, yes),
		KeyInsights:      insights,
		Recommendations:  rules.Recommendations,
		Timeline:         fixedTimeline,
		Metrics:          rules.Metrics,
	}
}

func executiveSummary(toolName string, score, issues, strengths int) string {
	tool := toolName
	if idx := strings.IndexByte(toolName, ' '); idx > 0 {
		tool = toolName[:idx]
	}

	switch {
	case score >= 80:
		return fmt.Sprintf("Your %s systems demonstrate strong performance with a score of %d/100. While you have %d areas of strength, there are %d strategic opportunities that could elevate your business to the next level. Your foundation is solid, making this an ideal time to optimize and scale operations.", tool, score, strengths, issues)
	case score >= 60:
		return fmt.Sprintf("Your %s assessment reveals a score of %d/100, indicating good foundational practices with significant room for improvement. You have %d areas working well, but %d critical gaps are limiting your business potential. Addressing these areas could dramatically improve operational efficiency.", tool, score, strengths, issues)
	default:
		return fmt.Sprintf("Your %s diagnostic shows a score of %d/100, highlighting substantial opportunities for improvement. While you have %d positive elements to build upon, %d critical areas require immediate attention. This assessment provides a clear roadmap for transforming your business operations.", tool, score, strengths, issues)
	}
}

// Render formats the report as the branded text document sent to clients.
func (r Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "**NBLK BUSINESS DIAGNOSTIC REPORT**\n**Small Business Solutions by NBLK**\n\n")
	fmt.Fprintf(&b, "**Client:** %s\n**Assessment:** %s\n**Date:** %s\n**Score:** %d/100\n\n---\n\n", r.ClientName, r.ToolName, r.Date, r.Score)

	b.WriteString("**EXECUTIVE SUMMARY**\n\n")
	b.WriteString(r.ExecutiveSummary)
	b.WriteString("\n\n---\n\n**KEY INSIGHTS**\n\n")
	for i, insight := range r.KeyInsights {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. **%s**\n   %s", i+1, insight.Title, insight.Description)
	}

	b.WriteString("\n\n---\n\n**STRATEGIC RECOMMENDATIONS**\n\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	b.WriteString("\n---\n\n**IMPLEMENTATION TIMELINE**\n\n**Immediate (0-30 days):**\n")
	writeBullets(&b, r.Timeline.Immediate)
	b.WriteString("\n**Short-term (30-90 days):**\n")
	writeBullets(&b, r.Timeline.ShortTerm)
	b.WriteString("\n**Long-term (90+ days):**\n")
	writeBullets(&b, r.Timeline.LongTerm)

	b.WriteString("\n---\n\n**SUCCESS METRICS**\n\n")
	writeBullets(&b, r.Metrics)

	b.WriteString("\n---\n\n**NEXT STEPS**\n\n")
	b.WriteString("1. Review this report with your leadership team within 48 hours\n")
	b.WriteString("2. Prioritize the top 3 recommendations based on impact and resources\n")
	b.WriteString("3. Schedule follow-up consultation to discuss implementation strategy\n\n")
	b.WriteString("**Contact Information:**\nNBLK Consulting\n442 5th Avenue, #2304, New York, NY 10018\nEmail: awashington@nblkconsulting.com\nPhone: (212) 598-3030\n\n")
	b.WriteString("*Small Business Solutions by NBLK - Empowering Business Clarity Through Data-Driven Insights*\n")

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}
