package openai

import (
	"fmt"
	"strings"

	"diagnostics-backend/internal/llm"
)

// Message is a single chat message in provider-neutral form.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a professional business consultant specializing in small business diagnostics and strategic planning."

// BuildPrompt constructs the chat messages for report generation. The
// prompt spells out the bucket special-cases so the model's output matches
// the deterministic fallback's shape.
func BuildPrompt(input llm.GenerateInput) []Message {
	var b strings.Builder

	b.WriteString("You are a friendly business advisor helping small business owners improve their operations. Use a simple, supportive tone at a 6th-grade reading level.\n\n")
	fmt.Fprintf(&b, "The client just completed a diagnostic tool called: %q.\nHere are their answers:\n", input.ToolName)
	for i, a := range input.Answers {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, a.Question, a.Value)
	}
	b.WriteString(`
Generate exactly 1 Insight and 2 Challenges based on their specific answers.

**Rules:**
1. **Insight**: Summarize the good things they're doing (from YES answers) in 1-2 lines maximum. Don't repeat questions, just give a gist of what they're doing well.
2. **Challenge 1**: From their NO answers, identify one specific area for improvement with a simple action step.
3. **Challenge 2**: From their NO answers, identify another specific area for improvement with a simple action step.

**Special Cases:**
- If ALL answers are YES: Praise their strong foundation but create FOMO for the detailed report. Say they can grow even more.
- If ALL answers are NO: Don't show any good part. Motivate them to take the first step toward success.
- If mostly YES (7+ YES): Focus on the few NO answers for challenges, expand them into 2 separate challenges.
- If mostly NO (7+ NO): Focus on the few YES answers for insight, create 2 specific challenges from NO answers.

Format your response exactly like this:
1. Insight: [One line summary of what they're doing well]
2. Challenge: [Specific issue + simple action step]
3. Challenge: [Another specific issue + simple action step]

Example:
1. Insight: Your business has good customer relationships and clear processes in place.
2. Challenge: Your data is scattered across different systems. Pick one tool and start keeping everything in one place.
3. Challenge: Your team communication could be better. Set up a weekly 15-minute meeting to share updates.

Avoid emojis, icons, or vague statements. Use direct, friendly tone.`)

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: strings.TrimSpace(b.String())},
	}
}
