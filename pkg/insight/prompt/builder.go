package prompt

import (
	"fmt"
	"strings"
)

// Request is the system/user message pair handed to whichever generation path
// runs. The builder does not know or care which one that is.
type Request struct {
	System string
	User   string
}

// Builder produces the fixed clinical-analysis prompt pair.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Build(formattedSessions string, sessionCount int) *Request {
	return &Request{
		System: b.buildSystemPrompt(),
		User:   b.buildUserPrompt(formattedSessions, sessionCount),
	}
}

func (b *Builder) buildSystemPrompt() string {
	var p strings.Builder

	p.WriteString("You are a clinical analyst reviewing a patient's therapy session history.\n")
	p.WriteString("Analyze the sessions and produce structured observations in exactly four categories:\n\n")

	p.WriteString("1. patterns: recurring themes, behaviors, or symptoms appearing across sessions\n")
	p.WriteString("2. progressTrends: changes over time in symptoms, functioning, or engagement\n")
	p.WriteString("3. riskIndicators: safety concerns, risk factors, or warning signs\n")
	p.WriteString("4. treatmentGaps: areas not yet addressed or needing more attention\n\n")

	p.WriteString("Respond with a single JSON object of this exact shape:\n")
	p.WriteString(`{
  "patterns": [{"content": "...", "confidence": 0.0, "sessionRefs": ["YYYY-MM-DD"]}],
  "progressTrends": [{"content": "...", "confidence": 0.0, "firstSeen": "YYYY-MM-DD", "lastSeen": "YYYY-MM-DD"}],
  "riskIndicators": [{"content": "...", "confidence": 0.0, "sessionRefs": ["YYYY-MM-DD"]}],
  "treatmentGaps": [{"content": "...", "confidence": 0.0}]
}`)
	p.WriteString("\n\n")

	p.WriteString("Confidence scoring:\n")
	p.WriteString("- 0.9 or above: strong evidence across multiple sessions\n")
	p.WriteString("- 0.7 to 0.9: moderate evidence\n")
	p.WriteString("- below 0.7: tentative, single-session or indirect evidence\n\n")

	p.WriteString("Write every observation in the same language as the session notes.\n")
	p.WriteString("Aim for 2 to 5 items per category; use an empty array when the sessions do not support a category.\n")
	p.WriteString("Prioritize safety-relevant findings above all others.\n")

	return p.String()
}

func (b *Builder) buildUserPrompt(formattedSessions string, sessionCount int) string {
	var p strings.Builder

	fmt.Fprintf(&p, "Below are %d completed therapy sessions for one patient, oldest first.\n\n", sessionCount)
	p.WriteString(formattedSessions)
	p.WriteString("\n\nAnalyze the full history and respond with the four-category JSON object only.")

	return p.String()
}
