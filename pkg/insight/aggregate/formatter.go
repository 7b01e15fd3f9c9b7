package aggregate

import (
	"fmt"
	"strings"

	"therapy-insights-be/internal/entity"
)

// sessionSeparator lets the generator segment session boundaries reliably.
var sessionSeparator = strings.Repeat("=", 60)

// Formatter renders sessions into the canonical text blocks consumed by the
// prompt builder. The template is kept stable: SOAP fields are always present
// even when blank, optional sections appear only when filled.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatAll renders every session in order, joined by the separator rule.
func (f *Formatter) FormatAll(sessions []*entity.Session) string {
	blocks := make([]string, len(sessions))
	for i, s := range sessions {
		blocks[i] = f.Format(i, s)
	}
	return strings.Join(blocks, "\n"+sessionSeparator+"\n")
}

// Format renders one session. index is zero-based; the header is numbered
// from one.
func (f *Formatter) Format(index int, s *entity.Session) string {
	var b strings.Builder

	f.writeHeader(&b, index, s)
	f.writeSOAP(&b, s)
	f.writeOptionalSections(&b, s)

	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) writeHeader(b *strings.Builder, index int, s *entity.Session) {
	sessionType := s.SessionType
	if sessionType == "" {
		sessionType = "Individual Therapy"
	}
	fmt.Fprintf(b, "Session %d - %s (%s, %s, %d minutes)\n",
		index+1,
		s.ScheduledAt.Format("January 2, 2006"),
		s.TherapistRole.Label(),
		sessionType,
		s.DurationMinutes,
	)
}

func (f *Formatter) writeSOAP(b *strings.Builder, s *entity.Session) {
	fmt.Fprintf(b, "Subjective: %s\n", s.Notes.Subjective)
	fmt.Fprintf(b, "Objective: %s\n", s.Notes.Objective)
	fmt.Fprintf(b, "Assessment: %s\n", s.Notes.Assessment)
	fmt.Fprintf(b, "Plan: %s\n", s.Notes.Plan)
}

func (f *Formatter) writeOptionalSections(b *strings.Builder, s *entity.Session) {
	n := s.Notes

	if n.ChiefComplaint != "" {
		fmt.Fprintf(b, "Chief Complaint: %s\n", n.ChiefComplaint)
	}
	if len(n.InterventionsUsed) > 0 {
		fmt.Fprintf(b, "Interventions Used: %s\n", strings.Join(n.InterventionsUsed, ", "))
	}
	if n.ProgressTowardGoals != "" {
		fmt.Fprintf(b, "Progress Toward Goals: %s\n", n.ProgressTowardGoals)
	}
	if n.RiskAssessment != nil {
		f.writeRiskAssessment(b, n.RiskAssessment)
	}
	if len(n.Medications) > 0 {
		b.WriteString("Medications:\n")
		for _, med := range n.Medications {
			fmt.Fprintf(b, "  - %s %s, %s", med.Name, med.Dosage, med.Frequency)
			if med.SideEffects != "" {
				fmt.Fprintf(b, " (side effects: %s)", med.SideEffects)
			}
			b.WriteString("\n")
		}
	}
	if n.Homework != "" {
		fmt.Fprintf(b, "Homework: %s\n", n.Homework)
	}
	if n.NextSessionPlan != "" {
		fmt.Fprintf(b, "Next Session Plan: %s\n", n.NextSessionPlan)
	}
	if n.AdditionalNotes != "" {
		fmt.Fprintf(b, "Additional Notes: %s\n", n.AdditionalNotes)
	}
}

func (f *Formatter) writeRiskAssessment(b *strings.Builder, r *entity.RiskAssessment) {
	b.WriteString("Risk Assessment:\n")
	fmt.Fprintf(b, "  - Suicidal Ideation: %s\n", r.SuicidalIdeation.Label())
	fmt.Fprintf(b, "  - Homicidal Ideation: %s\n", r.HomicidalIdeation.Label())
	fmt.Fprintf(b, "  - Self-Harm Risk: %s\n", r.SelfHarmRisk.Label())
	if r.Notes != "" {
		fmt.Fprintf(b, "  - Notes: %s\n", r.Notes)
	}
}
