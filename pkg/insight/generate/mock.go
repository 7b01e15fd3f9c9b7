package generate

import (
	"encoding/json"
	"unicode"

	"therapy-insights-be/internal/entity"
)

const maxSessionRefs = 3

// MockGenerator produces deterministic, language-aware synthetic insights
// without touching the network. Its output is grounded in the aggregated
// sessions: pattern and risk items reference real session dates, trend items
// carry the true first and last session dates.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

type mockItem struct {
	Content     string   `json:"content"`
	Confidence  float64  `json:"confidence"`
	SessionRefs []string `json:"sessionRefs,omitempty"`
	FirstSeen   string   `json:"firstSeen,omitempty"`
	LastSeen    string   `json:"lastSeen,omitempty"`
}

type mockPayload struct {
	Patterns       []mockItem `json:"patterns"`
	ProgressTrends []mockItem `json:"progressTrends"`
	RiskIndicators []mockItem `json:"riskIndicators"`
	TreatmentGaps  []mockItem `json:"treatmentGaps"`
}

func (g *MockGenerator) Generate(agg *entity.AggregatedSessions) *Result {
	payload := mockPayload{
		Patterns:       []mockItem{},
		ProgressTrends: []mockItem{},
		RiskIndicators: []mockItem{},
		TreatmentGaps:  []mockItem{},
	}

	if agg.SessionCount > 0 {
		set := englishSamples
		if containsHebrew(agg.Sessions) {
			set = hebrewSamples
		}

		dates := sessionDates(agg.Sessions)
		refs := dates
		if len(refs) > maxSessionRefs {
			refs = refs[:maxSessionRefs]
		}
		first := agg.DateRange.Earliest.Format("2006-01-02")
		last := agg.DateRange.Latest.Format("2006-01-02")

		payload.Patterns = itemsWithRefs(set.Patterns, refs)
		payload.ProgressTrends = trendItems(set.ProgressTrends, first, last)
		payload.RiskIndicators = itemsWithRefs(set.RiskIndicators, refs)
		payload.TreatmentGaps = plainItems(set.TreatmentGaps)
	}

	text, _ := json.Marshal(payload)

	return &Result{
		Text:  string(text),
		Mode:  entity.GenerationModeMock,
		Model: MockModel,
	}
}

// containsHebrew reports whether any session's subjective text carries a
// Hebrew-range character. That single signal selects the sample language.
func containsHebrew(sessions []*entity.Session) bool {
	for _, s := range sessions {
		for _, r := range s.Notes.Subjective {
			if unicode.Is(unicode.Hebrew, r) {
				return true
			}
		}
	}
	return false
}

func sessionDates(sessions []*entity.Session) []string {
	dates := make([]string, len(sessions))
	for i, s := range sessions {
		dates[i] = s.ScheduledAt.Format("2006-01-02")
	}
	return dates
}

func itemsWithRefs(samples []sampleText, refs []string) []mockItem {
	items := make([]mockItem, len(samples))
	for i, sample := range samples {
		items[i] = mockItem{
			Content:     sample.Content,
			Confidence:  sample.Confidence,
			SessionRefs: refs,
		}
	}
	return items
}

func trendItems(samples []sampleText, first, last string) []mockItem {
	items := make([]mockItem, len(samples))
	for i, sample := range samples {
		items[i] = mockItem{
			Content:    sample.Content,
			Confidence: sample.Confidence,
			FirstSeen:  first,
			LastSeen:   last,
		}
	}
	return items
}

func plainItems(samples []sampleText) []mockItem {
	items := make([]mockItem, len(samples))
	for i, sample := range samples {
		items[i] = mockItem{
			Content:    sample.Content,
			Confidence: sample.Confidence,
		}
	}
	return items
}
