package parse

import (
	"encoding/json"
	"math"
	"time"

	"therapy-insights-be/internal/entity"
)

const defaultConfidence = 0.5

// Normalized holds the four categories after repair, ready for mapping.
type Normalized struct {
	Patterns       []entity.InsightItem
	ProgressTrends []entity.InsightItem
	RiskIndicators []entity.InsightItem
	TreatmentGaps  []entity.InsightItem
}

// Normalize repairs every item locally: confidence is forced into [0,1]
// (malformed or missing becomes 0.5) and date strings become timestamps when
// they parse. A bad field never fails the generation.
func Normalize(p *ParsedInsights) *Normalized {
	return &Normalized{
		Patterns:       normalizeItems(p.Patterns),
		ProgressTrends: normalizeItems(p.ProgressTrends),
		RiskIndicators: normalizeItems(p.RiskIndicators),
		TreatmentGaps:  normalizeItems(p.TreatmentGaps),
	}
}

// Empty is the all-empty normalized structure used on the degraded paths.
func Empty() *Normalized {
	return &Normalized{
		Patterns:       []entity.InsightItem{},
		ProgressTrends: []entity.InsightItem{},
		RiskIndicators: []entity.InsightItem{},
		TreatmentGaps:  []entity.InsightItem{},
	}
}

func normalizeItems(items []ParsedItem) []entity.InsightItem {
	out := make([]entity.InsightItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.InsightItem{
			Content:     item.Content,
			Confidence:  normalizeConfidence(item.Confidence),
			SessionRefs: item.SessionRefs,
			FirstSeen:   parseDate(item.FirstSeen),
			LastSeen:    parseDate(item.LastSeen),
		})
	}
	return out
}

func normalizeConfidence(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return defaultConfidence
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return defaultConfidence
	}
	if math.IsNaN(f) {
		return defaultConfidence
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
