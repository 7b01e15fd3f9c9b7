package parse

import (
	"encoding/json"
	"strings"
)

// ParsedItem is the loosely-typed pre-validation form of one insight.
// Confidence stays raw here; Normalize repairs it.
type ParsedItem struct {
	Content     string          `json:"content"`
	Confidence  json.RawMessage `json:"confidence"`
	SessionRefs []string        `json:"sessionRefs"`
	FirstSeen   string          `json:"firstSeen"`
	LastSeen    string          `json:"lastSeen"`
}

// ParsedInsights mirrors the four expected categories before validation.
type ParsedInsights struct {
	Patterns       []ParsedItem `json:"patterns"`
	ProgressTrends []ParsedItem `json:"progressTrends"`
	RiskIndicators []ParsedItem `json:"riskIndicators"`
	TreatmentGaps  []ParsedItem `json:"treatmentGaps"`
}

// Extract pulls the four-category object out of untrusted generated text.
// It takes the substring from the first '{' to the last '}' so surrounding
// prose and code fences are tolerated. The boolean result is the only failure
// signal; callers must handle the false branch.
func Extract(text string) (*ParsedInsights, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, false
	}
	if obj == nil {
		// "null" decodes without error but is not object-shaped.
		return nil, false
	}

	return &ParsedInsights{
		Patterns:       decodeItems(obj["patterns"]),
		ProgressTrends: decodeItems(obj["progressTrends"]),
		RiskIndicators: decodeItems(obj["riskIndicators"]),
		TreatmentGaps:  decodeItems(obj["treatmentGaps"]),
	}, true
}

// Decode strictly unmarshals trusted, well-formed JSON text. It is used for
// the deterministic mock output, which never needs Extract's repairs.
func Decode(text string) (*ParsedInsights, error) {
	var p ParsedInsights
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, err
	}
	ensureArrays(&p)
	return &p, nil
}

// decodeItems turns one category value into items. A missing or non-array
// value yields an empty slice; an undecodable element is skipped rather than
// failing the category.
func decodeItems(raw json.RawMessage) []ParsedItem {
	if len(raw) == 0 {
		return []ParsedItem{}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return []ParsedItem{}
	}

	items := make([]ParsedItem, 0, len(elements))
	for _, el := range elements {
		var item ParsedItem
		if err := json.Unmarshal(el, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func ensureArrays(p *ParsedInsights) {
	if p.Patterns == nil {
		p.Patterns = []ParsedItem{}
	}
	if p.ProgressTrends == nil {
		p.ProgressTrends = []ParsedItem{}
	}
	if p.RiskIndicators == nil {
		p.RiskIndicators = []ParsedItem{}
	}
	if p.TreatmentGaps == nil {
		p.TreatmentGaps = []ParsedItem{}
	}
}
