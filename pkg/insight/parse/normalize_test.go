package parse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConfidence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "in range", raw: "0.85", want: 0.85},
		{name: "zero", raw: "0", want: 0},
		{name: "one", raw: "1", want: 1},
		{name: "above range clamps to one", raw: "2.4", want: 1},
		{name: "below range clamps to zero", raw: "-0.3", want: 0},
		{name: "string becomes default", raw: `"high"`, want: 0.5},
		{name: "object becomes default", raw: `{"v": 1}`, want: 0.5},
		{name: "omitted becomes default", raw: "", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}
			got := normalizeConfidence(raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeClampsOutOfRangeConfidence(t *testing.T) {
	parsed, ok := Extract("```json\n" + `{"patterns": [{"content": "overconfident claim", "confidence": 2.4}], "progressTrends": [], "riskIndicators": [], "treatmentGaps": []}` + "\n```")
	require.True(t, ok)

	normalized := Normalize(parsed)
	require.Len(t, normalized.Patterns, 1)
	assert.Equal(t, 1.0, normalized.Patterns[0].Confidence)
}

func TestNormalizeDates(t *testing.T) {
	parsed := &ParsedInsights{
		ProgressTrends: []ParsedItem{
			{Content: "improving", FirstSeen: "2024-01-01", LastSeen: "2024-02-01"},
			{Content: "vague", FirstSeen: "sometime last year", LastSeen: ""},
			{Content: "rfc3339", FirstSeen: "2024-01-15T10:30:00Z"},
		},
	}

	normalized := Normalize(parsed)
	require.Len(t, normalized.ProgressTrends, 3)

	first := normalized.ProgressTrends[0]
	require.NotNil(t, first.FirstSeen)
	require.NotNil(t, first.LastSeen)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *first.FirstSeen)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *first.LastSeen)

	second := normalized.ProgressTrends[1]
	assert.Nil(t, second.FirstSeen)
	assert.Nil(t, second.LastSeen)

	third := normalized.ProgressTrends[2]
	require.NotNil(t, third.FirstSeen)
	assert.Equal(t, 15, third.FirstSeen.Day())
}

func TestEmptyIsAllNonNil(t *testing.T) {
	empty := Empty()
	assert.NotNil(t, empty.Patterns)
	assert.NotNil(t, empty.ProgressTrends)
	assert.NotNil(t, empty.RiskIndicators)
	assert.NotNil(t, empty.TreatmentGaps)
	assert.Empty(t, empty.Patterns)
}
