package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToleratesSurroundingText(t *testing.T) {
	text := "Here is the analysis you asked for:\n```json\n" +
		`{"patterns": [{"content": "sleep issues", "confidence": 0.8, "sessionRefs": ["2024-01-01"]}], "progressTrends": [], "riskIndicators": [], "treatmentGaps": []}` +
		"\n```\nLet me know if you need anything else."

	parsed, ok := Extract(text)
	require.True(t, ok)
	require.Len(t, parsed.Patterns, 1)
	assert.Equal(t, "sleep issues", parsed.Patterns[0].Content)
	assert.Equal(t, []string{"2024-01-01"}, parsed.Patterns[0].SessionRefs)
	assert.Empty(t, parsed.ProgressTrends)
}

func TestExtractFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "no braces", text: "I could not produce the analysis."},
		{name: "reversed braces", text: "} nothing here {"},
		{name: "invalid json between braces", text: "{patterns: [}"},
		{name: "no object at all", text: "the answer is null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Extract(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestExtractEmptyObject(t *testing.T) {
	parsed, ok := Extract("the model said {} and nothing more")
	require.True(t, ok)
	assert.Empty(t, parsed.Patterns)
	assert.Empty(t, parsed.ProgressTrends)
	assert.Empty(t, parsed.RiskIndicators)
	assert.Empty(t, parsed.TreatmentGaps)
}

func TestExtractNonArrayCategoryBecomesEmpty(t *testing.T) {
	text := `{"patterns": "not an array", "progressTrends": {"also": "wrong"}, "riskIndicators": 42, "treatmentGaps": [{"content": "kept", "confidence": 0.6}]}`

	parsed, ok := Extract(text)
	require.True(t, ok)
	assert.Empty(t, parsed.Patterns)
	assert.Empty(t, parsed.ProgressTrends)
	assert.Empty(t, parsed.RiskIndicators)
	require.Len(t, parsed.TreatmentGaps, 1)
	assert.Equal(t, "kept", parsed.TreatmentGaps[0].Content)
}

func TestExtractSkipsUndecodableElements(t *testing.T) {
	text := `{"patterns": [{"content": "good", "confidence": 0.7}, "just a string", {"content": "also good"}], "progressTrends": [], "riskIndicators": [], "treatmentGaps": []}`

	parsed, ok := Extract(text)
	require.True(t, ok)
	require.Len(t, parsed.Patterns, 2)
	assert.Equal(t, "good", parsed.Patterns[0].Content)
	assert.Equal(t, "also good", parsed.Patterns[1].Content)
}

func TestExtractMissingCategories(t *testing.T) {
	parsed, ok := Extract(`{"patterns": [{"content": "only one"}]}`)
	require.True(t, ok)
	assert.Len(t, parsed.Patterns, 1)
	assert.NotNil(t, parsed.ProgressTrends)
	assert.Empty(t, parsed.ProgressTrends)
	assert.NotNil(t, parsed.RiskIndicators)
	assert.NotNil(t, parsed.TreatmentGaps)
}

func TestDecodeStrict(t *testing.T) {
	parsed, err := Decode(`{"patterns": [], "progressTrends": [], "riskIndicators": [], "treatmentGaps": []}`)
	require.NoError(t, err)
	assert.NotNil(t, parsed.Patterns)

	_, err = Decode("not json at all")
	assert.Error(t, err)
}
