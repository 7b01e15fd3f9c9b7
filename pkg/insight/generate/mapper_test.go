package generate

import (
	"fmt"
	"testing"
	"time"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/pkg/insight/parse"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperToEntity(t *testing.T) {
	patientId := uuid.New()
	generatedAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	normalized := &parse.Normalized{
		Patterns: []entity.InsightItem{
			{Content: "recurring theme", Confidence: 0.8},
			{Content: "", Confidence: 0.9}, // dropped
		},
		ProgressTrends: []entity.InsightItem{},
		RiskIndicators: []entity.InsightItem{{Content: "risk", Confidence: 0.91}},
		TreatmentGaps:  []entity.InsightItem{},
	}
	res := &Result{Mode: entity.GenerationModeReal, Model: "gpt-4o-mini", TokensUsed: 200}

	insights := NewMapper().ToEntity(patientId, normalized, res, generatedAt)

	wantId := fmt.Sprintf("insights-%s-%d", patientId, generatedAt.UnixMilli())
	assert.Equal(t, wantId, insights.Id)
	assert.Equal(t, patientId, insights.PatientId)
	assert.Equal(t, generatedAt, insights.GeneratedAt)
	assert.Equal(t, entity.GenerationModeReal, insights.Mode)
	assert.Equal(t, "gpt-4o-mini", insights.Model)
	assert.Equal(t, 200, insights.TokensUsed)

	require.Len(t, insights.Patterns, 1)
	assert.Equal(t, "recurring theme", insights.Patterns[0].Content)
	assert.Len(t, insights.RiskIndicators, 1)
	assert.NotNil(t, insights.ProgressTrends)
	assert.Empty(t, insights.ProgressTrends)
	assert.Nil(t, insights.SavedAt)
}
