package generate

import (
	"encoding/json"
	"testing"
	"time"

	"therapy-insights-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggregateOf(days []time.Time, subjective string) *entity.AggregatedSessions {
	patientId := uuid.New()
	sessions := make([]*entity.Session, len(days))
	for i, day := range days {
		sessions[i] = &entity.Session{
			Id:          uuid.New(),
			PatientId:   patientId,
			ScheduledAt: day,
			Status:      entity.SessionStatusCompleted,
			Notes:       entity.SessionNotes{Subjective: subjective},
		}
	}

	agg := &entity.AggregatedSessions{
		PatientId:    patientId,
		SessionCount: len(sessions),
		Sessions:     sessions,
	}
	if len(sessions) > 0 {
		agg.DateRange = &entity.DateRange{
			Earliest: days[0],
			Latest:   days[len(days)-1],
		}
	}
	return agg
}

func decodePayload(t *testing.T, text string) mockPayload {
	t.Helper()
	var payload mockPayload
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	return payload
}

func TestMockGenerateHebrewHistory(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	agg := aggregateOf(days, "המטופל מדווח על קשיי שינה")

	res := NewMockGenerator().Generate(agg)

	assert.Equal(t, entity.GenerationModeMock, res.Mode)
	assert.Equal(t, MockModel, res.Model)
	assert.Empty(t, res.Err)

	payload := decodePayload(t, res.Text)
	require.NotEmpty(t, payload.Patterns)
	assert.Equal(t, hebrewSamples.Patterns[0].Content, payload.Patterns[0].Content)

	require.NotEmpty(t, payload.ProgressTrends)
	assert.Equal(t, "2024-01-01", payload.ProgressTrends[0].FirstSeen)
	assert.Equal(t, "2024-02-01", payload.ProgressTrends[0].LastSeen)

	require.NotEmpty(t, payload.Patterns[0].SessionRefs)
	assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-02-01"}, payload.Patterns[0].SessionRefs)
}

func TestMockGenerateEnglishHistory(t *testing.T) {
	days := []time.Time{time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	agg := aggregateOf(days, "Patient reports trouble sleeping")

	res := NewMockGenerator().Generate(agg)

	payload := decodePayload(t, res.Text)
	require.NotEmpty(t, payload.Patterns)
	assert.Equal(t, englishSamples.Patterns[0].Content, payload.Patterns[0].Content)
	assert.Equal(t, englishSamples.Patterns[0].Confidence, payload.Patterns[0].Confidence)
}

func TestMockGenerateCapsSessionRefs(t *testing.T) {
	days := make([]time.Time, 5)
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := range days {
		days[i] = base.AddDate(0, 0, i*7)
	}
	agg := aggregateOf(days, "weekly check-in")

	payload := decodePayload(t, NewMockGenerator().Generate(agg).Text)

	require.NotEmpty(t, payload.RiskIndicators)
	assert.Len(t, payload.RiskIndicators[0].SessionRefs, maxSessionRefs)
}

func TestMockGenerateEmptyHistory(t *testing.T) {
	agg := &entity.AggregatedSessions{PatientId: uuid.New()}

	res := NewMockGenerator().Generate(agg)

	assert.Equal(t, entity.GenerationModeMock, res.Mode)
	assert.Equal(t, MockModel, res.Model)

	payload := decodePayload(t, res.Text)
	assert.Empty(t, payload.Patterns)
	assert.Empty(t, payload.ProgressTrends)
	assert.Empty(t, payload.RiskIndicators)
	assert.Empty(t, payload.TreatmentGaps)
}

func TestMockGenerateIsDeterministic(t *testing.T) {
	days := []time.Time{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	agg := aggregateOf(days, "stable week")

	g := NewMockGenerator()
	assert.Equal(t, g.Generate(agg).Text, g.Generate(agg).Text)
}
