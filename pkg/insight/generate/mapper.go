package generate

import (
	"fmt"
	"time"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/pkg/insight/parse"

	"github.com/google/uuid"
)

// Mapper converts normalized insight data into the domain entity. Items with
// no content are dropped here; everything else was already repaired by
// normalization.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

func (m *Mapper) ToEntity(patientId uuid.UUID, normalized *parse.Normalized, res *Result, generatedAt time.Time) *entity.PatientInsights {
	return &entity.PatientInsights{
		Id:             fmt.Sprintf("insights-%s-%d", patientId, generatedAt.UnixMilli()),
		PatientId:      patientId,
		Patterns:       keepValid(normalized.Patterns),
		ProgressTrends: keepValid(normalized.ProgressTrends),
		RiskIndicators: keepValid(normalized.RiskIndicators),
		TreatmentGaps:  keepValid(normalized.TreatmentGaps),
		GeneratedAt:    generatedAt,
		Mode:           res.Mode,
		Model:          res.Model,
		TokensUsed:     res.TokensUsed,
	}
}

func keepValid(items []entity.InsightItem) []entity.InsightItem {
	out := make([]entity.InsightItem, 0, len(items))
	for _, item := range items {
		if item.Content == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
