package mapper

import (
	"encoding/json"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/model"

	"gorm.io/datatypes"
)

type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func marshalItems(items []entity.InsightItem) datatypes.JSON {
	if items == nil {
		items = []entity.InsightItem{}
	}
	b, _ := json.Marshal(items)
	return b
}

func unmarshalItems(raw datatypes.JSON) []entity.InsightItem {
	items := []entity.InsightItem{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return items
}

func (m *InsightMapper) ToEntity(p *model.PatientInsight) *entity.PatientInsights {
	if p == nil {
		return nil
	}

	return &entity.PatientInsights{
		Id:             p.Id,
		PatientId:      p.PatientId,
		Patterns:       unmarshalItems(p.Patterns),
		ProgressTrends: unmarshalItems(p.ProgressTrends),
		RiskIndicators: unmarshalItems(p.RiskIndicators),
		TreatmentGaps:  unmarshalItems(p.TreatmentGaps),
		GeneratedAt:    p.GeneratedAt,
		Mode:           entity.GenerationMode(p.Mode),
		Model:          p.Model,
		TokensUsed:     p.TokensUsed,
		SavedAt:        p.SavedAt,
	}
}

func (m *InsightMapper) ToModel(p *entity.PatientInsights) *model.PatientInsight {
	if p == nil {
		return nil
	}

	return &model.PatientInsight{
		Id:             p.Id,
		PatientId:      p.PatientId,
		Patterns:       marshalItems(p.Patterns),
		ProgressTrends: marshalItems(p.ProgressTrends),
		RiskIndicators: marshalItems(p.RiskIndicators),
		TreatmentGaps:  marshalItems(p.TreatmentGaps),
		Mode:           string(p.Mode),
		Model:          p.Model,
		TokensUsed:     p.TokensUsed,
		GeneratedAt:    p.GeneratedAt,
		SavedAt:        p.SavedAt,
	}
}
