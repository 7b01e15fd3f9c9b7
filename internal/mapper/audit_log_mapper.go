package mapper

import (
	"encoding/json"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/model"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}

	detail := map[string]interface{}{}
	if len(a.Detail) > 0 {
		_ = json.Unmarshal(a.Detail, &detail)
	}

	return &entity.AuditLog{
		Id:        a.Id,
		PatientId: a.PatientId,
		Action:    a.Action,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}

	detail, _ := json.Marshal(a.Detail)

	return &model.AuditLog{
		Id:        a.Id,
		PatientId: a.PatientId,
		Action:    a.Action,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
