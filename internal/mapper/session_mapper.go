package mapper

import (
	"encoding/json"
	"time"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var notes entity.SessionNotes
	if len(s.Notes) > 0 {
		// A row with undecodable notes still participates with blank SOAP fields.
		_ = json.Unmarshal(s.Notes, &notes)
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Session{
		Id:              s.Id,
		PatientId:       s.PatientId,
		TherapistId:     s.TherapistId,
		ScheduledAt:     s.ScheduledAt,
		Status:          entity.SessionStatus(s.Status),
		TherapistRole:   entity.TherapistRole(s.TherapistRole),
		SessionType:     s.SessionType,
		DurationMinutes: s.DurationMinutes,
		Notes:           notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	notes, _ := json.Marshal(s.Notes)

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:              s.Id,
		PatientId:       s.PatientId,
		TherapistId:     s.TherapistId,
		ScheduledAt:     s.ScheduledAt,
		Status:          string(s.Status),
		TherapistRole:   string(s.TherapistRole),
		SessionType:     s.SessionType,
		DurationMinutes: s.DurationMinutes,
		Notes:           notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
