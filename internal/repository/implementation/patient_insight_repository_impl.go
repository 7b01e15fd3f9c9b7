package implementation

import (
	"context"
	"errors"
	"time"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/mapper"
	"therapy-insights-be/internal/model"
	"therapy-insights-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientInsightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewPatientInsightRepository(db *gorm.DB) contract.PatientInsightRepository {
	return &PatientInsightRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *PatientInsightRepositoryImpl) FindByPatientId(ctx context.Context, patientId uuid.UUID) (*entity.PatientInsights, error) {
	var m model.PatientInsight
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// SaveForPatient is a plain find-then-save. No transaction and no optimistic
// check: concurrent saves for the same patient race and the later write wins,
// which is accepted for single-operator usage.
func (r *PatientInsightRepositoryImpl) SaveForPatient(ctx context.Context, insights *entity.PatientInsights) (*entity.PatientInsights, error) {
	var existing model.PatientInsight
	err := r.db.WithContext(ctx).Where("patient_id = ?", insights.PatientId).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m := r.mapper.ToModel(insights)

	if err == nil {
		// Update in place, keeping the stored identity and original save time.
		m.Id = existing.Id
		m.CreatedAt = existing.CreatedAt
		if existing.SavedAt != nil {
			m.SavedAt = existing.SavedAt
		} else if m.SavedAt == nil {
			now := time.Now()
			m.SavedAt = &now
		}
		if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
			return nil, err
		}
		return r.mapper.ToEntity(m), nil
	}

	if m.SavedAt == nil {
		now := time.Now()
		m.SavedAt = &now
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *PatientInsightRepositoryImpl) DeleteByPatientId(ctx context.Context, patientId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("patient_id = ?", patientId).Delete(&model.PatientInsight{}).Error
}
