package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPatientID struct {
	PatientID uuid.UUID
}

func (s ByPatientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ScheduledAscending struct{}

func (s ScheduledAscending) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("scheduled_at ASC")
}
