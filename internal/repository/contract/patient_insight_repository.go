package contract

import (
	"context"

	"therapy-insights-be/internal/entity"

	"github.com/google/uuid"
)

// PatientInsightRepository persists at most one insight record per patient.
type PatientInsightRepository interface {
	// FindByPatientId returns the persisted record for the patient, or nil.
	FindByPatientId(ctx context.Context, patientId uuid.UUID) (*entity.PatientInsights, error)

	// SaveForPatient upserts. An existing record keeps its identity and is
	// updated in place; otherwise a new record is created. SavedAt is set
	// only when not already present. The read-modify-write is deliberately
	// unguarded: concurrent saves race and the later write wins.
	SaveForPatient(ctx context.Context, insights *entity.PatientInsights) (*entity.PatientInsights, error)

	// DeleteByPatientId removes the persisted record if one exists.
	DeleteByPatientId(ctx context.Context, patientId uuid.UUID) error
}
