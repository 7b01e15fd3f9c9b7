package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PatientInsight is the single durable insight record per patient. The unique
// index on patient_id backs the at-most-one-record invariant.
type PatientInsight struct {
	Id             string         `gorm:"type:varchar(128);primaryKey"`
	PatientId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Patterns       datatypes.JSON `gorm:"type:jsonb"`
	ProgressTrends datatypes.JSON `gorm:"type:jsonb"`
	RiskIndicators datatypes.JSON `gorm:"type:jsonb"`
	TreatmentGaps  datatypes.JSON `gorm:"type:jsonb"`
	Mode           string         `gorm:"type:varchar(16);not null"`
	Model          string         `gorm:"type:varchar(64)"`
	TokensUsed     int            `gorm:"not null;default:0"`
	GeneratedAt    time.Time      `gorm:"not null"`
	SavedAt        *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (PatientInsight) TableName() string {
	return "patient_insights"
}
