package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Session rows are owned by the scheduling product; this core only reads them.
type Session struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PatientId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	TherapistId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ScheduledAt     time.Time      `gorm:"not null;index"`
	Status          string         `gorm:"type:varchar(32);not null;index"`
	TherapistRole   string         `gorm:"type:varchar(32);not null"`
	SessionType     string         `gorm:"type:varchar(64)"`
	DurationMinutes int            `gorm:"not null;default:0"`
	Notes           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
