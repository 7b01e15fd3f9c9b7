package dto

import (
	"time"

	"github.com/google/uuid"
)

// InsightAuditMessage is the payload published on the audit topic for every
// insight lifecycle event (generated, saved, deleted).
type InsightAuditMessage struct {
	PatientId uuid.UUID `json:"patientId"`
	Action    string    `json:"action"`
	Mode      string    `json:"mode,omitempty"`
	Model     string    `json:"model,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	ItemCount int       `json:"itemCount,omitempty"`
	At        time.Time `json:"at"`
}

const (
	AuditActionGenerated = "insights_generated"
	AuditActionSaved     = "insights_saved"
	AuditActionDeleted   = "insights_deleted"
)
