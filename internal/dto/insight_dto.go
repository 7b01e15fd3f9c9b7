package dto

import (
	"time"

	"github.com/google/uuid"
)

type InsightItemDTO struct {
	Content     string     `json:"content"`
	Confidence  float64    `json:"confidence"`
	SessionRefs []string   `json:"sessionRefs,omitempty"`
	FirstSeen   *time.Time `json:"firstSeen,omitempty"`
	LastSeen    *time.Time `json:"lastSeen,omitempty"`
}

type DateRangeDTO struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

// PatientInsightsResponse is the wire form of one insight record, transient
// or persisted.
type PatientInsightsResponse struct {
	Id             string           `json:"id"`
	PatientId      uuid.UUID        `json:"patientId"`
	Patterns       []InsightItemDTO `json:"patterns"`
	ProgressTrends []InsightItemDTO `json:"progressTrends"`
	RiskIndicators []InsightItemDTO `json:"riskIndicators"`
	TreatmentGaps  []InsightItemDTO `json:"treatmentGaps"`
	GeneratedAt    time.Time        `json:"generatedAt"`
	Mode           string           `json:"mode"`
	Model          string           `json:"model,omitempty"`
	TokensUsed     int              `json:"tokensUsed,omitempty"`
	SavedAt        *time.Time       `json:"savedAt,omitempty"`
}

// GenerateInsightsResponse adds the per-run diagnostics a caller needs to
// tell "no sessions yet" apart from "nothing parsed".
type GenerateInsightsResponse struct {
	PatientInsightsResponse
	SessionCount int           `json:"sessionCount"`
	DateRange    *DateRangeDTO `json:"dateRange,omitempty"`
	Outcome      string        `json:"outcome"`
}

type ListAuditLogsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

type AuditLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	PatientId uuid.UUID              `json:"patientId"`
	Action    string                 `json:"action"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
