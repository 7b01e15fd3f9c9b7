package entity

import (
	"time"

	"github.com/google/uuid"
)

type GenerationMode string

const (
	GenerationModeMock GenerationMode = "mock"
	GenerationModeReal GenerationMode = "real"
)

// GenerationOutcome distinguishes an honestly-empty result from one that is
// empty because generation or parsing failed. It is transient diagnostic
// state and is never persisted.
type GenerationOutcome string

const (
	OutcomeOK               GenerationOutcome = "ok"
	OutcomeEmptyHistory     GenerationOutcome = "empty_history"
	OutcomeGenerationFailed GenerationOutcome = "generation_failed"
	OutcomeParseFailed      GenerationOutcome = "parse_failed"
)

// InsightItem is one confidence-scored clinical observation.
// Confidence is always within [0,1] after normalization.
type InsightItem struct {
	Content     string     `json:"content"`
	Confidence  float64    `json:"confidence"`
	SessionRefs []string   `json:"sessionRefs,omitempty"`
	FirstSeen   *time.Time `json:"firstSeen,omitempty"`
	LastSeen    *time.Time `json:"lastSeen,omitempty"`
}

// PatientInsights is the four-category result of one generation run. The
// category slices are always non-nil, possibly empty.
type PatientInsights struct {
	Id             string
	PatientId      uuid.UUID
	Patterns       []InsightItem
	ProgressTrends []InsightItem
	RiskIndicators []InsightItem
	TreatmentGaps  []InsightItem
	GeneratedAt    time.Time
	Mode           GenerationMode
	Model          string
	TokensUsed     int
	Outcome        GenerationOutcome
	SavedAt        *time.Time
}

type DateRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

// AggregatedSessions is computed fresh per generation and never persisted.
// DateRange is nil exactly when SessionCount is zero. Sessions are ordered
// ascending by scheduled time.
type AggregatedSessions struct {
	PatientId    uuid.UUID
	SessionCount int
	DateRange    *DateRange
	Sessions     []*Session
}
