package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusNoShow    SessionStatus = "no_show"
)

// TherapistRole is a closed set. Label and AllTherapistRoles must cover every
// constant; TestTherapistRoleLabels enforces this.
type TherapistRole string

const (
	RolePsychologist    TherapistRole = "psychologist"
	RolePsychiatrist    TherapistRole = "psychiatrist"
	RoleSocialWorker    TherapistRole = "social_worker"
	RoleCounselor       TherapistRole = "counselor"
	RoleFamilyTherapist TherapistRole = "family_therapist"
)

var AllTherapistRoles = []TherapistRole{
	RolePsychologist,
	RolePsychiatrist,
	RoleSocialWorker,
	RoleCounselor,
	RoleFamilyTherapist,
}

// Label returns the display form used in formatted session text.
func (r TherapistRole) Label() string {
	switch r {
	case RolePsychologist:
		return "Psychologist"
	case RolePsychiatrist:
		return "Psychiatrist"
	case RoleSocialWorker:
		return "Clinical Social Worker"
	case RoleCounselor:
		return "Licensed Counselor"
	case RoleFamilyTherapist:
		return "Marriage & Family Therapist"
	}
	// Unknown values can only come from outside the code base (raw DB rows).
	return string(r)
}

// IdeationLevel is the fixed vocabulary for suicidal/homicidal ideation.
type IdeationLevel string

const (
	IdeationNone           IdeationLevel = "none"
	IdeationPassive        IdeationLevel = "passive"
	IdeationActiveNoPlan   IdeationLevel = "active_no_plan"
	IdeationActiveWithPlan IdeationLevel = "active_with_plan"
)

var AllIdeationLevels = []IdeationLevel{
	IdeationNone,
	IdeationPassive,
	IdeationActiveNoPlan,
	IdeationActiveWithPlan,
}

func (l IdeationLevel) Label() string {
	switch l {
	case IdeationNone:
		return "None"
	case IdeationPassive:
		return "Passive ideation"
	case IdeationActiveNoPlan:
		return "Active ideation (no plan)"
	case IdeationActiveWithPlan:
		return "Active ideation with plan"
	}
	return string(l)
}

// SeverityLevel is the fixed vocabulary for graded risk dimensions.
type SeverityLevel string

const (
	SeverityNone     SeverityLevel = "none"
	SeverityLow      SeverityLevel = "low"
	SeverityModerate SeverityLevel = "moderate"
	SeverityHigh     SeverityLevel = "high"
)

var AllSeverityLevels = []SeverityLevel{
	SeverityNone,
	SeverityLow,
	SeverityModerate,
	SeverityHigh,
}

func (l SeverityLevel) Label() string {
	switch l {
	case SeverityNone:
		return "None"
	case SeverityLow:
		return "Low"
	case SeverityModerate:
		return "Moderate"
	case SeverityHigh:
		return "High"
	}
	return string(l)
}

type RiskAssessment struct {
	SuicidalIdeation  IdeationLevel  `json:"suicidalIdeation"`
	HomicidalIdeation IdeationLevel  `json:"homicidalIdeation"`
	SelfHarmRisk      SeverityLevel  `json:"selfHarmRisk"`
	Notes             string         `json:"notes,omitempty"`
}

type Medication struct {
	Name        string `json:"name"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	SideEffects string `json:"sideEffects,omitempty"`
}

// SessionNotes holds the clinical narrative of one session. The SOAP fields are
// always rendered by the formatter, the rest only when present.
type SessionNotes struct {
	Subjective          string          `json:"subjective"`
	Objective           string          `json:"objective"`
	Assessment          string          `json:"assessment"`
	Plan                string          `json:"plan"`
	ChiefComplaint      string          `json:"chiefComplaint,omitempty"`
	InterventionsUsed   []string        `json:"interventionsUsed,omitempty"`
	RiskAssessment      *RiskAssessment `json:"riskAssessment,omitempty"`
	Medications         []Medication    `json:"medications,omitempty"`
	ProgressTowardGoals string          `json:"progressTowardGoals,omitempty"`
	Homework            string          `json:"homework,omitempty"`
	NextSessionPlan     string          `json:"nextSessionPlan,omitempty"`
	AdditionalNotes     string          `json:"additionalNotes,omitempty"`
}

type Session struct {
	Id              uuid.UUID
	PatientId       uuid.UUID
	TherapistId     uuid.UUID
	ScheduledAt     time.Time
	Status          SessionStatus
	TherapistRole   TherapistRole
	SessionType     string
	DurationMinutes int
	Notes           SessionNotes
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
