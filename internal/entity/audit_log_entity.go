package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	Id        uuid.UUID
	PatientId uuid.UUID
	Action    string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
