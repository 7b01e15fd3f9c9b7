package aggregate

import (
	"context"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/pkg/logger"
	"therapy-insights-be/internal/repository/contract"
	"therapy-insights-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Aggregator collects a patient's completed sessions in chronological order.
// Aggregate never fails: a load error degrades to an empty aggregate so the
// pipeline above it stays total.
type Aggregator struct {
	sessionRepo contract.SessionRepository
	logger      logger.ILogger
}

func NewAggregator(sessionRepo contract.SessionRepository, log logger.ILogger) *Aggregator {
	return &Aggregator{
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, patientId uuid.UUID) *entity.AggregatedSessions {
	// The status filter and ordering run in the query, so the returned slice
	// is already completed-only and oldest first.
	sessions, err := a.sessionRepo.FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.ByStatus{Status: string(entity.SessionStatusCompleted)},
		specification.ScheduledAscending{},
	)
	if err != nil {
		a.logger.Error("aggregator", "failed to load sessions, continuing with empty history", map[string]interface{}{
			"patientId": patientId.String(),
			"error":     err.Error(),
		})
		sessions = nil
	}

	agg := &entity.AggregatedSessions{
		PatientId:    patientId,
		SessionCount: len(sessions),
		Sessions:     sessions,
	}
	if len(sessions) > 0 {
		agg.DateRange = &entity.DateRange{
			Earliest: sessions[0].ScheduledAt,
			Latest:   sessions[len(sessions)-1].ScheduledAt,
		}
	}

	return agg
}
