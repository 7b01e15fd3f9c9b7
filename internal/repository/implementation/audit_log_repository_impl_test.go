package implementation

import (
	"context"
	"testing"
	"time"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository(db)
	patientId := uuid.New()
	ctx := context.Background()

	for i, action := range []string{"insights_generated", "insights_saved", "insights_deleted"} {
		require.NoError(t, repo.Create(ctx, &entity.AuditLog{
			Id:        uuid.New(),
			PatientId: patientId,
			Action:    action,
			Detail:    map[string]interface{}{"mode": "mock"},
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.AuditLog{
		Id:        uuid.New(),
		PatientId: uuid.New(),
		Action:    "insights_generated",
		CreatedAt: time.Now(),
	}))

	logs, err := repo.FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "insights_deleted", logs[0].Action)
	assert.Equal(t, "mock", logs[0].Detail["mode"])

	limited, err := repo.FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 2, Offset: 0},
	)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
