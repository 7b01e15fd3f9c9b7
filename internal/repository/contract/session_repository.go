package contract

import (
	"context"

	"therapy-insights-be/internal/entity"
	"therapy-insights-be/internal/repository/specification"
)

// SessionRepository is the read-only view over the scheduling product's
// session store. This core never writes session rows.
type SessionRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
