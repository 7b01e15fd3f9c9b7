package memory

import (
	"time"

	"therapy-insights-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InsightPreviewRepository holds the last transient generation per patient so
// the UI can review and then persist it without regenerating.
type InsightPreviewRepository struct {
	cache *cache.Cache
}

func NewInsightPreviewRepository() *InsightPreviewRepository {
	// Previews expire after an hour; expired entries are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &InsightPreviewRepository{
		cache: c,
	}
}

func (r *InsightPreviewRepository) Save(insights *entity.PatientInsights) {
	r.cache.Set(insights.PatientId.String(), insights, cache.DefaultExpiration)
}

func (r *InsightPreviewRepository) Get(patientId uuid.UUID) (*entity.PatientInsights, bool) {
	if x, found := r.cache.Get(patientId.String()); found {
		return x.(*entity.PatientInsights), true
	}
	return nil, false
}

func (r *InsightPreviewRepository) Delete(patientId uuid.UUID) {
	r.cache.Delete(patientId.String())
}
