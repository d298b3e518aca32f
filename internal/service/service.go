// service содержит бизнес-логику search-service.
package service

import (
	"github.com/pribylovaa/jobsync-search/internal/cache"
	"github.com/pribylovaa/jobsync-search/internal/config"
	"github.com/pribylovaa/jobsync-search/internal/metrics"
	"github.com/pribylovaa/jobsync-search/internal/storage"
)

// Service — описывает бизнес-логику search-service.
type Service struct {
	storage storage.JobStorage
	cache   cache.SearchCache
	metrics *metrics.Metrics
	cfg     config.Config
}

// New создает новый экземпляр Service.
// cache == nil — кэш выключен; metrics == nil — метрики не пишутся.
func New(storage storage.JobStorage, c cache.SearchCache, m *metrics.Metrics, cfg config.Config) *Service {
	if c == nil {
		c = cache.NewNoop()
	}

	return &Service{
		storage: storage,
		cache:   c,
		metrics: m,
		cfg:     cfg,
	}
}
