package services

import (
	"context"
	"errors"

	"guesthouse/internal/domain"
	"guesthouse/internal/fallback"
	applog "guesthouse/internal/log"
	"guesthouse/internal/metrics"
)

type PropertyService struct {
	Store PropertyStore
}

func NewPropertyService(store PropertyStore) *PropertyService {
	return &PropertyService{Store: store}
}

// Resolve returns the stored property, or the built-in one when it is missing or unreadable.
func (s *PropertyService) Resolve(ctx context.Context) domain.PropertyInfo {
	p, err := s.Store.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		metrics.ObserveFallback("property", "empty")
		return fallback.Property()
	case err != nil:
		metrics.ObserveFallback("property", "error")
		applog.L().Warn().Err(err).Str("action", "property.resolve.fallback").Send()
		return fallback.Property()
	}
	return p
}

// Load returns the stored property for editing; errors are not masked.
func (s *PropertyService) Load(ctx context.Context) (domain.PropertyInfo, error) {
	return s.Store.Get(ctx)
}

func (s *PropertyService) Save(ctx context.Context, p domain.PropertyInfo) error {
	err := s.Store.Update(ctx, p)
	metrics.ObserveAdminWrite("property", "update", err)
	return err
}
