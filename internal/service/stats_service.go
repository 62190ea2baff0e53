package service

import (
	"context"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/internal/store"
)

type statsService struct {
	store *store.PresenceStore
	views ViewService
}

func NewStatsService(st *store.PresenceStore, views ViewService) StatsService {
	return &statsService{store: st, views: views}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.EngineStats, error) {
	return &domain.EngineStats{
		TrackedRiders: s.store.Len(),
		VisibleRiders: s.views.ActiveRiders(ctx).Count,
		OpenAlerts:    s.views.ActiveAlerts(ctx).Count,
		AlertMemories: s.store.MemoryLen(),
	}, nil
}
