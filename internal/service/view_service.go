package service

import (
	"context"
	"sort"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/internal/store"
)

type viewService struct {
	store *store.PresenceStore
	clock store.Clock
	cfg   config.EngineConfig
}

func NewViewService(st *store.PresenceStore, clock store.Clock, cfg config.EngineConfig) ViewService {
	return &viewService{store: st, clock: clock, cfg: cfg}
}

// ActiveRiders lists every rider still considered on shift. An open
// emergency is always visible regardless of staleness; a routine presence
// signal expires fast.
func (s *viewService) ActiveRiders(ctx context.Context) domain.ActiveRidersResponse {
	now := s.clock.Now()
	riders := make([]domain.ActiveRider, 0)

	s.store.ForEach(func(rec store.RiderRecords) {
		p := rec.Presence
		age := now.Sub(p.LastUpdateAt)

		switch {
		case p.CurrentType.IsAlert():
			// always visible
		case p.CurrentType == domain.TypeNormal:
			if age > s.cfg.NormalVisibility {
				return
			}
		default:
			if age > s.cfg.DefaultVisibility {
				return
			}
		}

		riders = append(riders, domain.ActiveRider{
			RiderID:    p.RiderID,
			Lat:        p.Lat,
			Lng:        p.Lng,
			Type:       displayType(p),
			Name:       p.Name,
			Vehicle:    p.Vehicle,
			Color:      p.Color,
			ReportedAt: p.ReportedAt,
		})
	})

	return domain.ActiveRidersResponse{Riders: riders, Count: len(riders)}
}

// ActiveAlerts lists the currently open emergencies, most recent first.
func (s *viewService) ActiveAlerts(ctx context.Context) domain.ActiveAlertsResponse {
	now := s.clock.Now()
	alerts := make([]domain.ActiveAlert, 0)

	s.store.ForEach(func(rec store.RiderRecords) {
		p := rec.Presence
		if !s.alertOpen(p, rec.Memory, now) {
			return
		}
		alerts = append(alerts, domain.ActiveAlert{
			RiderID:        p.RiderID,
			Type:           displayType(p),
			Lat:            p.Lat,
			Lng:            p.Lng,
			Name:           p.Name,
			Vehicle:        p.Vehicle,
			Color:          p.Color,
			ReportedAt:     p.ReportedAt,
			ElapsedSeconds: int64(now.Sub(p.LastUpdateAt).Seconds()),
		})
	})

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].ReportedAt.After(alerts[j].ReportedAt)
	})

	return domain.ActiveAlertsResponse{Alerts: alerts, Count: len(alerts)}
}

func (s *viewService) alertOpen(p domain.RiderPresence, mem *domain.AlertMemory, now time.Time) bool {
	// A normal classification, on either record, means resolved.
	if mem != nil && mem.Type == domain.TypeNormal {
		return false
	}
	if p.CurrentType == domain.TypeNormal {
		return false
	}

	switch {
	case p.CurrentType.IsAlert():
		return true
	case p.CurrentType == domain.TypeRefresh && p.LastAlertType != "":
		return true
	case mem != nil && mem.Valid(now, s.cfg.GraceWindow):
		return true
	case p.LastAlertType != "" && now.Sub(p.LastUpdateAt) <= s.cfg.GraceWindow:
		return true
	}
	return false
}

// displayType keeps an emergency visible through location-only refreshes:
// a refresh with an established sticky type shows that type.
func displayType(p domain.RiderPresence) domain.PingType {
	if p.CurrentType == domain.TypeRefresh && p.LastAlertType != "" {
		return p.LastAlertType
	}
	return p.CurrentType
}
