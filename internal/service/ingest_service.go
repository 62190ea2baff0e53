package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/internal/store"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/validator"
)

type ingestService struct {
	store    *store.PresenceStore
	clock    store.Clock
	cfg      config.EngineConfig
	notifier AlertNotifier
	logger   *slog.Logger
}

func NewIngestService(
	st *store.PresenceStore,
	clock store.Clock,
	cfg config.EngineConfig,
	notifier AlertNotifier,
	logger *slog.Logger,
) IngestService {
	return &ingestService{
		store:    st,
		clock:    clock,
		cfg:      cfg,
		notifier: notifier,
		logger:   logger,
	}
}

// Ingest runs the whole decision for one ping under the store lock, so the
// multi-map read-then-write can never interleave with another ping for the
// same rider. Everything past validation is accepted: the engine prefers
// self-correction over failing closed.
func (s *ingestService) Ingest(ctx context.Context, req domain.PingRequest) (domain.PingResult, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return domain.PingResult{}, fmt.Errorf("%w: %v", e.ErrValidation, err)
	}

	claimed := domain.NormalizeType(req.Type)
	now := s.clock.Now()

	var res domain.PingResult
	s.store.Update(req.RiderID, func(tx *store.Tx) {
		// Anti-burst: a refresh that repeats the previous reported_at, or
		// lands inside the burst interval, only bumps the receipt clock.
		// Absorbs client retry storms without touching presence or memory.
		if claimed == domain.TypeRefresh {
			if rc := tx.Receipt(); rc != nil &&
				(req.ReportedAt.Equal(rc.LastReportedAt) || now.Sub(rc.LastReceivedAt) < s.cfg.BurstInterval) {
				bumped := *rc
				bumped.LastReceivedAt = now
				tx.SetReceipt(bumped)

				res = domain.PingResult{Accepted: true, StoredType: claimed}
				if prev := tx.Presence(); prev != nil {
					res.StoredType = prev.CurrentType
				}
				return
			}
		}

		tx.SetReceipt(domain.ReceiptRecord{
			LastReceivedAt: now,
			LastReportedAt: req.ReportedAt,
			LastType:       claimed,
		})

		prev := tx.Presence()
		mem := tx.Memory()

		var resolved domain.PingType
		clearSticky := false

		switch {
		case claimed.IsAlert():
			resolved = claimed
			res.NewAlert = prev == nil || prev.CurrentType != claimed
			tx.SetMemory(domain.AlertMemory{
				Type:       claimed,
				Name:       req.Name,
				Vehicle:    req.Vehicle,
				Color:      req.Color,
				Lat:        *req.Location.Lat,
				Lng:        *req.Location.Lng,
				ReportedAt: req.ReportedAt,
				CapturedAt: now,
			})

		case claimed == domain.TypeRefresh:
			resolved = s.carryOver(prev, mem, req.LastType, now)
			if mem != nil {
				refreshed := *mem
				refreshed.Lat = *req.Location.Lat
				refreshed.Lng = *req.Location.Lng
				refreshed.ReportedAt = req.ReportedAt
				refreshed.CapturedAt = now
				if refreshed.Type == "" && resolved.IsAlert() {
					refreshed.Type = resolved
				}
				tx.SetMemory(refreshed)
			}

		default: // normal
			switch {
			case req.Cancel:
				// The only path that terminates an alert.
				tx.DropMemory()
				clearSticky = true
				resolved = domain.TypeNormal

			case mem != nil && mem.Valid(now, s.cfg.GraceWindow):
				// Spurious cancel: a background task emitted "normal" while
				// an emergency is still open. Keep the alert classification
				// and the memory.
				if prev != nil && prev.LastAlertType != "" {
					resolved = prev.LastAlertType
				} else {
					resolved = mem.Type
				}
				if !resolved.IsAlert() {
					resolved = domain.TypeNormal
				}

			default:
				if mem != nil {
					tx.DropMemory()
				}
				resolved = domain.TypeNormal
			}
		}

		p := domain.RiderPresence{
			RiderID:      req.RiderID,
			Name:         req.Name,
			Vehicle:      req.Vehicle,
			Color:        req.Color,
			Lat:          *req.Location.Lat,
			Lng:          *req.Location.Lng,
			ReportedAt:   req.ReportedAt,
			LastUpdateAt: now,
			CurrentType:  resolved,
		}
		if prev != nil {
			p.LastAlertType = prev.LastAlertType
		}
		if clearSticky {
			p.LastAlertType = ""
		}
		if resolved.IsAlert() {
			p.LastAlertType = resolved
		}
		tx.SetPresence(p)

		res.Accepted = true
		res.StoredType = resolved
	})

	if res.NewAlert {
		s.logger.Info("new alert detected",
			slog.String("rider_id", req.RiderID),
			slog.String("type", string(res.StoredType)),
		)
		s.notifier.AlertRaised(ctx, domain.NotificationPayload{
			Kind:       "sos-alert",
			Type:       res.StoredType,
			RiderID:    req.RiderID,
			Name:       req.Name,
			Vehicle:    req.Vehicle,
			Color:      req.Color,
			Lat:        *req.Location.Lat,
			Lng:        *req.Location.Lng,
			ReportedAt: req.ReportedAt,
		}, req.Credential)
	}

	return res, nil
}

// carryOver resolves the classification of a location-only refresh: the
// current alert wins, then the sticky alert type, then a still-valid
// memory, then the client's last_type hint, then plain normal. A refresh
// never raises a new alert.
func (s *ingestService) carryOver(prev *domain.RiderPresence, mem *domain.AlertMemory, lastTypeHint string, now time.Time) domain.PingType {
	switch {
	case prev != nil && prev.CurrentType.IsAlert():
		return prev.CurrentType
	case prev != nil && prev.LastAlertType != "":
		return prev.LastAlertType
	case mem != nil && mem.Valid(now, s.cfg.GraceWindow) && mem.Type != "":
		return mem.Type
	}
	if hint := domain.NormalizeType(lastTypeHint); hint.IsAlert() {
		return hint
	}
	return domain.TypeNormal
}
