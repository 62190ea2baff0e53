package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/internal/store"
)

// Sweeper bounds store growth: rider records live forever in the reference
// behavior, so a periodic pass evicts riders invisible in both views for
// longer than the retention bound. Purely an optimization; it must never
// change what the views show, hence the conservative evictable rules.
type Sweeper struct {
	store  *store.PresenceStore
	clock  store.Clock
	cfg    config.EngineConfig
	logger *slog.Logger
}

func NewSweeper(st *store.PresenceStore, clock store.Clock, cfg config.EngineConfig, logger *slog.Logger) *Sweeper {
	return &Sweeper{store: st, clock: clock, cfg: cfg, logger: logger}
}

func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	w.logger.Info("sweeper STARTED",
		slog.Duration("interval", w.cfg.SweepInterval),
		slog.Duration("retain", w.cfg.SweepRetain),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			if n := w.Sweep(); n > 0 {
				w.logger.Info("swept stale riders", slog.Int("evicted", n))
			}
		}
	}
}

// Sweep runs one pass and returns the number of evicted riders. Candidates
// are collected from a read scan, then each eviction re-checks under the
// write lock so a ping racing the sweep wins.
func (w *Sweeper) Sweep() int {
	now := w.clock.Now()

	var stale []string
	w.store.ForEach(func(rec store.RiderRecords) {
		if w.evictable(rec, now) {
			stale = append(stale, rec.Presence.RiderID)
		}
	})

	evicted := 0
	for _, id := range stale {
		if w.store.EvictIf(id, func(rec store.RiderRecords) bool {
			return w.evictable(rec, now)
		}) {
			evicted++
		}
	}
	return evicted
}

func (w *Sweeper) evictable(rec store.RiderRecords, now time.Time) bool {
	p := rec.Presence

	// Open emergencies are visible forever, in one view or the other.
	if p.CurrentType.IsAlert() {
		return false
	}
	if p.CurrentType == domain.TypeRefresh && p.LastAlertType != "" {
		return false
	}

	if now.Sub(p.LastUpdateAt) <= w.cfg.SweepRetain {
		return false
	}
	if rec.Memory != nil && now.Sub(rec.Memory.CapturedAt) <= w.cfg.SweepRetain {
		return false
	}
	return true
}
