package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.EngineStats, error)
}

type Handler struct {
	logger *slog.Logger
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Stats:  stats,
	}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("stats served",
		slog.Int("tracked_riders", stats.TrackedRiders),
		slog.Int("open_alerts", stats.OpenAlerts),
	)
	h.writeJSON(w, http.StatusOK, stats)
}
