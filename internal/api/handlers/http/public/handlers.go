package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PingIngestor interface {
	Ingest(ctx context.Context, req domain.PingRequest) (domain.PingResult, error)
}

type ViewReader interface {
	ActiveRiders(ctx context.Context) domain.ActiveRidersResponse
	ActiveAlerts(ctx context.Context) domain.ActiveAlertsResponse
}

type Handler struct {
	logger   *slog.Logger
	Ingestor PingIngestor
	Views    ViewReader
}

func NewHandler(logger *slog.Logger, ingestor PingIngestor, views ViewReader) *Handler {
	return &Handler{
		logger:   logger,
		Ingestor: ingestor,
		Views:    views,
	}
}

func (h *Handler) RiderPing(w http.ResponseWriter, r *http.Request) {
	var req domain.PingRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	// reject trailing data after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Credential = r.Header.Get("X-Session-Token")

	l := h.log(r)
	l.Debug("RiderPing",
		slog.String("rider_id", req.RiderID),
		slog.String("type", req.Type),
		slog.Bool("cancel", req.Cancel),
	)

	res, err := h.Ingestor.Ingest(r.Context(), req)
	if err != nil {
		if errors.Is(err, e.ErrValidation) {
			l.Warn("ping rejected", slog.String("error", err.Error()))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) RidersActive(w http.ResponseWriter, r *http.Request) {
	resp := h.Views.ActiveRiders(r.Context())
	h.log(r).Debug("RidersActive", slog.Int("count", resp.Count))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AlertsActive(w http.ResponseWriter, r *http.Request) {
	resp := h.Views.ActiveAlerts(r.Context())
	h.log(r).Debug("AlertsActive", slog.Int("count", resp.Count))
	h.writeJSON(w, http.StatusOK, resp)
}
