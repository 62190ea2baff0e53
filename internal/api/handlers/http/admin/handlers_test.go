package admin_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/hernifleitas/sos-delivery-sub000/internal/api/handlers/http/admin"
	mock_admin "github.com/hernifleitas/sos-delivery-sub000/internal/api/handlers/http/admin/mocks"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), stats)

	want := &domain.EngineStats{TrackedRiders: 12, VisibleRiders: 7, OpenAlerts: 2, AlertMemories: 3}
	stats.EXPECT().GetStats(gomock.Any()).Return(want, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var got domain.EngineStats
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got != *want {
		t.Fatalf("unexpected stats: got=%+v want=%+v", got, *want)
	}
}

func TestAdminStats_Error_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), stats)

	stats.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
