package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

func senderTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testJob() domain.NotificationJob {
	return domain.NotificationJob{
		ID:    uuid.New(),
		Title: "Robbery reported",
		Body:  "Juan (red Honda Wave) needs help",
		Payload: domain.NotificationPayload{
			Kind:    "sos-alert",
			Type:    domain.TypeRobbery,
			RiderID: "r1",
		},
		EnqueuedAt: time.Now().UTC(),
	}
}

func TestPushSender_DeliversJob(t *testing.T) {
	t.Parallel()

	var got domain.NotificationJob
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewPushSender(senderTestLogger(), config.PushConfig{GatewayURL: srv.URL}, nil)

	job := testJob()
	s.sendWithRetry(context.Background(), job)

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly 1 delivery, got %d", n)
	}
	if got.ID != job.ID || got.Payload.RiderID != "r1" {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestPushSender_RetriesOnServerError(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewPushSender(senderTestLogger(), config.PushConfig{GatewayURL: srv.URL}, nil)
	s.sendWithRetry(context.Background(), testJob())

	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected retry after 500, got %d calls", n)
	}
}

func TestPushSender_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewPushSender(senderTestLogger(), config.PushConfig{GatewayURL: srv.URL}, nil)
	s.sendWithRetry(context.Background(), testJob())

	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 attempts then drop, got %d", n)
	}
}

func TestPushSender_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	s := NewPushSender(senderTestLogger(), config.PushConfig{GatewayURL: srv.URL}, nil)
	s.sendWithRetry(ctx, testJob())

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("cancelled context must stop delivery, got %d calls", n)
	}
}
