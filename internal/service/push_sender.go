package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"
)

// PushSender drains the notification queue and posts each job to the push
// gateway. Delivery is best-effort with a bounded retry; a job that still
// fails is dropped and logged, never re-queued.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  JobSource
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, queue JobSource) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	s.logger.Info("pushSender STARTED", slog.String("url", s.cfg.GatewayURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pushSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := s.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending push",
			slog.String("job_id", job.ID.String()),
			slog.String("rider_id", job.Payload.RiderID),
		)
		s.sendWithRetry(ctx, job)
	}
}

func (s *PushSender) sendWithRetry(ctx context.Context, job domain.NotificationJob) {
	const maxRetries = 3

	body, err := json.Marshal(job)
	if err != nil {
		s.logger.Error("marshal push job failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push failed",
			slog.Int("attempt", attempt),
			slog.String("job_id", job.ID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("push dropped after retries", slog.String("job_id", job.ID.String()))
}
