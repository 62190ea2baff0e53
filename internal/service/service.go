package service

import (
	"context"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// IngestService applies the per-ping decision logic and mutates the
// presence store atomically per rider.
type IngestService interface {
	Ingest(ctx context.Context, req domain.PingRequest) (domain.PingResult, error)
}

// ViewService computes the two read models on demand. Pure in-memory
// projection, hence no error returns.
type ViewService interface {
	ActiveRiders(ctx context.Context) domain.ActiveRidersResponse
	ActiveAlerts(ctx context.Context) domain.ActiveAlertsResponse
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.EngineStats, error)
}

// AlertNotifier is invoked synchronously on every detected new alert.
// Delivery is best-effort: implementations log failures and never return
// them into the ingest path.
type AlertNotifier interface {
	AlertRaised(ctx context.Context, p domain.NotificationPayload, credential string)
}

// IdentityResolver is the read side of the external auth collaborator, used
// only to exclude the reporter from fan-out.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (string, error)
}

// Dispatcher is the external notification fan-out capability.
type Dispatcher interface {
	NotifyAll(ctx context.Context, title, body string, p domain.NotificationPayload) error
	NotifyAllExcept(ctx context.Context, identity, title, body string, p domain.NotificationPayload) error
}

// JobSource hands queued notification jobs to the push sender.
type JobSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error)
}

type Service struct {
	IngestService IngestService
	ViewService   ViewService
	StatsService  StatsService
}

func NewService(
	ingestService IngestService,
	viewService ViewService,
	statsService StatsService,
) *Service {
	return &Service{
		IngestService: ingestService,
		ViewService:   viewService,
		StatsService:  statsService,
	}
}
