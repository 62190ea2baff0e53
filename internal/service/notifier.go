package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

type notifier struct {
	resolver   IdentityResolver
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewNotifier(resolver IdentityResolver, dispatcher Dispatcher, logger *slog.Logger) AlertNotifier {
	return &notifier{
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// AlertRaised fans an alert out to everyone except the reporter when the
// reporter can be resolved. Without a resolvable credential the fan-out
// reaches everyone, reporter included; that broadening is the reference
// behavior and is surfaced in the log rather than silently narrowed.
func (n *notifier) AlertRaised(ctx context.Context, p domain.NotificationPayload, credential string) {
	title := titleFor(p.Type)
	body := fmt.Sprintf("%s (%s %s) needs help", p.Name, p.Color, p.Vehicle)

	if credential != "" {
		identity, err := n.resolver.Resolve(ctx, credential)
		if err == nil {
			if err := n.dispatcher.NotifyAllExcept(ctx, identity, title, body, p); err != nil {
				n.logger.Error("alert dispatch failed",
					slog.String("rider_id", p.RiderID),
					slog.Any("error", err),
				)
			}
			return
		}
		n.logger.Warn("identity resolution failed, fanout broadened to everyone",
			slog.String("rider_id", p.RiderID),
			slog.Any("error", err),
		)
	} else {
		n.logger.Warn("no credential on alert ping, fanout broadened to everyone",
			slog.String("rider_id", p.RiderID),
		)
	}

	if err := n.dispatcher.NotifyAll(ctx, title, body, p); err != nil {
		n.logger.Error("alert dispatch failed",
			slog.String("rider_id", p.RiderID),
			slog.Any("error", err),
		)
	}
}

func titleFor(t domain.PingType) string {
	switch t {
	case domain.TypeRobbery:
		return "Robbery reported"
	case domain.TypeAccident:
		return "Accident reported"
	case domain.TypeFlatTire:
		return "Flat tire reported"
	}
	return "Emergency reported"
}

// noopDispatcher is wired when push is disabled via config.
type noopDispatcher struct {
	logger *slog.Logger
}

func NewNoopDispatcher(logger *slog.Logger) Dispatcher {
	return &noopDispatcher{logger: logger}
}

func (d *noopDispatcher) NotifyAll(ctx context.Context, title, body string, p domain.NotificationPayload) error {
	d.logger.Debug("push disabled, dropping notification", slog.String("rider_id", p.RiderID))
	return nil
}

func (d *noopDispatcher) NotifyAllExcept(ctx context.Context, identity, title, body string, p domain.NotificationPayload) error {
	d.logger.Debug("push disabled, dropping notification", slog.String("rider_id", p.RiderID))
	return nil
}
