package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/internal/service"
	mock_service "github.com/hernifleitas/sos-delivery-sub000/internal/service/mocks"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"
)

func alertPayload() domain.NotificationPayload {
	return domain.NotificationPayload{
		Kind:       "sos-alert",
		Type:       domain.TypeRobbery,
		RiderID:    "r1",
		Name:       "Juan",
		Vehicle:    "Honda Wave",
		Color:      "red",
		Lat:        10,
		Lng:        20,
		ReportedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotifier_ExcludesResolvedReporter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockIdentityResolver(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	p := alertPayload()

	resolver.EXPECT().Resolve(gomock.Any(), "tok-1").Return("user-42", nil).Times(1)
	dispatcher.EXPECT().
		NotifyAllExcept(gomock.Any(), "user-42", "Robbery reported", gomock.Any(), p).
		Return(nil).
		Times(1)

	n := service.NewNotifier(resolver, dispatcher, newTestLogger())
	n.AlertRaised(context.Background(), p, "tok-1")
}

func TestNotifier_NoCredentialBroadensToEveryone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockIdentityResolver(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	p := alertPayload()

	dispatcher.EXPECT().
		NotifyAll(gomock.Any(), "Robbery reported", gomock.Any(), p).
		Return(nil).
		Times(1)

	n := service.NewNotifier(resolver, dispatcher, newTestLogger())
	n.AlertRaised(context.Background(), p, "")
}

func TestNotifier_UnresolvableCredentialFallsBack(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockIdentityResolver(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	p := alertPayload()

	resolver.EXPECT().Resolve(gomock.Any(), "expired").Return("", e.ErrUnknownIdentity).Times(1)
	dispatcher.EXPECT().
		NotifyAll(gomock.Any(), "Robbery reported", gomock.Any(), p).
		Return(nil).
		Times(1)

	n := service.NewNotifier(resolver, dispatcher, newTestLogger())
	n.AlertRaised(context.Background(), p, "expired")
}

func TestNotifier_DispatchErrorSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockIdentityResolver(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	p := alertPayload()

	dispatcher.EXPECT().
		NotifyAll(gomock.Any(), gomock.Any(), gomock.Any(), p).
		Return(errors.New("broker down")).
		Times(1)

	n := service.NewNotifier(resolver, dispatcher, newTestLogger())
	// must not panic or propagate anything
	n.AlertRaised(context.Background(), p, "")
}
