package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/gym-portal/internal/events"
)

// StartAuditWorker subscribes a structured-logging listener to every
// portal event. Business code publishes events and stays free of
// diagnostic writes; this listener is the one place they surface.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("audit event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventUserLoggedIn,
		events.EventUserLoggedOut,
		events.EventMembershipRegistered,
		events.EventMembershipRenewed,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
