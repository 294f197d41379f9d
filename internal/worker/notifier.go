package worker

import (
	"context"
	"encoding/json"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/notification"
	"github.com/neumorstudio/plantillas-api/pkg/logger"
	"github.com/neumorstudio/plantillas-api/pkg/messaging"
)

// Notifier consumes booking events from the broker and triggers the
// customer emails for each one.
type Notifier struct {
	broker        messaging.Broker
	notifications *notification.Service
	logger        *logger.Logger
}

func NewNotifier(broker messaging.Broker, notifications *notification.Service, logger *logger.Logger) *Notifier {
	return &Notifier{
		broker:        broker,
		notifications: notifications,
		logger:        logger,
	}
}

// Start subscribes to every booking event channel and blocks until the
// context is cancelled.
func (n *Notifier) Start(ctx context.Context) error {
	channels := []string{
		model.EventBookingCreated,
		model.EventBookingConfirmed,
		model.EventBookingCancelled,
		model.EventBookingCompleted,
	}

	for _, channel := range channels {
		msgs, err := n.broker.Subscribe(ctx, channel)
		if err != nil {
			return err
		}
		go n.consume(ctx, channel, msgs)
	}

	n.logger.Info("notifier started")
	<-ctx.Done()
	n.logger.Info("notifier shutting down")
	return nil
}

func (n *Notifier) consume(ctx context.Context, eventType string, msgs <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-msgs:
			if !ok {
				return
			}
			n.handle(eventType, payload)
		}
	}
}

func (n *Notifier) handle(eventType string, payload []byte) {
	var b model.Booking
	if err := json.Unmarshal(payload, &b); err != nil {
		n.logger.Error(err, "failed to decode booking event", "event_type", eventType)
		return
	}

	if err := n.notifications.NotifyBookingEvent(eventType, &b); err != nil {
		n.logger.Error(err, "failed to notify customer",
			"event_type", eventType,
			"booking_id", b.ID.String())
	}
}
