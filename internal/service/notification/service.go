package notification

import (
	"fmt"

	"github.com/neumorstudio/plantillas-api/internal/email"
	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/pkg/logger"
)

// Service turns booking lifecycle events into customer emails. Bookings
// without a customer email are skipped silently.
type Service struct {
	sender email.Sender
	logger *logger.Logger
}

func NewService(sender email.Sender, logger *logger.Logger) *Service {
	return &Service{sender: sender, logger: logger}
}

func (s *Service) NotifyBookingEvent(eventType string, b *model.Booking) error {
	if b.CustomerEmail == "" {
		return nil
	}

	var subject, body string
	when := fmt.Sprintf("%s at %s", b.Date.Format(model.DateOnly), b.StartTime)

	switch eventType {
	case model.EventBookingCreated, model.EventBookingConfirmed:
		subject = "Your booking is confirmed"
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s is confirmed.\n\nSee you then!",
			b.CustomerName, when)
	case model.EventBookingCancelled:
		subject = "Your booking was cancelled"
		reason := ""
		if b.CancelReason != nil && *b.CancelReason != "" {
			reason = fmt.Sprintf("\nReason: %s\n", *b.CancelReason)
		}
		body = fmt.Sprintf("Hi %s,\n\nYour booking for %s has been cancelled.\n%s\nYou can book a new appointment any time.",
			b.CustomerName, when, reason)
	case model.EventBookingCompleted:
		subject = "Thanks for your visit"
		body = fmt.Sprintf("Hi %s,\n\nThanks for visiting us on %s. We hope to see you again soon.",
			b.CustomerName, when)
	default:
		return nil
	}

	if err := s.sender.Send(b.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"booking_id": b.ID.String(),
		"event_type": eventType,
		"to":         b.CustomerEmail,
	}).Info("booking notification sent")
	return nil
}
