package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
)

// Service writes domain events to the transactional outbox; a worker
// drains them to the message broker.
type Service struct {
	outbox repository.OutboxRepository
}

func NewService(outbox repository.OutboxRepository) *Service {
	return &Service{outbox: outbox}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return s.outbox.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   data,
	})
}
