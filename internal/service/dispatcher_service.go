package service

import (
	"context"
	"time"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DispatcherServiceImpl implements ports.GenerationDispatcher on top of the
// generation queue. Success means the broker acknowledged the message, not
// that downstream processing will succeed.
type DispatcherServiceImpl struct {
	queue ports.GenerationQueue
	log   zerolog.Logger
}

// NewDispatcherService creates a new DispatcherServiceImpl.
func NewDispatcherService(queue ports.GenerationQueue, log zerolog.Logger) *DispatcherServiceImpl {
	return &DispatcherServiceImpl{queue: queue, log: log}
}

// DispatchReceipt enqueues generation work for a single-payment receipt.
func (s *DispatcherServiceImpl) DispatchReceipt(ctx context.Context, receipt *domain.Receipt) error {
	msg := ports.GenerationMessage{
		MessageID:  uuid.New().String(),
		EventID:    receipt.EventID,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := s.queue.Publish(ctx, msg); err != nil {
		return apperror.ErrQueueDispatch(err)
	}
	s.log.Info().
		Str("event_id", receipt.EventID).
		Str("message_id", msg.MessageID).
		Msg("receipt dispatched to generation queue")
	return nil
}

// DispatchCart enqueues generation work for a completed multi-payment cart.
func (s *DispatcherServiceImpl) DispatchCart(ctx context.Context, cart *domain.CartForReceipt) error {
	msg := ports.GenerationMessage{
		MessageID:  uuid.New().String(),
		CartID:     cart.ID,
		PaymentIDs: cart.PaymentIDs(),
		EnqueuedAt: time.Now().UTC(),
	}
	if err := s.queue.Publish(ctx, msg); err != nil {
		return apperror.ErrQueueDispatch(err)
	}
	s.log.Info().
		Str("cart_id", cart.ID).
		Int("payments", cart.PaymentCount()).
		Str("message_id", msg.MessageID).
		Msg("cart dispatched to generation queue")
	return nil
}
