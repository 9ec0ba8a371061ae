package service

import (
	"context"
	"strings"
	"time"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultScanPageSize = 100

// RecoveryServiceImpl implements ports.RecoveryService: the receipt/cart
// lifecycle state machine and its recovery orchestration. Correctness under
// concurrent recoveries rests entirely on the store's optimistic-concurrency
// check; there is no in-process locking.
type RecoveryServiceImpl struct {
	receiptRepo ports.ReceiptRepository
	cartRepo    ports.CartRepository
	eventRepo   ports.EventRepository
	translator  ports.EventTranslator
	dispatcher  ports.GenerationDispatcher
	log         zerolog.Logger
}

// NewRecoveryService creates a new RecoveryServiceImpl.
func NewRecoveryService(
	receiptRepo ports.ReceiptRepository,
	cartRepo ports.CartRepository,
	eventRepo ports.EventRepository,
	translator ports.EventTranslator,
	dispatcher ports.GenerationDispatcher,
	log zerolog.Logger,
) *RecoveryServiceImpl {
	return &RecoveryServiceImpl{
		receiptRepo: receiptRepo,
		cartRepo:    cartRepo,
		eventRepo:   eventRepo,
		translator:  translator,
		dispatcher:  dispatcher,
		log:         log,
	}
}

// planReceiptRecovery decides whether recovery may proceed for the current
// record. Pure function: nil means proceed (a nil record is the fresh
// creation case).
func planReceiptRecovery(existing *domain.Receipt) error {
	if existing == nil {
		return nil
	}
	if !existing.IsRecoverable() {
		return apperror.ErrNotRecoverable(existing.EventID, string(existing.Status))
	}
	return nil
}

// buildRecoveredReceipt rebuilds the record from translated event data with
// status reset to INSERTED and the prior error reason cleared. Pure function.
func buildRecoveredReceipt(existing *domain.Receipt, ev *ports.TranslatedEvent, now time.Time) *domain.Receipt {
	rec := &domain.Receipt{
		EventID:          ev.EventID,
		PaymentManagerID: ev.PaymentManagerID,
		Status:           domain.StatusInserted,
		DebtorToken:      ev.DebtorToken,
		PayerToken:       ev.PayerToken,
		Subject:          ev.Subject,
		Amount:           ev.Amount,
		InsertedAt:       now,
	}
	if existing != nil {
		rec.Version = existing.Version
		rec.NumRetry = existing.NumRetry + 1
		rec.InsertedAt = existing.InsertedAt
	}
	return rec
}

// Recover re-drives a single stalled or failed record through the
// generation queue. See ports.RecoverResult for the request-level versus
// pipeline-level success distinction.
func (s *RecoveryServiceImpl) Recover(ctx context.Context, req ports.RecoverRequest) (*ports.RecoverResult, error) {
	eventID := strings.TrimSpace(req.EventID)
	if eventID == "" {
		return nil, apperror.Validation("event id must not be blank")
	}

	if req.IsCart {
		return s.recoverCart(ctx, eventID)
	}

	existing, err := s.receiptRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, s.asAppError(err)
	}
	if err := planReceiptRecovery(existing); err != nil {
		return nil, err
	}

	return s.recoverReceipt(ctx, eventID, existing)
}

// recoverReceipt executes steps 3-6 of the single-id path: translate,
// rebuild, persist with the version read upstream, enqueue. The record
// always completes these steps atomically or fails cleanly without a
// partial write.
func (s *RecoveryServiceImpl) recoverReceipt(ctx context.Context, eventID string, existing *domain.Receipt) (*ports.RecoverResult, error) {
	ev, err := s.translator.Translate(ctx, eventID)
	if err != nil {
		if apperror.Is(err, apperror.CodeTokenRejected) {
			s.markToReview(ctx, existing)
		}
		return nil, err
	}

	rec := buildRecoveredReceipt(existing, ev, time.Now().UTC())
	if err := s.receiptRepo.Save(ctx, rec); err != nil {
		// A losing optimistic-concurrency race abandons the whole attempt;
		// a later sweep catches the record if it still needs recovery.
		return nil, s.asAppError(err)
	}

	if err := s.dispatcher.DispatchReceipt(ctx, rec); err != nil {
		// Roll the record to a known failed state instead of leaving an
		// INSERTED record with nothing driving it forward. The recovery
		// request itself still succeeded: the record is re-recoverable.
		rec.Status = domain.StatusFailed
		rec.ReasonErr = domain.QueueDispatchReason(err.Error())
		if saveErr := s.receiptRepo.Save(ctx, rec); saveErr != nil {
			s.log.Error().Err(saveErr).Str("event_id", eventID).Msg("failed to persist queue-dispatch failure")
		}
		s.log.Warn().Err(err).Str("event_id", eventID).Msg("generation enqueue failed, receipt marked FAILED")
		return &ports.RecoverResult{RecordID: rec.EventID, Status: rec.Status, Enqueued: false}, nil
	}

	s.log.Info().
		Str("event_id", eventID).
		Int("num_retry", rec.NumRetry).
		Msg("receipt recovered and enqueued")

	return &ports.RecoverResult{RecordID: rec.EventID, Status: rec.Status, Enqueued: true}, nil
}

// markToReview routes a record to manual review after a definitive PII
// rejection. Best effort: a lost race here just means another writer already
// moved the record on.
func (s *RecoveryServiceImpl) markToReview(ctx context.Context, existing *domain.Receipt) {
	if existing == nil {
		return
	}
	existing.Status = domain.StatusToReview
	if err := s.receiptRepo.Save(ctx, existing); err != nil {
		s.log.Warn().Err(err).Str("event_id", existing.EventID).Msg("failed to mark receipt for review")
	}
}

// recoverCart handles the single-id cart path. When no cart record exists
// the id is taken as the first arriving event of a new cart.
func (s *RecoveryServiceImpl) recoverCart(ctx context.Context, id string) (*ports.RecoverResult, error) {
	cart, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.asAppError(err)
	}

	if cart == nil {
		cart, err = s.createCartFromEvent(ctx, id)
		if err != nil {
			return nil, err
		}
	} else if !cart.IsRecoverable() {
		return nil, apperror.ErrNotRecoverable(cart.ID, string(cart.Status))
	}

	res, _, err := s.driveCart(ctx, cart)
	return res, err
}

// createCartFromEvent builds a fresh cart from the first arriving event.
func (s *RecoveryServiceImpl) createCartFromEvent(ctx context.Context, eventID string) (*domain.CartForReceipt, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, s.asAppError(err)
	}
	if event == nil {
		return nil, apperror.ErrCartNotFound(eventID)
	}
	if !event.IsCartMember() {
		return nil, apperror.Validation("event " + eventID + " does not belong to a multi-payment cart")
	}

	cart := domain.NewCart(event.Transaction.CartID, event.Transaction.TotalNotice, time.Now().UTC())
	if err := cart.AddPayment(event.ID); err != nil {
		return nil, apperror.InternalError(err)
	}
	return cart, nil
}

// driveCart applies the recovery steps to a cart: verify all constituent
// events are resolvable and translatable, then persist INSERTED and enqueue.
// An incomplete cart stays WAITING_FOR_BIZ_EVENT and is reported skipped,
// never failed.
func (s *RecoveryServiceImpl) driveCart(ctx context.Context, cart *domain.CartForReceipt) (*ports.RecoverResult, bool, error) {
	resolved := 0
	if cart.PaymentCount() > 0 {
		events, err := s.eventRepo.GetByIDs(ctx, cart.PaymentIDs())
		if err != nil {
			return nil, false, s.asAppError(err)
		}
		resolved = len(events)
	}

	if !cart.IsComplete() || resolved < cart.PaymentCount() {
		if cart.Status != domain.StatusWaitingForBizEvent || cart.Version == 0 {
			cart.Status = domain.StatusWaitingForBizEvent
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return nil, false, s.asAppError(err)
			}
		}
		s.log.Debug().
			Str("cart_id", cart.ID).
			Int("collected", cart.PaymentCount()).
			Int("resolved", resolved).
			Int("total_notice", cart.TotalNotice).
			Msg("cart still waiting for sibling events")
		return &ports.RecoverResult{RecordID: cart.ID, Status: cart.Status, Enqueued: false}, true, nil
	}

	// The cart is complete: every constituent must translate cleanly before
	// the cart is re-driven, so a tokenization problem surfaces here rather
	// than inside the generation pipeline.
	for _, paymentID := range cart.PaymentIDs() {
		if _, err := s.translator.Translate(ctx, paymentID); err != nil {
			return nil, false, err
		}
	}

	cart.Status = domain.StatusInserted
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, false, s.asAppError(err)
	}

	if err := s.dispatcher.DispatchCart(ctx, cart); err != nil {
		cart.Status = domain.StatusFailed
		if saveErr := s.cartRepo.Save(ctx, cart); saveErr != nil {
			s.log.Error().Err(saveErr).Str("cart_id", cart.ID).Msg("failed to persist queue-dispatch failure")
		}
		s.log.Warn().Err(err).Str("cart_id", cart.ID).Msg("generation enqueue failed, cart marked FAILED")
		return &ports.RecoverResult{RecordID: cart.ID, Status: cart.Status, Enqueued: false}, false, nil
	}

	s.log.Info().
		Str("cart_id", cart.ID).
		Int("payments", cart.PaymentCount()).
		Msg("cart recovered and enqueued")

	return &ports.RecoverResult{RecordID: cart.ID, Status: cart.Status, Enqueued: true}, false, nil
}

// RecoverBatch sweeps receipt records in the given statuses, applying the
// single-id steps per record. Individual failures never abort the scan; the
// cursor advances regardless of per-item outcome.
func (s *RecoveryServiceImpl) RecoverBatch(ctx context.Context, req ports.RecoverBatchRequest) (*ports.RecoverBatchResult, error) {
	statuses, pageSize, err := normalizeBatchRequest(req)
	if err != nil {
		return nil, err
	}

	result := &ports.RecoverBatchResult{}
	cursor := ""
	for {
		if ctx.Err() != nil {
			result.Interrupted = true
			return result, nil
		}

		page, err := s.receiptRepo.ScanByStatus(ctx, ports.ScanParams{
			Statuses: statuses,
			Cursor:   cursor,
			PageSize: pageSize,
		})
		if err != nil {
			return result, s.asAppError(err)
		}

		for i := range page.Receipts {
			rec := page.Receipts[i]
			if _, err := s.recoverReceipt(ctx, rec.EventID, &rec); err != nil {
				result.Failed++
				result.FailedIDs = append(result.FailedIDs, rec.EventID)
				s.log.Warn().Err(err).Str("event_id", rec.EventID).Msg("bulk recovery: record failed")
				continue
			}
			result.Succeeded++
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.log.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("bulk receipt recovery finished")

	return result, nil
}

// RecoverCartBatch sweeps cart records. Incomplete carts are counted as
// skipped, not failed.
func (s *RecoveryServiceImpl) RecoverCartBatch(ctx context.Context, req ports.RecoverBatchRequest) (*ports.RecoverBatchResult, error) {
	statuses, pageSize, err := normalizeCartBatchRequest(req)
	if err != nil {
		return nil, err
	}

	result := &ports.RecoverBatchResult{}
	cursor := ""
	for {
		if ctx.Err() != nil {
			result.Interrupted = true
			return result, nil
		}

		page, err := s.cartRepo.ScanByStatus(ctx, ports.ScanParams{
			Statuses: statuses,
			Cursor:   cursor,
			PageSize: pageSize,
		})
		if err != nil {
			return result, s.asAppError(err)
		}

		for i := range page.Carts {
			cart := page.Carts[i]
			_, skipped, err := s.driveCart(ctx, &cart)
			switch {
			case err != nil:
				result.Failed++
				result.FailedIDs = append(result.FailedIDs, cart.ID)
				s.log.Warn().Err(err).Str("cart_id", cart.ID).Msg("bulk recovery: cart failed")
			case skipped:
				result.Skipped++
			default:
				result.Succeeded++
			}
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.log.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("bulk cart recovery finished")

	return result, nil
}

// normalizeBatchRequest validates the status filter against the
// datastore-failed partition and applies the default page size.
func normalizeBatchRequest(req ports.RecoverBatchRequest) ([]domain.Status, int, error) {
	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []domain.Status{domain.StatusNotQueueSent, domain.StatusInserted, domain.StatusFailed}
	}
	for _, st := range statuses {
		if !domain.IsDatastoreFailure(st) {
			return nil, 0, apperror.Validation("status " + string(st) + " is not eligible for datastore-stage recovery")
		}
	}
	return statuses, normalizePageSize(req.PageSize), nil
}

// normalizeCartBatchRequest additionally admits WAITING_FOR_BIZ_EVENT, the
// cart-only stalled state.
func normalizeCartBatchRequest(req ports.RecoverBatchRequest) ([]domain.Status, int, error) {
	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []domain.Status{
			domain.StatusNotQueueSent, domain.StatusInserted, domain.StatusFailed,
			domain.StatusWaitingForBizEvent,
		}
	}
	for _, st := range statuses {
		if !domain.IsDatastoreFailure(st) && st != domain.StatusWaitingForBizEvent {
			return nil, 0, apperror.Validation("status " + string(st) + " is not eligible for cart recovery")
		}
	}
	return statuses, normalizePageSize(req.PageSize), nil
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return defaultScanPageSize
	}
	return size
}

// asAppError passes structured errors through untouched and wraps anything
// else as internal.
func (s *RecoveryServiceImpl) asAppError(err error) error {
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.InternalError(err)
}
