package ports

import (
	"context"
	"time"

	"receipt-recovery-service/internal/core/domain"
)

// Tokenizer replaces PII with an opaque token via the external tokenization
// service. Failures carry the transient-vs-fatal distinction through
// apperror codes TOK_001 and TOK_002.
type Tokenizer interface {
	Tokenize(ctx context.Context, pii string) (string, error)
}

// TokenCache is the best-effort cache in front of the Tokenizer. Keys are
// digests of the PII, never the PII itself. Get returns "", nil on a miss.
type TokenCache interface {
	Get(ctx context.Context, digest string) (string, error)
	Set(ctx context.Context, digest string, token string, ttl time.Duration) error
}

// TranslatedEvent is the receipt-shaped view of a BizEvent with all PII
// already tokenized.
type TranslatedEvent struct {
	EventID          string
	PaymentManagerID string
	DebtorToken      string
	PayerToken       string
	Subject          string
	Amount           int64
	TotalNotice      int
	CartID           string
}

// EventTranslator converts an event id into the fields required by a receipt
// record. It performs no persistence.
type EventTranslator interface {
	Translate(ctx context.Context, eventID string) (*TranslatedEvent, error)
}

// GenerationMessage is the unit of work placed on the generation queue. For
// single receipts EventID is set; for carts CartID plus PaymentIDs.
type GenerationMessage struct {
	MessageID  string    `json:"message_id"`
	EventID    string    `json:"event_id,omitempty"`
	CartID     string    `json:"cart_id,omitempty"`
	PaymentIDs []string  `json:"payment_ids,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// GenerationQueue publishes generation work. A nil return means the broker
// acknowledged the message, nothing more.
type GenerationQueue interface {
	Publish(ctx context.Context, msg GenerationMessage) error
}

// GenerationDispatcher serializes a receipt or cart reference and enqueues
// it for asynchronous PDF generation.
type GenerationDispatcher interface {
	DispatchReceipt(ctx context.Context, receipt *domain.Receipt) error
	DispatchCart(ctx context.Context, cart *domain.CartForReceipt) error
}

// RecoverRequest triggers recovery of a single record.
type RecoverRequest struct {
	EventID string
	IsCart  bool
}

// RecoverResult reports the outcome of a single-id recovery. Enqueued
// distinguishes pipeline-level success from request-level success: a queue
// dispatch failure still yields a result (the record is consistently FAILED)
// with Enqueued false.
type RecoverResult struct {
	RecordID string
	Status   domain.Status
	Enqueued bool
}

// RecoverBatchRequest triggers a bulk sweep over failed records.
type RecoverBatchRequest struct {
	Statuses []domain.Status
	PageSize int
}

// RecoverBatchResult aggregates a bulk sweep. FailedIDs lists every record
// that could not be recovered; Skipped counts carts still waiting for
// sibling events. Interrupted is set when the sweep stopped early on
// context cancellation, in which case the counters are partial.
type RecoverBatchResult struct {
	Succeeded   int
	Failed      int
	Skipped     int
	FailedIDs   []string
	Interrupted bool
}

// RecoveryService is the top-level recovery orchestration.
type RecoveryService interface {
	Recover(ctx context.Context, req RecoverRequest) (*RecoverResult, error)
	RecoverBatch(ctx context.Context, req RecoverBatchRequest) (*RecoverBatchResult, error)
	RecoverCartBatch(ctx context.Context, req RecoverBatchRequest) (*RecoverBatchResult, error)
}
