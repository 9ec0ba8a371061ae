package ports

import (
	"context"

	"receipt-recovery-service/internal/core/domain"
)

// ScanParams holds the filter and cursor for bulk recovery scans.
// Cursor is opaque to callers; an empty cursor starts from the beginning.
type ScanParams struct {
	Statuses []domain.Status
	Cursor   string
	PageSize int
}

// ReceiptPage is one page of a bulk scan. An empty NextCursor means the scan
// is exhausted.
type ReceiptPage struct {
	Receipts   []domain.Receipt
	NextCursor string
}

// ReceiptRepository defines persistence for receipt records.
//
// Save implements optimistic concurrency: a Receipt with Version zero is
// inserted fresh, anything else is updated only if the stored version still
// matches; a mismatch (or a concurrent insert of the same event id) fails
// with apperror.CodeConcurrentUpdate and the caller's state is never merged.
// On success Save bumps the Version on the passed record.
type ReceiptRepository interface {
	// GetByEventID returns nil, nil when no record exists.
	GetByEventID(ctx context.Context, eventID string) (*domain.Receipt, error)
	Save(ctx context.Context, receipt *domain.Receipt) error
	// ScanByStatus pages through records in the given statuses using keyset
	// pagination over the insertion sequence; resumable, no skips or
	// duplicates across page boundaries.
	ScanByStatus(ctx context.Context, params ScanParams) (*ReceiptPage, error)
}

// CartPage is one page of a cart scan.
type CartPage struct {
	Carts      []domain.CartForReceipt
	NextCursor string
}

// CartRepository defines persistence for multi-payment carts, with the same
// optimistic-concurrency discipline as ReceiptRepository.
type CartRepository interface {
	// GetByID returns nil, nil when no cart exists.
	GetByID(ctx context.Context, cartID string) (*domain.CartForReceipt, error)
	Save(ctx context.Context, cart *domain.CartForReceipt) error
	ScanByStatus(ctx context.Context, params ScanParams) (*CartPage, error)
}

// EventRepository reads BizEvents from the upstream event store. Read-only:
// this service never creates events.
type EventRepository interface {
	// GetByID returns nil, nil when the event is absent (possibly expired).
	GetByID(ctx context.Context, eventID string) (*domain.BizEvent, error)
	// GetByIDs returns the subset of requested events that exist, in no
	// particular order.
	GetByIDs(ctx context.Context, eventIDs []string) ([]domain.BizEvent, error)
}
