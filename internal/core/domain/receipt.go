package domain

import "time"

// Reserved reason-for-error codes. Operational dashboards key off these
// numeric values; they must not change between releases.
const (
	ReasonCodeBlobStorage   = 902
	ReasonCodeQueueDispatch = 903
)

// ReasonError explains why a receipt ended up in a failed state.
type ReasonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QueueDispatchReason builds the reason attached when the generation queue
// rejected the message.
func QueueDispatchReason(detail string) *ReasonError {
	return &ReasonError{Code: ReasonCodeQueueDispatch, Message: detail}
}

// BlobStorageReason builds the reason attached when a generated document
// could not be written to object storage.
func BlobStorageReason(detail string) *ReasonError {
	return &ReasonError{Code: ReasonCodeBlobStorage, Message: detail}
}

// DocumentMeta describes one generated PDF copy (debtor or payer side).
// Populated by the downstream generation pipeline, never by recovery.
type DocumentMeta struct {
	Name         string `json:"name,omitempty"`
	URL          string `json:"url,omitempty"`
	StatusCode   int    `json:"status_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Receipt is the tracked record for generating one PDF receipt from a
// BizEvent. Records are never physically deleted; terminal failures remain
// for audit.
type Receipt struct {
	EventID          string        `json:"event_id"`
	PaymentManagerID string        `json:"payment_manager_id,omitempty"`
	Status           Status        `json:"status"`
	DebtorToken      string        `json:"debtor_token,omitempty"` // opaque PII token, never a raw fiscal code
	PayerToken       string        `json:"payer_token,omitempty"`
	Subject          string        `json:"subject,omitempty"`
	Amount           int64         `json:"amount"` // in the smallest currency unit
	DebtorDocument   *DocumentMeta `json:"debtor_document,omitempty"`
	PayerDocument    *DocumentMeta `json:"payer_document,omitempty"`
	ReasonErr        *ReasonError  `json:"reason_err,omitempty"`
	NumRetry         int           `json:"num_retry"`
	InsertedAt       time.Time     `json:"inserted_at"`
	GeneratedAt      *time.Time    `json:"generated_at,omitempty"`
	// Version implements optimistic concurrency. Zero means the record has
	// never been persisted; the store bumps it on every successful save.
	Version int64 `json:"version"`
}

// IsRecoverable reports whether datastore-stage recovery may touch this
// record.
func (r *Receipt) IsRecoverable() bool {
	return IsDatastoreFailure(r.Status)
}
