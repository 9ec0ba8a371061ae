package dto

// RecoverResponse is the body returned for a single-id recovery.
type RecoverResponse struct {
	RecordID string `json:"record_id"`
	Status   string `json:"status"`
	Enqueued bool   `json:"enqueued"`
}

// RecoverBatchRequest triggers a bulk recovery sweep.
// Scope selects receipts (default) or carts.
type RecoverBatchRequest struct {
	Statuses []string `json:"statuses"`
	PageSize int      `json:"page_size" binding:"omitempty,min=1"`
	Scope    string   `json:"scope" binding:"omitempty,oneof=receipts carts"`
}

// RecoverBatchResponse aggregates a bulk sweep: counters plus the records
// that could not be recovered. Never a partial silent success.
type RecoverBatchResponse struct {
	Succeeded   int      `json:"succeeded"`
	Failed      int      `json:"failed"`
	Skipped     int      `json:"skipped"`
	FailedIDs   []string `json:"failed_ids"`
	Interrupted bool     `json:"interrupted,omitempty"`
}
