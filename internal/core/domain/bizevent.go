package domain

import "time"

// Subject identifies a debtor or payer on the upstream event. FiscalCode is
// raw PII and must be tokenized before anything derived from it is persisted.
type Subject struct {
	FullName   string `json:"full_name,omitempty"`
	FiscalCode string `json:"fiscal_code,omitempty"`
	Email      string `json:"email,omitempty"`
}

// Creditor is the public body the payment was made to.
type Creditor struct {
	IDPA        string `json:"id_pa,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	OfficeName  string `json:"office_name,omitempty"`
}

// PSP is the payment service provider that processed the transaction.
type PSP struct {
	ID           string `json:"id,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Channel      string `json:"channel,omitempty"`
}

// TransactionDetails carries the monetary facts of the completed payment.
// Amounts are in the smallest currency unit.
type TransactionDetails struct {
	TransactionID string `json:"transaction_id,omitempty"`
	Amount        int64  `json:"amount"`
	Fee           int64  `json:"fee"`
	GrandTotal    int64  `json:"grand_total"`
	RemittanceInf string `json:"remittance_information,omitempty"`
	Origin        string `json:"origin,omitempty"`
	// TotalNotice is the number of notices in the multi-payment cart this
	// event belongs to; 1 for a standalone payment.
	TotalNotice int `json:"total_notice"`
	// CartID groups sibling events of a multi-payment transaction.
	CartID string `json:"cart_id,omitempty"`
}

// BizEvent is the immutable payment-completion fact produced upstream.
// Everything except the bookkeeping fields is read-only to this service.
type BizEvent struct {
	ID               string             `json:"id"`
	PaymentManagerID string             `json:"payment_manager_id,omitempty"`
	Debtor           Subject            `json:"debtor"`
	Payer            Subject            `json:"payer"`
	Creditor         Creditor           `json:"creditor"`
	PSP              PSP                `json:"psp"`
	Transaction      TransactionDetails `json:"transaction"`
	Properties       map[string]string  `json:"properties,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`

	// Bookkeeping fields, mutated during enrichment retries.
	ProcessingStatus    string `json:"processing_status,omitempty"`
	EnrichmentRetries   int    `json:"enrichment_retries"`
	TriggeredBySchedule bool   `json:"triggered_by_schedule"`
	LastErrorMessage    string `json:"last_error_message,omitempty"`
}

// IsCartMember reports whether this event belongs to a multi-payment cart.
func (e *BizEvent) IsCartMember() bool {
	return e.Transaction.TotalNotice > 1 && e.Transaction.CartID != ""
}
