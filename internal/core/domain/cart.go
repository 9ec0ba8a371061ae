package domain

import (
	"fmt"
	"sort"
	"time"
)

// CartForReceipt aggregates the BizEvents of a multi-payment transaction
// that share a single receipt. The cart becomes generation-eligible only
// once every expected payment has arrived.
type CartForReceipt struct {
	ID          string
	paymentIDs  map[string]struct{}
	TotalNotice int
	Status      Status
	InsertedAt  time.Time
	// Version implements the same optimistic-concurrency discipline as
	// Receipt.Version.
	Version int64
}

// NewCart creates an open cart expecting totalNotice payments.
func NewCart(id string, totalNotice int, now time.Time) *CartForReceipt {
	return &CartForReceipt{
		ID:          id,
		paymentIDs:  make(map[string]struct{}),
		TotalNotice: totalNotice,
		Status:      StatusWaitingForBizEvent,
		InsertedAt:  now,
	}
}

// RestoreCart rebuilds a cart from its persisted form.
func RestoreCart(id string, paymentIDs []string, totalNotice int, status Status, insertedAt time.Time, version int64) *CartForReceipt {
	c := &CartForReceipt{
		ID:          id,
		paymentIDs:  make(map[string]struct{}, len(paymentIDs)),
		TotalNotice: totalNotice,
		Status:      status,
		InsertedAt:  insertedAt,
		Version:     version,
	}
	for _, id := range paymentIDs {
		c.paymentIDs[id] = struct{}{}
	}
	return c
}

// AddPayment records a constituent payment id. Adding an id already present
// is a no-op; growing past TotalNotice is rejected.
func (c *CartForReceipt) AddPayment(paymentID string) error {
	if _, ok := c.paymentIDs[paymentID]; ok {
		return nil
	}
	if len(c.paymentIDs) >= c.TotalNotice {
		return fmt.Errorf("cart %s already holds %d of %d payments", c.ID, len(c.paymentIDs), c.TotalNotice)
	}
	c.paymentIDs[paymentID] = struct{}{}
	return nil
}

// Contains reports whether paymentID is already part of the cart.
func (c *CartForReceipt) Contains(paymentID string) bool {
	_, ok := c.paymentIDs[paymentID]
	return ok
}

// PaymentCount returns the number of distinct payments collected so far.
func (c *CartForReceipt) PaymentCount() int {
	return len(c.paymentIDs)
}

// PaymentIDs returns the constituent payment ids in stable order.
func (c *CartForReceipt) PaymentIDs() []string {
	ids := make([]string, 0, len(c.paymentIDs))
	for id := range c.paymentIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsComplete reports whether every expected payment has arrived.
func (c *CartForReceipt) IsComplete() bool {
	return len(c.paymentIDs) == c.TotalNotice
}

// CheckInvariant verifies |paymentIDs| <= TotalNotice.
func (c *CartForReceipt) CheckInvariant() error {
	if len(c.paymentIDs) > c.TotalNotice {
		return fmt.Errorf("cart %s holds %d payments, expected at most %d", c.ID, len(c.paymentIDs), c.TotalNotice)
	}
	return nil
}

// IsRecoverable reports whether datastore-stage recovery may touch this
// cart. An incomplete cart is not an error, it is simply still waiting.
func (c *CartForReceipt) IsRecoverable() bool {
	return IsDatastoreFailure(c.Status) || c.Status == StatusWaitingForBizEvent
}
