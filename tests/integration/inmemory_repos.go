package integration

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"
)

// In-memory implementations of the storage and queue ports. They mirror the
// real adapters' contracts: optimistic concurrency on Save, nil on absence,
// keyset pagination over an insertion sequence.

type receiptRow struct {
	receipt domain.Receipt
	seq     int64
}

type inMemoryReceiptRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[string]*receiptRow
}

func newInMemoryReceiptRepo() *inMemoryReceiptRepo {
	return &inMemoryReceiptRepo{rows: make(map[string]*receiptRow)}
}

func (r *inMemoryReceiptRepo) GetByEventID(_ context.Context, eventID string) (*domain.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[eventID]
	if !ok {
		return nil, nil
	}
	rec := row.receipt
	return &rec, nil
}

func (r *inMemoryReceiptRepo) Save(_ context.Context, receipt *domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, exists := r.rows[receipt.EventID]
	if receipt.Version == 0 {
		if exists {
			return apperror.ErrConcurrentUpdate(receipt.EventID)
		}
		r.seq++
		receipt.Version = 1
		r.rows[receipt.EventID] = &receiptRow{receipt: *receipt, seq: r.seq}
		return nil
	}

	if !exists || row.receipt.Version != receipt.Version {
		return apperror.ErrConcurrentUpdate(receipt.EventID)
	}
	receipt.Version++
	row.receipt = *receipt
	return nil
}

func (r *inMemoryReceiptRepo) ScanByStatus(_ context.Context, params ports.ScanParams) (*ports.ReceiptPage, error) {
	after, err := parseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matching := make([]*receiptRow, 0)
	for _, row := range r.rows {
		if row.seq > after && statusIn(row.receipt.Status, params.Statuses) {
			matching = append(matching, row)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].seq < matching[j].seq })

	page := &ports.ReceiptPage{}
	for _, row := range matching {
		if len(page.Receipts) == params.PageSize {
			break
		}
		page.Receipts = append(page.Receipts, row.receipt)
		if len(page.Receipts) == params.PageSize {
			page.NextCursor = strconv.FormatInt(row.seq, 10)
		}
	}
	return page, nil
}

type cartRow struct {
	cart domain.CartForReceipt
	seq  int64
}

type inMemoryCartRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[string]*cartRow
}

func newInMemoryCartRepo() *inMemoryCartRepo {
	return &inMemoryCartRepo{rows: make(map[string]*cartRow)}
}

func (r *inMemoryCartRepo) GetByID(_ context.Context, cartID string) (*domain.CartForReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[cartID]
	if !ok {
		return nil, nil
	}
	cart := restoreCopy(&row.cart)
	return cart, nil
}

func (r *inMemoryCartRepo) Save(_ context.Context, cart *domain.CartForReceipt) error {
	if err := cart.CheckInvariant(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row, exists := r.rows[cart.ID]
	if cart.Version == 0 {
		if exists {
			return apperror.ErrConcurrentUpdate(cart.ID)
		}
		r.seq++
		cart.Version = 1
		r.rows[cart.ID] = &cartRow{cart: *restoreCopy(cart), seq: r.seq}
		return nil
	}

	if !exists || row.cart.Version != cart.Version {
		return apperror.ErrConcurrentUpdate(cart.ID)
	}
	cart.Version++
	row.cart = *restoreCopy(cart)
	return nil
}

func (r *inMemoryCartRepo) ScanByStatus(_ context.Context, params ports.ScanParams) (*ports.CartPage, error) {
	after, err := parseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matching := make([]*cartRow, 0)
	for _, row := range r.rows {
		if row.seq > after && statusIn(row.cart.Status, params.Statuses) {
			matching = append(matching, row)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].seq < matching[j].seq })

	page := &ports.CartPage{}
	for _, row := range matching {
		if len(page.Carts) == params.PageSize {
			break
		}
		page.Carts = append(page.Carts, *restoreCopy(&row.cart))
		if len(page.Carts) == params.PageSize {
			page.NextCursor = strconv.FormatInt(row.seq, 10)
		}
	}
	return page, nil
}

// restoreCopy deep-copies a cart through its persisted representation.
func restoreCopy(c *domain.CartForReceipt) *domain.CartForReceipt {
	return domain.RestoreCart(c.ID, c.PaymentIDs(), c.TotalNotice, c.Status, c.InsertedAt, c.Version)
}

type inMemoryEventRepo struct {
	mu     sync.Mutex
	events map[string]domain.BizEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[string]domain.BizEvent)}
}

func (r *inMemoryEventRepo) put(ev domain.BizEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.ID] = ev
}

func (r *inMemoryEventRepo) GetByID(_ context.Context, eventID string) (*domain.BizEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[eventID]
	if !ok {
		return nil, nil
	}
	return &ev, nil
}

func (r *inMemoryEventRepo) GetByIDs(_ context.Context, eventIDs []string) ([]domain.BizEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.BizEvent
	for _, id := range eventIDs {
		if ev, ok := r.events[id]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

// inMemoryQueue implements ports.GenerationQueue, optionally failing to
// simulate a broker outage.
type inMemoryQueue struct {
	mu       sync.Mutex
	messages []ports.GenerationMessage
	broken   bool
}

func (q *inMemoryQueue) Publish(_ context.Context, msg ports.GenerationMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.broken {
		return errors.New("broker unreachable")
	}
	q.messages = append(q.messages, msg)
	return nil
}

func (q *inMemoryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// stubTokenizer maps PII deterministically to opaque tokens.
type stubTokenizer struct{}

func (stubTokenizer) Tokenize(_ context.Context, pii string) (string, error) {
	return "tok-" + strconv.Itoa(len(pii)) + "-" + pii[:1], nil
}

func statusIn(s domain.Status, set []domain.Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

func parseCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}
	seq, err := strconv.ParseInt(cursor, 10, 64)
	if err != nil {
		return 0, apperror.Validation("malformed continuation token")
	}
	return seq, nil
}
