package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CartRepo implements ports.CartRepository with the same optimistic
// concurrency and keyset pagination as ReceiptRepo.
type CartRepo struct {
	pool Pool
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(pool Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// GetByID fetches a cart, returning nil, nil when absent.
func (r *CartRepo) GetByID(ctx context.Context, cartID string) (*domain.CartForReceipt, error) {
	query := `SELECT id, payment_ids, total_notice, status, inserted_at, version
		FROM carts WHERE id = $1`
	return scanCart(r.pool.QueryRow(ctx, query, cartID))
}

// Save persists the cart with optimistic concurrency.
func (r *CartRepo) Save(ctx context.Context, cart *domain.CartForReceipt) error {
	if err := cart.CheckInvariant(); err != nil {
		return err
	}
	if cart.Version == 0 {
		return r.insert(ctx, cart)
	}
	return r.update(ctx, cart)
}

func (r *CartRepo) insert(ctx context.Context, cart *domain.CartForReceipt) error {
	query := `INSERT INTO carts (id, payment_ids, total_notice, status, inserted_at, version)
		VALUES ($1, $2, $3, $4, $5, 1)`

	_, err := r.pool.Exec(ctx, query,
		cart.ID, cart.PaymentIDs(), cart.TotalNotice, cart.Status, cart.InsertedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.ErrConcurrentUpdate(cart.ID)
		}
		return fmt.Errorf("insert cart: %w", err)
	}
	cart.Version = 1
	return nil
}

func (r *CartRepo) update(ctx context.Context, cart *domain.CartForReceipt) error {
	query := `UPDATE carts SET payment_ids = $1, total_notice = $2, status = $3,
		version = version + 1 WHERE id = $4 AND version = $5`

	tag, err := r.pool.Exec(ctx, query,
		cart.PaymentIDs(), cart.TotalNotice, cart.Status, cart.ID, cart.Version,
	)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrConcurrentUpdate(cart.ID)
	}
	cart.Version++
	return nil
}

// ScanByStatus pages through carts in the given statuses using the seq
// keyset cursor.
func (r *CartRepo) ScanByStatus(ctx context.Context, params ports.ScanParams) (*ports.CartPage, error) {
	afterSeq, err := parseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := `SELECT seq, id, payment_ids, total_notice, status, inserted_at, version
		FROM carts WHERE status = ANY($1) AND seq > $2 ORDER BY seq ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, statusesToStrings(params.Statuses), afterSeq, params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("scan carts: %w", err)
	}
	defer rows.Close()

	page := &ports.CartPage{}
	var lastSeq int64
	for rows.Next() {
		var (
			seq        int64
			id         string
			paymentIDs []string
			total      int
			status     domain.Status
			insertedAt time.Time
			version    int64
		)
		if err := rows.Scan(&seq, &id, &paymentIDs, &total, &status, &insertedAt, &version); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		page.Carts = append(page.Carts, *domain.RestoreCart(id, paymentIDs, total, status, insertedAt, version))
		lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	if len(page.Carts) == params.PageSize {
		page.NextCursor = strconv.FormatInt(lastSeq, 10)
	}
	return page, nil
}

func scanCart(row pgx.Row) (*domain.CartForReceipt, error) {
	var (
		id         string
		paymentIDs []string
		total      int
		status     domain.Status
		insertedAt time.Time
		version    int64
	)
	err := row.Scan(&id, &paymentIDs, &total, &status, &insertedAt, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cart: %w", err)
	}
	return domain.RestoreCart(id, paymentIDs, total, status, insertedAt, version), nil
}
