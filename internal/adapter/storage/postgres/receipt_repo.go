package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// ReceiptRepo implements ports.ReceiptRepository.
//
// Records carry a monotonically increasing `seq` column assigned on insert;
// bulk scans use keyset pagination over it so a resumed scan never skips or
// duplicates records under concurrent writers.
type ReceiptRepo struct {
	pool Pool
}

// NewReceiptRepo creates a new ReceiptRepo.
func NewReceiptRepo(pool Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

const receiptColumns = `event_id, payment_manager_id, status, debtor_token, payer_token,
	subject, amount, debtor_doc_name, debtor_doc_url, payer_doc_name, payer_doc_url,
	reason_code, reason_message, num_retry, inserted_at, generated_at, version`

// GetByEventID fetches a receipt, returning nil, nil when absent.
func (r *ReceiptRepo) GetByEventID(ctx context.Context, eventID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE event_id = $1`
	return scanReceipt(r.pool.QueryRow(ctx, query, eventID))
}

// Save persists the receipt with optimistic concurrency. Version zero
// inserts; otherwise the update only applies if the stored version still
// matches. On success the in-memory Version is bumped.
func (r *ReceiptRepo) Save(ctx context.Context, receipt *domain.Receipt) error {
	if receipt.Version == 0 {
		return r.insert(ctx, receipt)
	}
	return r.update(ctx, receipt)
}

func (r *ReceiptRepo) insert(ctx context.Context, t *domain.Receipt) error {
	query := `INSERT INTO receipts (event_id, payment_manager_id, status, debtor_token, payer_token,
		subject, amount, debtor_doc_name, debtor_doc_url, payer_doc_name, payer_doc_url,
		reason_code, reason_message, num_retry, inserted_at, generated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 1)`

	reasonCode, reasonMsg := reasonFields(t.ReasonErr)
	debtorName, debtorURL := docFields(t.DebtorDocument)
	payerName, payerURL := docFields(t.PayerDocument)

	_, err := r.pool.Exec(ctx, query,
		t.EventID, t.PaymentManagerID, t.Status, t.DebtorToken, t.PayerToken,
		t.Subject, t.Amount, debtorName, debtorURL, payerName, payerURL,
		reasonCode, reasonMsg, t.NumRetry, t.InsertedAt, t.GeneratedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Another writer created the record between our read and this
			// insert: a lost optimistic race, not a storage fault.
			return apperror.ErrConcurrentUpdate(t.EventID)
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	t.Version = 1
	return nil
}

func (r *ReceiptRepo) update(ctx context.Context, t *domain.Receipt) error {
	query := `UPDATE receipts SET payment_manager_id = $1, status = $2, debtor_token = $3,
		payer_token = $4, subject = $5, amount = $6, debtor_doc_name = $7, debtor_doc_url = $8,
		payer_doc_name = $9, payer_doc_url = $10, reason_code = $11, reason_message = $12,
		num_retry = $13, generated_at = $14, version = version + 1
		WHERE event_id = $15 AND version = $16`

	reasonCode, reasonMsg := reasonFields(t.ReasonErr)
	debtorName, debtorURL := docFields(t.DebtorDocument)
	payerName, payerURL := docFields(t.PayerDocument)

	tag, err := r.pool.Exec(ctx, query,
		t.PaymentManagerID, t.Status, t.DebtorToken, t.PayerToken,
		t.Subject, t.Amount, debtorName, debtorURL, payerName, payerURL,
		reasonCode, reasonMsg, t.NumRetry, t.GeneratedAt,
		t.EventID, t.Version,
	)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Receipts are never deleted, so zero rows means a stale version.
		return apperror.ErrConcurrentUpdate(t.EventID)
	}
	t.Version++
	return nil
}

// ScanByStatus pages through receipts in the given statuses. The cursor is
// the last seen seq value encoded as a decimal string.
func (r *ReceiptRepo) ScanByStatus(ctx context.Context, params ports.ScanParams) (*ports.ReceiptPage, error) {
	afterSeq, err := parseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := `SELECT seq, ` + receiptColumns + ` FROM receipts
		WHERE status = ANY($1) AND seq > $2 ORDER BY seq ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, statusesToStrings(params.Statuses), afterSeq, params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("scan receipts: %w", err)
	}
	defer rows.Close()

	page := &ports.ReceiptPage{}
	var lastSeq int64
	for rows.Next() {
		var seq int64
		rec, err := scanReceiptRow(rows, &seq)
		if err != nil {
			return nil, fmt.Errorf("scan receipt row: %w", err)
		}
		page.Receipts = append(page.Receipts, *rec)
		lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipt rows: %w", err)
	}

	if len(page.Receipts) == params.PageSize {
		page.NextCursor = strconv.FormatInt(lastSeq, 10)
	}
	return page, nil
}

// scanReceipt scans a single row, translating pgx.ErrNoRows to nil, nil.
func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	rec, err := scanReceiptFields(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	return rec, nil
}

func scanReceiptRow(rows pgx.Rows, seq *int64) (*domain.Receipt, error) {
	return scanReceiptFields(func(dest ...any) error {
		return rows.Scan(append([]any{seq}, dest...)...)
	})
}

func scanReceiptFields(scan func(dest ...any) error) (*domain.Receipt, error) {
	t := &domain.Receipt{}
	var (
		reasonCode *int
		reasonMsg  *string
		debtorName *string
		debtorURL  *string
		payerName  *string
		payerURL   *string
	)
	err := scan(
		&t.EventID, &t.PaymentManagerID, &t.Status, &t.DebtorToken, &t.PayerToken,
		&t.Subject, &t.Amount, &debtorName, &debtorURL, &payerName, &payerURL,
		&reasonCode, &reasonMsg, &t.NumRetry, &t.InsertedAt, &t.GeneratedAt, &t.Version,
	)
	if err != nil {
		return nil, err
	}
	if reasonCode != nil {
		t.ReasonErr = &domain.ReasonError{Code: *reasonCode}
		if reasonMsg != nil {
			t.ReasonErr.Message = *reasonMsg
		}
	}
	if debtorName != nil || debtorURL != nil {
		t.DebtorDocument = &domain.DocumentMeta{Name: strOrEmpty(debtorName), URL: strOrEmpty(debtorURL)}
	}
	if payerName != nil || payerURL != nil {
		t.PayerDocument = &domain.DocumentMeta{Name: strOrEmpty(payerName), URL: strOrEmpty(payerURL)}
	}
	return t, nil
}

func reasonFields(r *domain.ReasonError) (*int, *string) {
	if r == nil {
		return nil, nil
	}
	return &r.Code, &r.Message
}

func docFields(d *domain.DocumentMeta) (*string, *string) {
	if d == nil {
		return nil, nil
	}
	return &d.Name, &d.URL
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func statusesToStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
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
