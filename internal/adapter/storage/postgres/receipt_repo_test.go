package postgres

import (
	"context"
	"testing"
	"time"

	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReceipt() *domain.Receipt {
	return &domain.Receipt{
		EventID:          "evt-1",
		PaymentManagerID: "pm-1",
		Status:           domain.StatusFailed,
		DebtorToken:      "tok-debtor",
		PayerToken:       "tok-payer",
		Subject:          "TARI 2026",
		Amount:           15000,
		ReasonErr:        domain.QueueDispatchReason("broker unreachable"),
		NumRetry:         1,
		InsertedAt:       time.Now().UTC().Truncate(time.Microsecond),
		Version:          2,
	}
}

func receiptColumnNames() []string {
	return []string{
		"event_id", "payment_manager_id", "status", "debtor_token", "payer_token",
		"subject", "amount", "debtor_doc_name", "debtor_doc_url", "payer_doc_name", "payer_doc_url",
		"reason_code", "reason_message", "num_retry", "inserted_at", "generated_at", "version",
	}
}

func receiptRow(t *domain.Receipt) *pgxmock.Rows {
	reasonCode, reasonMsg := reasonFields(t.ReasonErr)
	return pgxmock.NewRows(receiptColumnNames()).AddRow(
		t.EventID, t.PaymentManagerID, t.Status, t.DebtorToken, t.PayerToken,
		t.Subject, t.Amount, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
		reasonCode, reasonMsg, t.NumRetry, t.InsertedAt, t.GeneratedAt, t.Version,
	)
}

func TestReceiptRepo_GetByEventID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	rec := newTestReceipt()

	mock.ExpectQuery("SELECT .+ FROM receipts WHERE event_id").
		WithArgs(rec.EventID).
		WillReturnRows(receiptRow(rec))

	result, err := repo.GetByEventID(context.Background(), rec.EventID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec.EventID, result.EventID)
	assert.Equal(t, rec.Status, result.Status)
	assert.Equal(t, int64(2), result.Version)
	require.NotNil(t, result.ReasonErr)
	assert.Equal(t, domain.ReasonCodeQueueDispatch, result.ReasonErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_GetByEventID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM receipts WHERE event_id").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(receiptColumnNames()))

	result, err := repo.GetByEventID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_Save_InsertsAtVersionZero(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	rec := newTestReceipt()
	rec.Version = 0

	mock.ExpectExec("INSERT INTO receipts").
		WithArgs(rec.EventID, rec.PaymentManagerID, rec.Status, rec.DebtorToken, rec.PayerToken,
			rec.Subject, rec.Amount, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), rec.NumRetry, rec.InsertedAt, rec.GeneratedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version, "version bumps to 1 on first insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_Save_InsertRaceDetected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	rec := newTestReceipt()
	rec.Version = 0

	mock.ExpectExec("INSERT INTO receipts").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err = repo.Save(context.Background(), rec)
	assert.True(t, apperror.Is(err, apperror.CodeConcurrentUpdate))
	assert.Equal(t, int64(0), rec.Version, "version is untouched on a lost race")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_Save_UpdatesMatchingVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	rec := newTestReceipt()

	mock.ExpectExec("UPDATE receipts SET").
		WithArgs(rec.PaymentManagerID, rec.Status, rec.DebtorToken, rec.PayerToken,
			rec.Subject, rec.Amount, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), rec.NumRetry, rec.GeneratedAt,
			rec.EventID, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Save(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_Save_StaleVersionRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	rec := newTestReceipt()

	mock.ExpectExec("UPDATE receipts SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Save(context.Background(), rec)
	assert.True(t, apperror.Is(err, apperror.CodeConcurrentUpdate))
	assert.Equal(t, int64(2), rec.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_ScanByStatus_FullPageSetsCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)

	rows := pgxmock.NewRows(append([]string{"seq"}, receiptColumnNames()...)).
		AddRow(int64(11), "evt-a", "pm-1", domain.StatusFailed, "td", "tp",
			"subj", int64(100), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*int)(nil), (*string)(nil), 0, time.Now().UTC(), (*time.Time)(nil), int64(1)).
		AddRow(int64(12), "evt-b", "pm-1", domain.StatusFailed, "td", "tp",
			"subj", int64(200), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*int)(nil), (*string)(nil), 0, time.Now().UTC(), (*time.Time)(nil), int64(1))

	mock.ExpectQuery("SELECT seq, .+ FROM receipts").
		WithArgs([]string{"FAILED"}, int64(10), 2).
		WillReturnRows(rows)

	page, err := repo.ScanByStatus(context.Background(), ports.ScanParams{
		Statuses: []domain.Status{domain.StatusFailed},
		Cursor:   "10",
		PageSize: 2,
	})
	require.NoError(t, err)
	require.Len(t, page.Receipts, 2)
	assert.Equal(t, "evt-a", page.Receipts[0].EventID)
	assert.Equal(t, "12", page.NextCursor, "full page points at the last seen seq")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_ScanByStatus_ShortPageEndsScan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)

	rows := pgxmock.NewRows(append([]string{"seq"}, receiptColumnNames()...)).
		AddRow(int64(13), "evt-c", "pm-1", domain.StatusInserted, "td", "tp",
			"subj", int64(300), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*int)(nil), (*string)(nil), 0, time.Now().UTC(), (*time.Time)(nil), int64(1))

	mock.ExpectQuery("SELECT seq, .+ FROM receipts").
		WithArgs([]string{"INSERTED"}, int64(0), 5).
		WillReturnRows(rows)

	page, err := repo.ScanByStatus(context.Background(), ports.ScanParams{
		Statuses: []domain.Status{domain.StatusInserted},
		PageSize: 5,
	})
	require.NoError(t, err)
	require.Len(t, page.Receipts, 1)
	assert.Empty(t, page.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_ScanByStatus_MalformedCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)

	page, err := repo.ScanByStatus(context.Background(), ports.ScanParams{
		Statuses: []domain.Status{domain.StatusFailed},
		Cursor:   "not-a-number",
		PageSize: 5,
	})
	assert.Nil(t, page)
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}
