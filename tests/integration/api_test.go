package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "receipt-recovery-service/internal/adapter/http/handler"
	redisStorage "receipt-recovery-service/internal/adapter/storage/redis"
	"receipt-recovery-service/internal/core/domain"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/internal/service"
	"receipt-recovery-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the full stack end to end: real HTTP layer, middleware,
// handlers and services over in-memory storage, an in-memory generation
// queue, a stub tokenizer and a miniredis-backed token cache.

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	receiptRepo *inMemoryReceiptRepo
	cartRepo    *inMemoryCartRepo
	eventRepo   *inMemoryEventRepo
	queue       *inMemoryQueue
}

type healthyChecker struct{ name string }

func (h healthyChecker) Ping(context.Context) error { return nil }
func (h healthyChecker) Name() string               { return h.name }

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	receiptRepo := newInMemoryReceiptRepo()
	cartRepo := newInMemoryCartRepo()
	eventRepo := newInMemoryEventRepo()
	queue := &inMemoryQueue{}

	log := logger.NewWithWriter("error", nil)
	tokenCache := redisStorage.NewTokenCache(rdb)
	translator := service.NewTranslatorService(eventRepo, stubTokenizer{}, tokenCache, time.Hour, log)
	dispatcher := service.NewDispatcherService(queue, log)
	recoverySvc := service.NewRecoveryService(receiptRepo, cartRepo, eventRepo, translator, dispatcher, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RecoverySvc:    recoverySvc,
		HealthCheckers: []ports.HealthChecker{healthyChecker{"postgres"}, healthyChecker{"redis"}},
		MaxPageSize:    1000,
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		mr.Close()
	})

	return &testApp{
		server:      server,
		redis:       mr,
		receiptRepo: receiptRepo,
		cartRepo:    cartRepo,
		eventRepo:   eventRepo,
		queue:       queue,
	}
}

func (a *testApp) seedEvent(id string) {
	a.eventRepo.put(domain.BizEvent{
		ID:               id,
		PaymentManagerID: "pm-" + id,
		Debtor:           domain.Subject{FiscalCode: "DBTFSC80A01H501X"},
		Payer:            domain.Subject{FiscalCode: "PYRFSC75B02H501Y"},
		Transaction: domain.TransactionDetails{
			GrandTotal:    15000,
			RemittanceInf: "TARI 2026",
			TotalNotice:   1,
		},
		CreatedAt: time.Now().UTC(),
	})
}

func (a *testApp) seedFailedReceipt(t *testing.T, eventID string) {
	t.Helper()
	rec := &domain.Receipt{
		EventID:    eventID,
		Status:     domain.StatusFailed,
		ReasonErr:  domain.QueueDispatchReason("previous enqueue failed"),
		NumRetry:   1,
		InsertedAt: time.Now().UTC(),
	}
	require.NoError(t, a.receiptRepo.Save(context.Background(), rec))
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	resp, err := http.Post(url, "application/json", reader)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "expected a data envelope, got %v", envelope)
	return data
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_RecoverFailedReceipt(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("evt-1")
	app.seedFailedReceipt(t, "evt-1")

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/evt-1/recover", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "evt-1", data["record_id"])
	assert.Equal(t, "INSERTED", data["status"])
	assert.Equal(t, true, data["enqueued"])

	// The record was rebuilt from the event with tokens, not raw PII.
	rec, err := app.receiptRepo.GetByEventID(context.Background(), "evt-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, domain.StatusInserted, rec.Status)
	assert.Nil(t, rec.ReasonErr)
	assert.Equal(t, 2, rec.NumRetry)
	assert.Equal(t, int64(2), rec.Version)
	assert.NotEmpty(t, rec.DebtorToken)
	assert.NotEqual(t, "DBTFSC80A01H501X", rec.DebtorToken)

	assert.Equal(t, 1, app.queue.len())
}

func TestIntegration_RecoverUnknownEvent(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/ghost/recover", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, app.queue.len())
}

func TestIntegration_RecoverNotRecoverable(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("evt-1")
	rec := &domain.Receipt{EventID: "evt-1", Status: domain.StatusIONotified, InsertedAt: time.Now().UTC()}
	require.NoError(t, app.receiptRepo.Save(context.Background(), rec))

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/evt-1/recover", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Untouched.
	stored, err := app.receiptRepo.GetByEventID(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIONotified, stored.Status)
}

func TestIntegration_BrokerOutageMarksFailed(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("evt-1")
	app.seedFailedReceipt(t, "evt-1")
	app.queue.broken = true

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/evt-1/recover", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "a queue outage is not a request failure")

	data := decodeData(t, resp)
	assert.Equal(t, "FAILED", data["status"])
	assert.Equal(t, false, data["enqueued"])

	rec, err := app.receiptRepo.GetByEventID(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, rec.Status)
	require.NotNil(t, rec.ReasonErr)
	assert.Equal(t, domain.ReasonCodeQueueDispatch, rec.ReasonErr.Code)

	// The record is re-recoverable once the broker returns.
	app.queue.broken = false
	resp = postJSON(t, app.server.URL+"/api/v1/receipts/evt-1/recover", nil)
	data = decodeData(t, resp)
	assert.Equal(t, true, data["enqueued"])
	assert.Equal(t, 1, app.queue.len())
}

func TestIntegration_BatchSweep(t *testing.T) {
	app := newTestApp(t)
	for _, id := range []string{"evt-a", "evt-b", "evt-c"} {
		app.seedEvent(id)
		app.seedFailedReceipt(t, id)
	}
	// evt-orphan has a receipt but its source event expired from the store.
	app.seedFailedReceipt(t, "evt-orphan")

	resp := postJSON(t, app.server.URL+"/api/v1/recovery/batch", map[string]any{
		"statuses":  []string{"FAILED"},
		"page_size": 2, // force multiple pages
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, float64(3), data["succeeded"])
	assert.Equal(t, float64(1), data["failed"])
	assert.Equal(t, []interface{}{"evt-orphan"}, data["failed_ids"])
	assert.Equal(t, 3, app.queue.len())
}

func TestIntegration_BatchRejectsIneligibleStatus(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app.server.URL+"/api/v1/recovery/batch", map[string]any{
		"statuses": []string{"IO_NOTIFIED"},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_CompleteCartRecovered(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("p1")
	app.seedEvent("p2")

	cart := domain.RestoreCart("cart-1", []string{"p1", "p2"}, 2, domain.StatusFailed, time.Now().UTC(), 0)
	require.NoError(t, app.cartRepo.Save(context.Background(), cart))

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/cart-1/recover?is_cart=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "cart-1", data["record_id"])
	assert.Equal(t, "INSERTED", data["status"])
	assert.Equal(t, true, data["enqueued"])
	assert.Equal(t, 1, app.queue.len())
}

func TestIntegration_IncompleteCartWaits(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("p1")

	cart := domain.RestoreCart("cart-1", []string{"p1"}, 2, domain.StatusFailed, time.Now().UTC(), 0)
	require.NoError(t, app.cartRepo.Save(context.Background(), cart))

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/cart-1/recover?is_cart=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, "WAITING_FOR_BIZ_EVENT", data["status"])
	assert.Equal(t, false, data["enqueued"])
	assert.Equal(t, 0, app.queue.len())

	stored, err := app.cartRepo.GetByID(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingForBizEvent, stored.Status)
}

func TestIntegration_TokenCacheHoldsDigestsOnly(t *testing.T) {
	app := newTestApp(t)
	app.seedEvent("evt-1")
	app.seedFailedReceipt(t, "evt-1")

	resp := postJSON(t, app.server.URL+"/api/v1/receipts/evt-1/recover", nil)
	resp.Body.Close()

	keys := app.redis.Keys()
	require.NotEmpty(t, keys, "tokens are cached after a recovery")
	for _, k := range keys {
		assert.Contains(t, k, "pdvtoken:")
		assert.NotContains(t, k, "DBTFSC80A01H501X", "raw PII must never be a cache key")
		assert.NotContains(t, k, "PYRFSC75B02H501Y")
	}
}
