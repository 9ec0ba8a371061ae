package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_PartitionCoversAllStatuses(t *testing.T) {
	for _, s := range AllStatuses() {
		_, ok := s.Partition()
		assert.True(t, ok, "status %s has no partition entry", s)
	}
}

func TestStatus_PartitionsAreDisjoint(t *testing.T) {
	// A status may be datastore-recoverable or notification-recoverable,
	// never both.
	for _, s := range AllStatuses() {
		assert.False(t, IsDatastoreFailure(s) && IsNotificationFailure(s),
			"status %s belongs to both partitions", s)
	}
}

func TestStatus_DatastorePartitionMembers(t *testing.T) {
	want := map[Status]bool{
		StatusNotQueueSent: true,
		StatusInserted:     true,
		StatusFailed:       true,
	}
	for _, s := range AllStatuses() {
		assert.Equal(t, want[s], IsDatastoreFailure(s), "status %s", s)
	}
}

func TestStatus_NotificationPartitionMembers(t *testing.T) {
	want := map[Status]bool{
		StatusGenerated:       true,
		StatusIOErrorToNotify: true,
	}
	for _, s := range AllStatuses() {
		assert.Equal(t, want[s], IsNotificationFailure(s), "status %s", s)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
		ok   bool
	}{
		{"known value", "INSERTED", StatusInserted, true},
		{"waiting cart", "WAITING_FOR_BIZ_EVENT", StatusWaitingForBizEvent, true},
		{"unknown value", "EXPLODED", Status("EXPLODED"), false},
		{"empty", "", Status(""), false},
		{"lowercase is rejected", "inserted", Status("inserted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestReceipt_IsRecoverable(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"never queued", StatusNotQueueSent, true},
		{"inserted", StatusInserted, true},
		{"failed", StatusFailed, true},
		{"generated", StatusGenerated, false},
		{"io notified", StatusIONotified, false},
		{"to review", StatusToReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Receipt{EventID: "evt-1", Status: tt.status}
			assert.Equal(t, tt.want, r.IsRecoverable())
		})
	}
}

func TestReasonConstructors(t *testing.T) {
	q := QueueDispatchReason("broker down")
	assert.Equal(t, ReasonCodeQueueDispatch, q.Code)
	assert.Equal(t, "broker down", q.Message)

	b := BlobStorageReason("bucket gone")
	assert.Equal(t, ReasonCodeBlobStorage, b.Code)
}

func TestCart_AddPayment(t *testing.T) {
	c := NewCart("cart-1", 2, time.Now())
	assert.Equal(t, StatusWaitingForBizEvent, c.Status)
	assert.False(t, c.IsComplete())

	require.NoError(t, c.AddPayment("pay-a"))
	assert.True(t, c.Contains("pay-a"))
	assert.Equal(t, 1, c.PaymentCount())

	// Duplicate add is a no-op.
	require.NoError(t, c.AddPayment("pay-a"))
	assert.Equal(t, 1, c.PaymentCount())

	require.NoError(t, c.AddPayment("pay-b"))
	assert.True(t, c.IsComplete())

	// A third distinct payment exceeds TotalNotice.
	err := c.AddPayment("pay-c")
	require.Error(t, err)
	assert.Equal(t, 2, c.PaymentCount())
}

func TestCart_PaymentIDsAreSorted(t *testing.T) {
	c := NewCart("cart-1", 3, time.Now())
	require.NoError(t, c.AddPayment("zz"))
	require.NoError(t, c.AddPayment("aa"))
	require.NoError(t, c.AddPayment("mm"))
	assert.Equal(t, []string{"aa", "mm", "zz"}, c.PaymentIDs())
}

func TestCart_RestoreRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := RestoreCart("cart-9", []string{"p1", "p2"}, 3, StatusFailed, now, 4)
	assert.Equal(t, "cart-9", c.ID)
	assert.Equal(t, 2, c.PaymentCount())
	assert.Equal(t, 3, c.TotalNotice)
	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, now, c.InsertedAt)
	assert.Equal(t, int64(4), c.Version)
	assert.NoError(t, c.CheckInvariant())
}

func TestCart_CheckInvariant(t *testing.T) {
	c := RestoreCart("cart-bad", []string{"p1", "p2", "p3"}, 2, StatusInserted, time.Now(), 1)
	assert.Error(t, c.CheckInvariant())
}

func TestCart_IsRecoverable(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"waiting for sibling events", StatusWaitingForBizEvent, true},
		{"inserted", StatusInserted, true},
		{"failed", StatusFailed, true},
		{"generated", StatusGenerated, false},
		{"io notified", StatusIONotified, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RestoreCart("cart-1", nil, 2, tt.status, time.Now(), 1)
			assert.Equal(t, tt.want, c.IsRecoverable())
		})
	}
}

func TestBizEvent_IsCartMember(t *testing.T) {
	tests := []struct {
		name        string
		totalNotice int
		cartID      string
		want        bool
	}{
		{"single payment", 1, "", false},
		{"multi payment with cart", 3, "cart-1", true},
		{"multi payment missing cart id", 3, "", false},
		{"single payment stray cart id", 1, "cart-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &BizEvent{Transaction: TransactionDetails{
				TotalNotice: tt.totalNotice,
				CartID:      tt.cartID,
			}}
			assert.Equal(t, tt.want, ev.IsCartMember())
		})
	}
}
