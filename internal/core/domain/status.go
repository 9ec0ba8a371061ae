package domain

// Status is the lifecycle state of a receipt or cart. Receipts and carts
// share one vocabulary; WAITING_FOR_BIZ_EVENT is only ever assigned to carts.
type Status string

const (
	StatusNotQueueSent       Status = "NOT_QUEUE_SENT"
	StatusInserted           Status = "INSERTED"
	StatusRetry              Status = "RETRY"
	StatusGenerated          Status = "GENERATED"
	StatusSigned             Status = "SIGNED"
	StatusFailed             Status = "FAILED"
	StatusIONotified         Status = "IO_NOTIFIED"
	StatusIOErrorToNotify    Status = "IO_ERROR_TO_NOTIFY"
	StatusIONotifierRetry    Status = "IO_NOTIFIER_RETRY"
	StatusUnableToSend       Status = "UNABLE_TO_SEND"
	StatusNotToNotify        Status = "NOT_TO_NOTIFY"
	StatusToReview           Status = "TO_REVIEW"
	StatusWaitingForBizEvent Status = "WAITING_FOR_BIZ_EVENT"
)

// FailurePartition classifies a status into the recovery stage that may act
// on it. A status belongs to at most one partition.
type FailurePartition int

const (
	PartitionNone FailurePartition = iota
	PartitionDatastore
	PartitionNotification
)

// statusPartitions is the single source of truth for partition membership.
// Every status must have an entry here; adding a status without classifying
// it makes Partition return an error, which the exhaustive unit test catches.
var statusPartitions = map[Status]FailurePartition{
	StatusNotQueueSent:       PartitionDatastore,
	StatusInserted:           PartitionDatastore,
	StatusRetry:              PartitionNone,
	StatusGenerated:          PartitionNotification,
	StatusSigned:             PartitionNone,
	StatusFailed:             PartitionDatastore,
	StatusIONotified:         PartitionNone,
	StatusIOErrorToNotify:    PartitionNotification,
	StatusIONotifierRetry:    PartitionNone,
	StatusUnableToSend:       PartitionNone,
	StatusNotToNotify:        PartitionNone,
	StatusToReview:           PartitionNone,
	StatusWaitingForBizEvent: PartitionNone,
}

// AllStatuses returns every known status value.
func AllStatuses() []Status {
	return []Status{
		StatusNotQueueSent,
		StatusInserted,
		StatusRetry,
		StatusGenerated,
		StatusSigned,
		StatusFailed,
		StatusIONotified,
		StatusIOErrorToNotify,
		StatusIONotifierRetry,
		StatusUnableToSend,
		StatusNotToNotify,
		StatusToReview,
		StatusWaitingForBizEvent,
	}
}

// Partition returns the failure partition for s, or PartitionNone with
// ok=false for an unknown status.
func (s Status) Partition() (FailurePartition, bool) {
	p, ok := statusPartitions[s]
	return p, ok
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	_, ok := statusPartitions[s]
	return ok
}

// IsDatastoreFailure reports whether s is eligible for datastore-stage
// recovery: the record stalled before (or while) reaching the generation
// queue.
func IsDatastoreFailure(s Status) bool {
	return statusPartitions[s] == PartitionDatastore
}

// IsNotificationFailure reports whether s is eligible for notification-stage
// recovery: the PDF exists but the user was never notified.
func IsNotificationFailure(s Status) bool {
	return statusPartitions[s] == PartitionNotification
}

// ParseStatus converts a raw string into a Status, reporting whether it is a
// known value.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}
