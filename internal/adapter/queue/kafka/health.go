package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// HealthCheck implements ports.HealthChecker for the Kafka brokers.
type HealthCheck struct {
	brokers []string
}

// NewHealthCheck creates a Kafka health checker.
func NewHealthCheck(brokers []string) *HealthCheck {
	return &HealthCheck{brokers: brokers}
}

// Ping dials the first reachable broker.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var lastErr error
	for _, broker := range h.brokers {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		conn.Close()
		return nil
	}
	return lastErr
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "kafka"
}
