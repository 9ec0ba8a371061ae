package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"receipt-recovery-service/config"
	"receipt-recovery-service/internal/core/ports"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the publisher uses, extracted for
// testability.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher implements ports.GenerationQueue on a Kafka topic. Broker
// hiccups are retried with exponential backoff and jitter before the
// failure is surfaced to the orchestrator.
type Publisher struct {
	writer Writer
	topic  string
	retry  config.KafkaRetryConfig
	log    zerolog.Logger
}

// NewWriter builds the kafka-go writer for the generation topic.
func NewWriter(cfg config.KafkaConfig) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:     kafkago.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafkago.LeastBytes{},
	}
}

// NewPublisher creates a new Publisher.
func NewPublisher(writer Writer, cfg config.KafkaConfig, log zerolog.Logger) *Publisher {
	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry.MaxAttempts = 5
	}
	if retry.BaseDelay == 0 {
		retry.BaseDelay = 100 * time.Millisecond
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 10 * time.Second
	}
	return &Publisher{
		writer: writer,
		topic:  cfg.Topic,
		retry:  retry,
		log:    log,
	}
}

// Publish serializes the generation message and writes it to the topic.
// The message key is the record id so all work for one record lands on the
// same partition.
func (p *Publisher) Publish(ctx context.Context, msg ports.GenerationMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal generation message: %w", err)
	}

	key := msg.EventID
	if key == "" {
		key = msg.CartID
	}

	return p.writeWithRetry(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: data,
	})
}

func (p *Publisher) writeWithRetry(ctx context.Context, msg kafkago.Message) error {
	var lastErr error

	for attempt := 0; attempt < p.retry.MaxAttempts; attempt++ {
		err := p.writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				p.log.Info().
					Str("topic", p.topic).
					Int("attempts", attempt+1).
					Msg("message published after retries")
			}
			return nil
		}
		lastErr = err

		if attempt == p.retry.MaxAttempts-1 {
			break
		}

		delay := p.backoff(attempt)
		p.log.Warn().Err(err).
			Str("topic", p.topic).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("publish failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("publish to topic %q after %d attempts: %w", p.topic, p.retry.MaxAttempts, lastErr)
}

func (p *Publisher) backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * p.retry.BaseDelay
	if delay > p.retry.MaxDelay {
		delay = p.retry.MaxDelay
	}
	if p.retry.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}
	return delay
}
