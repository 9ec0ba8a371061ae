package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"receipt-recovery-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the upstream event store.
// Events are written by the payment system as JSON documents; this repo is
// strictly read-only.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// GetByID fetches a BizEvent, returning nil, nil when absent. The event
// store may have expired the source while a receipt remains pending, so
// absence is an expected condition here, not a storage fault.
func (r *EventRepo) GetByID(ctx context.Context, eventID string) (*domain.BizEvent, error) {
	query := `SELECT payload FROM biz_events WHERE id = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get biz event: %w", err)
	}

	return unmarshalEvent(payload)
}

// GetByIDs fetches the subset of requested events that exist.
func (r *EventRepo) GetByIDs(ctx context.Context, eventIDs []string) ([]domain.BizEvent, error) {
	query := `SELECT payload FROM biz_events WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("get biz events: %w", err)
	}
	defer rows.Close()

	var events []domain.BizEvent
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan biz event row: %w", err)
		}
		event, err := unmarshalEvent(payload)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate biz event rows: %w", err)
	}
	return events, nil
}

func unmarshalEvent(payload []byte) (*domain.BizEvent, error) {
	event := &domain.BizEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("unmarshal biz event: %w", err)
	}
	return event, nil
}
