package dto

import (
	"fmt"

	"receipt-recovery-service/internal/core/domain"
)

// ParseStatuses converts raw status strings into domain values, rejecting
// anything outside the known vocabulary. An empty slice is allowed: the
// service applies its default filter.
func ParseStatuses(raw []string) ([]domain.Status, error) {
	statuses := make([]domain.Status, 0, len(raw))
	for _, s := range raw {
		status, ok := domain.ParseStatus(s)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", s)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
