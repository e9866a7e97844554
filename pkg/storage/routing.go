package storage

import (
	"context"

	"github.com/finsuite/erp-approvals/pkg/models"
)

// RoutingStore is the read-only workflow configuration lookup.
type RoutingStore interface {
	// GetRouting returns a workflow's routing table ordered by level.
	GetRouting(ctx context.Context, workflowID int) ([]models.RoutingLevel, error)
}

// SequenceStore is the atomic per-scope counter behind code generation.
// Next must be an increment-and-fetch primitive, never read-max-then-write.
type SequenceStore interface {
	// Next returns the next value of the counter for a scope, starting at 1.
	Next(ctx context.Context, scope string) (int64, error)
}
