package storage

import (
	"context"
	"time"

	"github.com/finsuite/erp-approvals/pkg/models"
)

// NotificationStore manages the single open pending-action record per entity.
// Open is a keyed upsert and Retarget an in-place update, which is what keeps
// the one-open-notification-per-entity invariant structural rather than
// filtered for.
type NotificationStore interface {
	// OpenNotification creates the pending record for a freshly created
	// entity. Fails with a DuplicateError if an open record already exists.
	OpenNotification(ctx context.Context, n *models.PendingNotification) error

	// RetargetNotification points the open record at a new level/role/path.
	// Fails with a NotFoundError when the record is absent or already closed.
	RetargetNotification(ctx context.Context, entityID string, levelID, roleID, pathID int) error

	// ListOpenForRole returns all pending records addressed to a role.
	ListOpenForRole(ctx context.Context, roleID int) ([]models.PendingNotification, error)

	// CountOpenForRole recomputes the authoritative pending count for a role.
	CountOpenForRole(ctx context.Context, roleID int) (int, error)

	// ListStale returns pending records untouched for longer than maxAge,
	// used by the reminder sweep.
	ListStale(ctx context.Context, maxAge time.Duration) ([]models.PendingNotification, error)
}

// SignatureStore is the append-only approval trail.
type SignatureStore interface {
	// AppendSignature records who signed an entity at which level.
	AppendSignature(ctx context.Context, sig *models.Signature) error

	// ListSignatures returns the trail for an entity in signing order.
	ListSignatures(ctx context.Context, entityID string) ([]models.Signature, error)
}
