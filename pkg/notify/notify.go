// Package notify persists pending-action records and emits the advisory
// "new work" signal that drives live pending-count badges.
package notify

import (
	"context"
	"log/slog"

	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

// Signaler emits the fire-and-forget pending-count hint. Delivery is not
// guaranteed; a lost signal must never corrupt state, so the dispatcher only
// logs emit failures.
type Signaler interface {
	Signal(ctx context.Context, sig models.Signal) error
}

// Dispatcher manages the single open pending notification per entity.
type Dispatcher struct {
	Store    storage.NotificationStore
	Signaler Signaler
}

// NewDispatcher creates a Dispatcher. A nil signaler disables live signals.
func NewDispatcher(store storage.NotificationStore, signaler Signaler) *Dispatcher {
	return &Dispatcher{Store: store, Signaler: signaler}
}

// Open persists the pending record for a freshly created entity and hints the
// addressed role that new work arrived.
func (d *Dispatcher) Open(ctx context.Context, n *models.PendingNotification) error {
	if err := d.Store.OpenNotification(ctx, n); err != nil {
		return err
	}
	d.emit(ctx, n.RoleID, 1)
	return nil
}

// Retarget points the open record at the next level's role/path and hints the
// newly addressed role.
func (d *Dispatcher) Retarget(ctx context.Context, entityID string, levelID, roleID, pathID int) error {
	if err := d.Store.RetargetNotification(ctx, entityID, levelID, roleID, pathID); err != nil {
		return err
	}
	d.emit(ctx, roleID, 1)
	return nil
}

// PendingCount recomputes the authoritative pending count for a role from
// stored rows. Connected clients use this to correct whatever the signal
// stream told them.
func (d *Dispatcher) PendingCount(ctx context.Context, roleID int) (int, error) {
	return d.Store.CountOpenForRole(ctx, roleID)
}

func (d *Dispatcher) emit(ctx context.Context, roleID, delta int) {
	if d.Signaler == nil {
		return
	}
	if err := d.Signaler.Signal(ctx, models.Signal{RoleID: roleID, Delta: delta}); err != nil {
		slog.Warn("failed to emit pending-count signal", "roleId", roleID, "error", err)
	}
}
