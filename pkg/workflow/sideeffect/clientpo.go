package sideeffect

import (
	"context"
	"fmt"

	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

// POStatusMirror mirrors a client PO's terminal approval into its user-facing
// status field. No financial records are derived from a PO.
type POStatusMirror struct {
	Entities storage.EntityWriter
}

// Make sure we conform to the interface
var _ Handler = (*POStatusMirror)(nil)

// Apply marks the PO status Approved.
func (h *POStatusMirror) Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error) {
	po, ok := entity.(*models.ClientPO)
	if !ok {
		return nil, fmt.Errorf("PO status mirror received %T", entity)
	}

	if err := h.Entities.SetPOStatus(ctx, po.EntityID(), models.POStatusApproved); err != nil {
		return nil, err
	}

	return &models.SideEffectResult{}, nil
}
