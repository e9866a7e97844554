package storage

import (
	"context"

	"github.com/finsuite/erp-approvals/pkg/models"
)

// EntityReader defines read access to approvable entities.
type EntityReader interface {
	// GetEntity retrieves an entity regardless of its approval status.
	GetEntity(ctx context.Context, t models.EntityType, id string) (models.Approvable, error)

	// GetForVerification retrieves an entity only while it is in the
	// Verification state. Terminal or absent entities yield a NotFoundError.
	GetForVerification(ctx context.Context, t models.EntityType, id string) (models.Approvable, error)

	// ListVerification retrieves the given entities that are still in
	// Verification at one of the given levels, in the order of ids.
	ListVerification(ctx context.Context, t models.EntityType, ids []string, levels []int) ([]models.Approvable, error)
}

// EntityWriter defines the conditional transitions the workflow engine is
// allowed to make. Every transition is a compare-and-swap on the entity's
// current (status, level); a losing concurrent writer gets a NotFoundError.
type EntityWriter interface {
	// CreateEntity persists a new entity. It fails with a DuplicateError when
	// a record with the same id already exists.
	CreateEntity(ctx context.Context, e models.Approvable) error

	// AdvanceLevel moves an entity from fromLevel to fromLevel+1 while it is
	// still in Verification at fromLevel.
	AdvanceLevel(ctx context.Context, t models.EntityType, id string, fromLevel int) error

	// CommitTerminal atomically moves an entity from Verification at
	// fromLevel to a terminal status and closes its open pending notification
	// in the same write.
	CommitTerminal(ctx context.Context, t models.EntityType, id string, fromLevel int, status models.ApprovalStatus) error

	// SetPOStatus mirrors a client PO's workflow position into its
	// user-facing status field. Unconditional; used by the PO side effect.
	SetPOStatus(ctx context.Context, id string, status models.POStatus) error
}

// EntityStore combines entity reads and conditional writes.
type EntityStore interface {
	EntityReader
	EntityWriter
}
