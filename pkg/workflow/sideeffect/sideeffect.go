// Package sideeffect holds the type-specific reactions fired when an entity
// reaches terminal approval. Handlers run after the Approved status is
// committed; a handler failure is reported to the caller but never rolls the
// approval back.
package sideeffect

import (
	"context"

	"github.com/finsuite/erp-approvals/pkg/models"
)

// Handler reacts to an entity's terminal approval by creating derived
// records. Partial failures are counted in the result rather than aborting
// the remaining work.
type Handler interface {
	Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error)
}

// None is the handler for entity types with no post-approval reaction.
type None struct{}

// Apply does nothing.
func (None) Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error) {
	return &models.SideEffectResult{}, nil
}
