// Package workflow implements the generic multi-level approval engine every
// approvable entity type plugs into. One state machine drives creation, level
// advancement, terminal approval/rejection and the pending-notification
// lifecycle; per-type behaviour (validation, code assignment, post-approval
// side effects) comes from the registry.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage"
	"github.com/google/uuid"
)

// Outcome says how a verify call concluded.
type Outcome string

const (
	// OutcomeAdvanced means the entity moved up one level and stays in
	// Verification.
	OutcomeAdvanced Outcome = "advanced"
	// OutcomeApproved means the entity reached terminal approval.
	OutcomeApproved Outcome = "approved"
)

// VerifyResult is the outcome of a verify call, including any derived records
// the side-effect handler produced on terminal approval.
type VerifyResult struct {
	Entity  models.Approvable
	Outcome Outcome
	Derived *models.SideEffectResult

	// SideEffectErr is set when the post-approval handler failed or skipped
	// derived records. The entity is Approved regardless; the approval commit
	// is never rolled back.
	SideEffectErr error
}

// Notifier is the dispatcher surface the engine drives. Closing happens
// inside the storage layer's terminal commit, so only open and retarget
// appear here.
type Notifier interface {
	Open(ctx context.Context, n *models.PendingNotification) error
	Retarget(ctx context.Context, entityID string, levelID, roleID, pathID int) error
}

// Engine is the approval state machine.
type Engine struct {
	Entities      storage.EntityStore
	Routing       storage.RoutingStore
	Signatures    storage.SignatureStore
	Notifications storage.NotificationStore
	Notifier      Notifier
	Registry      Registry
}

// NewEngine creates an Engine.
func NewEngine(entities storage.EntityStore, routing storage.RoutingStore, signatures storage.SignatureStore, notifications storage.NotificationStore, notifier Notifier, registry Registry) *Engine {
	return &Engine{
		Entities:      entities,
		Routing:       routing,
		Signatures:    signatures,
		Notifications: notifications,
		Notifier:      notifier,
		Registry:      registry,
	}
}

// Create validates and persists a new entity at Verification level 1 and
// opens the level-1 pending notification. Code assignment happens before
// persistence; a failed sequence lookup aborts the whole creation.
func (e *Engine) Create(ctx context.Context, t models.EntityType, entity models.Approvable, actor models.Actor, remarks string) (models.Approvable, error) {
	def, err := e.Registry.Lookup(t)
	if err != nil {
		return nil, err
	}

	if err := def.Validate(entity); err != nil {
		return nil, err
	}
	if def.Prepare != nil {
		if err := def.Prepare(ctx, entity); err != nil {
			return nil, err
		}
	}

	routing, err := e.Routing.GetRouting(ctx, def.WorkflowID)
	if err != nil {
		return nil, err
	}
	first, ok := levelEntry(routing, 1)
	if !ok {
		return nil, apperrors.NotFound("workflow routing level 1", fmt.Sprintf("%d", def.WorkflowID))
	}

	now := time.Now()
	state := entity.Approval()
	if state.ID == "" {
		state.ID = uuid.New().String()
	}
	state.WorkflowID = def.WorkflowID
	state.Status = models.StatusVerification
	state.LevelID = 1
	state.CreatedAt = now
	state.UpdatedAt = now

	if err := e.Entities.CreateEntity(ctx, entity); err != nil {
		return nil, err
	}

	notification := &models.PendingNotification{
		EntityID:   state.ID,
		EntityType: t,
		WorkflowID: def.WorkflowID,
		LevelID:    1,
		RoleID:     first.RoleID,
		PathID:     first.PathID,
		Message:    def.Message(entity),
	}
	if err := e.Notifier.Open(ctx, notification); err != nil {
		return nil, fmt.Errorf("entity %s created but notification failed: %w", state.ID, err)
	}

	return entity, nil
}

// Verify advances an entity one approval level, or approves it terminally
// when no next level is configured. The underlying updates are conditioned on
// the entity's current (status, level), so of two racing approvers exactly
// one wins; the loser sees a not-found outcome.
func (e *Engine) Verify(ctx context.Context, t models.EntityType, id string, actor models.Actor, remarks string) (*VerifyResult, error) {
	if remarks == "" {
		return nil, apperrors.Validation("remarks are required to verify")
	}

	def, err := e.Registry.Lookup(t)
	if err != nil {
		return nil, err
	}

	entity, err := e.Entities.GetForVerification(ctx, t, id)
	if err != nil {
		return nil, err
	}
	state := entity.Approval()
	currentLevel := state.LevelID

	routing, err := e.Routing.GetRouting(ctx, state.WorkflowID)
	if err != nil {
		return nil, err
	}

	next, found := levelEntry(routing, currentLevel+1)
	if found {
		if err := e.Entities.AdvanceLevel(ctx, t, id, currentLevel); err != nil {
			return nil, err
		}
		if err := e.Notifier.Retarget(ctx, id, next.LevelID, next.RoleID, next.PathID); err != nil {
			return nil, err
		}
		e.sign(ctx, entity, actor, "verified", remarks)

		state.LevelID = next.LevelID
		return &VerifyResult{Entity: entity, Outcome: OutcomeAdvanced}, nil
	}

	// No next level: this verification is the terminal approval.
	if err := e.Entities.CommitTerminal(ctx, t, id, currentLevel, models.StatusApproved); err != nil {
		return nil, err
	}
	e.sign(ctx, entity, actor, "verified", remarks)
	state.Status = models.StatusApproved

	result := &VerifyResult{Entity: entity, Outcome: OutcomeApproved}
	derived, seErr := def.SideEffect.Apply(ctx, entity)
	result.Derived = derived
	if seErr != nil {
		result.SideEffectErr = &apperrors.SideEffectError{Failed: 1, Reasons: []string{seErr.Error()}}
	} else if derived != nil && derived.Failed > 0 {
		result.SideEffectErr = &apperrors.SideEffectError{
			Succeeded: len(derived.LedgerEntries) + len(derived.Invoices),
			Failed:    derived.Failed,
			Reasons:   derived.Failures,
		}
	}

	return result, nil
}

// Reject terminates an entity's approval lifecycle at any verification level.
// No side-effect handler runs; the per-type rejection hook (PO status reset)
// is the only reaction.
func (e *Engine) Reject(ctx context.Context, t models.EntityType, id string, actor models.Actor, remarks string) (models.Approvable, error) {
	if remarks == "" {
		return nil, apperrors.Validation("remarks are required to reject")
	}

	def, err := e.Registry.Lookup(t)
	if err != nil {
		return nil, err
	}

	entity, err := e.Entities.GetForVerification(ctx, t, id)
	if err != nil {
		return nil, err
	}
	state := entity.Approval()

	if err := e.Entities.CommitTerminal(ctx, t, id, state.LevelID, models.StatusRejected); err != nil {
		return nil, err
	}
	e.sign(ctx, entity, actor, "rejected", remarks)
	state.Status = models.StatusRejected

	if def.OnRejected != nil {
		if err := def.OnRejected(ctx, entity); err != nil {
			return nil, fmt.Errorf("entity %s rejected but rejection hook failed: %w", id, err)
		}
	}

	return entity, nil
}

// ListForVerification returns the entities awaiting an approver role's
// action. "No work" is an empty list, never an error.
func (e *Engine) ListForVerification(ctx context.Context, t models.EntityType, roleID int) ([]models.Approvable, error) {
	def, err := e.Registry.Lookup(t)
	if err != nil {
		return nil, err
	}
	if roleID <= 0 {
		return nil, apperrors.Validation("role id must be a positive integer")
	}

	routing, err := e.Routing.GetRouting(ctx, def.WorkflowID)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return []models.Approvable{}, nil
		}
		return nil, err
	}

	// Levels (and paths) this role approves at within the workflow.
	type slot struct{ level, path int }
	slots := make(map[slot]bool)
	var levels []int
	for _, entry := range routing {
		if entry.RoleID == roleID {
			slots[slot{entry.LevelID, entry.PathID}] = true
			levels = append(levels, entry.LevelID)
		}
	}
	if len(slots) == 0 {
		return []models.Approvable{}, nil
	}

	notifications, err := e.Notifications.ListOpenForRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, n := range notifications {
		if n.EntityType != t || n.WorkflowID != def.WorkflowID {
			continue
		}
		if slots[slot{n.LevelID, n.PathID}] {
			ids = append(ids, n.EntityID)
		}
	}
	if len(ids) == 0 {
		return []models.Approvable{}, nil
	}

	return e.Entities.ListVerification(ctx, t, ids, levels)
}

// History returns the append-only approval trail of an entity.
func (e *Engine) History(ctx context.Context, t models.EntityType, id string) ([]models.Signature, error) {
	if _, err := e.Registry.Lookup(t); err != nil {
		return nil, err
	}
	if _, err := e.Entities.GetEntity(ctx, t, id); err != nil {
		return nil, err
	}
	return e.Signatures.ListSignatures(ctx, id)
}

// sign appends a trail row for the winning actor. The trail is observational;
// a failed append is logged but never undoes a committed transition.
func (e *Engine) sign(ctx context.Context, entity models.Approvable, actor models.Actor, action, remarks string) {
	sig := &models.Signature{
		EntityID:  entity.EntityID(),
		SigID:     uuid.New().String(),
		LevelID:   entity.Approval().LevelID,
		RoleID:    actor.RoleID,
		ActorID:   actor.ID,
		ActorName: actor.DisplayName,
		Action:    action,
		Remarks:   remarks,
		SignedAt:  time.Now(),
	}
	if err := e.Signatures.AppendSignature(ctx, sig); err != nil {
		slog.Warn("failed to append signature trail row",
			"entityId", entity.EntityID(),
			"action", action,
			"error", err)
	}
}

// levelEntry finds the first routing entry configured for a level. When
// multiple entries share a level the first structural match wins
// (first-match-advances).
func levelEntry(routing []models.RoutingLevel, level int) (models.RoutingLevel, bool) {
	for _, entry := range routing {
		if entry.LevelID == level {
			return entry, true
		}
	}
	return models.RoutingLevel{}, false
}
