package models

import "time"

// RoutingLevel is one step of a workflow's routing table: who approves at
// which level, on which path. Tables are contiguous, ascending from level 1,
// and immutable at runtime.
type RoutingLevel struct {
	WorkflowID    int   `json:"workflow_id" dynamodbav:"workflow_id"`
	LevelID       int   `json:"level_id" dynamodbav:"level_id"`
	RoleID        int   `json:"role_id" dynamodbav:"role_id"`
	PathID        int   `json:"path_id" dynamodbav:"path_id"`
	ApprovalLimit int64 `json:"approval_limit,omitempty" dynamodbav:"approval_limit,omitempty"`
}

// NotificationStatus is the lifecycle of a pending-action record.
type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "Pending"
	NotificationApproved NotificationStatus = "Approved"
	NotificationRejected NotificationStatus = "Rejected"
)

// PendingNotification is the single open pending-action record per entity.
// Level advances update it in place rather than inserting a new row.
type PendingNotification struct {
	EntityID   string             `json:"entity_id" dynamodbav:"entity_id"`
	EntityType EntityType         `json:"entity_type" dynamodbav:"entity_type"`
	WorkflowID int                `json:"workflow_id" dynamodbav:"workflow_id"`
	LevelID    int                `json:"level_id" dynamodbav:"level_id"`
	RoleID     int                `json:"role_id" dynamodbav:"role_id"`
	PathID     int                `json:"path_id" dynamodbav:"path_id"`
	Status     NotificationStatus `json:"status" dynamodbav:"status"`
	Message    string             `json:"message" dynamodbav:"message"`
	CreatedAt  time.Time          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}

// Signature is one append-only trail row: who signed an entity at which level.
type Signature struct {
	EntityID  string    `json:"entity_id" dynamodbav:"entity_id"`
	SigID     string    `json:"sig_id" dynamodbav:"sig_id"`
	LevelID   int       `json:"level_id" dynamodbav:"level_id"`
	RoleID    int       `json:"role_id" dynamodbav:"role_id"`
	ActorID   string    `json:"actor_id" dynamodbav:"actor_id"`
	ActorName string    `json:"actor_name" dynamodbav:"actor_name"`
	Action    string    `json:"action" dynamodbav:"action"` // verified | rejected
	Remarks   string    `json:"remarks" dynamodbav:"remarks"`
	SignedAt  time.Time `json:"signed_at" dynamodbav:"signed_at"`
}

// Signal is the fire-and-forget pending-count hint emitted whenever a
// notification is opened or retargeted. It is advisory only; the
// authoritative count is always recomputed from stored notifications.
type Signal struct {
	RoleID int `json:"role_id"`
	Delta  int `json:"delta"`
}
