package storage

import "context"

// WebSocketManager stores and retrieves the connection IDs of clients
// listening for pending-count badge updates.
type WebSocketManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetAllConnections(ctx context.Context) ([]string, error)
}
