package websockets

import "context"

// ConnectionStore tracks the API Gateway connection IDs of clients listening
// for badge updates.
type ConnectionStore interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetAllConnections(ctx context.Context) ([]string, error)
}

// Publisher pushes a message to every listening client.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
