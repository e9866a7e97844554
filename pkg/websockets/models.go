package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypePendingCount is for messages that nudge pending-count badges.
	MessageTypePendingCount MessageType = "pendingCountUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// PendingCountPayload is the payload for a pendingCountUpdate message. Delta
// is a hint; clients are expected to refetch the authoritative count.
type PendingCountPayload struct {
	RoleID int `json:"role_id"`
	Delta  int `json:"delta"`
}
