package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// BadgePublisher fans a badge message out to every connected client through
// the API Gateway management API. Roles are not tracked per connection, so
// every client receives every message and filters on the payload's role ID.
type BadgePublisher struct {
	connections ConnectionStore
	apiGwClient *apigatewaymanagementapi.Client
}

// NewPublisher builds a BadgePublisher against the given management API
// endpoint.
func NewPublisher(connections ConnectionStore, apiEndpoint string) (*BadgePublisher, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &BadgePublisher{connections: connections, apiGwClient: apiGwClient}, nil
}

// Publish sends a message to all connected clients. Delivery is best-effort:
// a failed post is logged and the remaining connections still get the
// message. Connections that API Gateway reports gone are pruned in passing.
func (p *BadgePublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.connections.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		p.post(ctx, connectionID, payload)
	}

	return nil
}

func (p *BadgePublisher) post(ctx context.Context, connectionID string, payload []byte) {
	_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionID),
		Data:         payload,
	})
	if err == nil {
		return
	}

	var goneErr *apigwtypes.GoneException
	if errors.As(err, &goneErr) {
		slog.Info("stale connection found, deleting", "connectionId", connectionID)
		if err := p.connections.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to delete stale connection", "connectionId", connectionID, "error", err)
		}
		return
	}

	slog.Error("failed to post to connection", "connectionId", connectionID, "error", err)
}
