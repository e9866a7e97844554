package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/finsuite/erp-approvals/pkg/models"
	dydbstore "github.com/finsuite/erp-approvals/pkg/storage/dynamodb"
	"github.com/finsuite/erp-approvals/pkg/websockets"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tablePrefix := os.Getenv("DYNAMODB_TABLE_PREFIX")
	if tablePrefix == "" {
		log.Fatal("DYNAMODB_TABLE_PREFIX environment variable not set")
	}
	store := dydbstore.New(dynamodb.NewFromConfig(cfg), dydbstore.TableNamesFromPrefix(tablePrefix))

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	publisher, err = websockets.NewPublisher(store, apiEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher: %v", err)
	}
}

// HandleRequest drains pending-count signals off the queue and pushes badge
// updates to connected clients. Delivery is best-effort; a signal that fails
// to unmarshal is dropped rather than retried, since clients reconcile against
// the authoritative count on connect anyway.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		var sig models.Signal
		if err := json.Unmarshal([]byte(message.Body), &sig); err != nil {
			log.Printf("ERROR: failed to unmarshal signal from SQS message %s: %v", message.MessageId, err)
			continue
		}

		msg := websockets.Message{
			Type: websockets.MessageTypePendingCount,
			Payload: websockets.PendingCountPayload{
				RoleID: sig.RoleID,
				Delta:  sig.Delta,
			},
		}
		if err := publisher.Publish(ctx, msg); err != nil {
			log.Printf("ERROR: failed to publish badge update for role %d: %v", sig.RoleID, err)
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
