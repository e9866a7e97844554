package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/notify"
	"github.com/finsuite/erp-approvals/pkg/storage"
	dydbstore "github.com/finsuite/erp-approvals/pkg/storage/dynamodb"
)

var store storage.Storage
var signaler notify.Signaler

// Notifications untouched this long get their role re-signalled so stalled
// approvals resurface on someone's badge.
const staleNotificationThreshold = 48 * time.Hour

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tablePrefix := os.Getenv("DYNAMODB_TABLE_PREFIX")
	if tablePrefix == "" {
		log.Fatal("DYNAMODB_TABLE_PREFIX environment variable not set")
	}
	store = dydbstore.New(dynamodb.NewFromConfig(cfg), dydbstore.TableNamesFromPrefix(tablePrefix))

	sqsQueueURL := os.Getenv("SQS_SIGNAL_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_SIGNAL_QUEUE_URL environment variable not set")
	}
	signaler = notify.NewSQSSignaler(sqs.NewFromConfig(cfg), sqsQueueURL)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reminder sweep for stale pending approvals...")

	stale, err := store.ListStale(ctx, staleNotificationThreshold)
	if err != nil {
		log.Printf("ERROR: failed to list stale notifications: %v", err)
		return err
	}

	if len(stale) == 0 {
		log.Println("No stale pending approvals found.")
		return nil
	}

	// One reminder per role, not one per entity: the badge is a count, so a
	// single zero-delta nudge makes the client refetch.
	roles := make(map[int]bool)
	for _, n := range stale {
		roles[n.RoleID] = true
	}

	log.Printf("Found %d stale pending approvals across %d roles. Re-signalling...", len(stale), len(roles))

	for roleID := range roles {
		if err := signaler.Signal(ctx, models.Signal{RoleID: roleID, Delta: 0}); err != nil {
			log.Printf("ERROR: failed to re-signal role %d: %v", roleID, err)
			// Continue to the next role, don't let one failure stop the sweep.
			continue
		}
	}

	log.Println("Reminder sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
