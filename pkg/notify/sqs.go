package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finsuite/erp-approvals/pkg/models"
)

// SQSSignaler emits pending-count signals onto an SQS queue. The notifier
// lambda drains the queue and pushes to connected websocket clients.
type SQSSignaler struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSSignaler creates a new SQSSignaler.
func NewSQSSignaler(client *sqs.Client, queueURL string) *SQSSignaler {
	return &SQSSignaler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Signaler = (*SQSSignaler)(nil)

// Signal sends the pending-count hint to the queue.
func (s *SQSSignaler) Signal(ctx context.Context, sig models.Signal) error {
	body, err := json.Marshal(sig)
	if err != nil {
		return fmt.Errorf("failed to marshal signal for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send signal to SQS: %w", err)
	}

	return nil
}

// NoOpSignaler is a Signaler that drops every signal. Used in tests and in
// deployments without the live badge pipeline.
type NoOpSignaler struct{}

// Signal does nothing.
func (NoOpSignaler) Signal(ctx context.Context, sig models.Signal) error {
	return nil
}
