package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
)

const ledgerTimestampGSI = "gsi1pk-created_at-index"

// ledgerPartition is the single-partition GSI key that lets recent entries be
// listed newest-first.
const ledgerPartition = "LEDGER_ENTRIES"

// CreateLedgerEntry persists one derived accounts-ledger entry. The entry id
// is deterministic per source entity, so a retried side effect collides here
// instead of producing a second entry.
func (s *Store) CreateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	entry.GSI1PK = ledgerPartition

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Ledger),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.Duplicate("ledger entry for %s already exists", entry.SourceID)
		}
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}

// ListLedgerEntries retrieves the most recent derived entries.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Ledger),
		IndexName:              aws.String(ledgerTimestampGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: ledgerPartition},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	var entries []models.LedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	return entries, nil
}
