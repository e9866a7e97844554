package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finsuite/erp-approvals/pkg/models"
)

// AppendSignature inserts one approval-trail row. The trail is append-only;
// rows are never updated after insert.
func (s *Store) AppendSignature(ctx context.Context, sig *models.Signature) error {
	item, err := attributevalue.MarshalMap(sig)
	if err != nil {
		return fmt.Errorf("failed to marshal signature: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Signatures),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(sig_id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to append signature: %w", err)
	}

	return nil
}

// ListSignatures returns the approval trail for an entity in signing order.
func (s *Store) ListSignatures(ctx context.Context, entityID string) ([]models.Signature, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Signatures),
		KeyConditionExpression: aws.String("entity_id = :entity"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entity": &types.AttributeValueMemberS{Value: entityID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query signatures for %s: %w", entityID, err)
	}

	var sigs []models.Signature
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &sigs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signatures: %w", err)
	}

	return sigs, nil
}
