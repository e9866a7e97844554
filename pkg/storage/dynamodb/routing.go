package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
)

// GetRouting returns a workflow's routing table, ordered ascending by level.
// Routing is configuration: read-only from the core's perspective.
func (s *Store) GetRouting(ctx context.Context, workflowID int) ([]models.RoutingLevel, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Routing),
		KeyConditionExpression: aws.String("workflow_id = :wf"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wf": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", workflowID)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query routing for workflow %d: %w", workflowID, err)
	}
	if len(result.Items) == 0 {
		return nil, apperrors.NotFound("workflow routing", fmt.Sprintf("%d", workflowID))
	}

	var levels []models.RoutingLevel
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal routing levels: %w", err)
	}

	return levels, nil
}
