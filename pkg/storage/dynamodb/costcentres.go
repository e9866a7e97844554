package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
)

// GetCostCentre looks up a cost centre by its code.
func (s *Store) GetCostCentre(ctx context.Context, code string) (*models.CostCentre, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"code": code})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cost centre code: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.CostCentres),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cost centre from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, apperrors.Dependency("cost centre %s does not exist", code)
	}

	var cc models.CostCentre
	if err := attributevalue.UnmarshalMap(result.Item, &cc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cost centre: %w", err)
	}

	return &cc, nil
}
