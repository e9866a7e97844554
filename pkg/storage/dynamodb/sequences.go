package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Next atomically increments and returns the counter for a scope. ADD creates
// the attribute at 1 when the item does not exist yet, so the first code in a
// scope gets suffix 1 without a separate initialisation step. Two concurrent
// callers can never observe the same value.
func (s *Store) Next(ctx context.Context, scope string) (int64, error) {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Sequences),
		Key: map[string]types.AttributeValue{
			"scope": &types.AttributeValueMemberS{Value: scope},
		},
		UpdateExpression: aws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence %q: %w", scope, err)
	}

	attr, ok := result.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("sequence %q returned no counter attribute", scope)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %q counter is not numeric", scope)
	}

	value, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sequence %q value: %w", scope, err)
	}

	return value, nil
}
