package dynamodb

import (
	"context"
	"errors"
	"testing"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/storage/dynamodb/mocks"
)

func TestNext(t *testing.T) {
	t.Run("Increments And Returns New Value", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
			return *input.UpdateExpression == "ADD seq :one" && input.ReturnValues == types.ReturnValueUpdatedNew
		})).Return(&awsdynamodb.UpdateItemOutput{
			Attributes: map[string]types.AttributeValue{
				"seq": &types.AttributeValueMemberN{Value: "42"},
			},
		}, nil)

		value, err := store.Next(context.Background(), "clients")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Failure Propagates", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := store.Next(context.Background(), "clients")
		assert.Error(t, err)
	})

	t.Run("Missing Counter Attribute Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&awsdynamodb.UpdateItemOutput{}, nil)

		_, err := store.Next(context.Background(), "clients")
		assert.Error(t, err)
	})

	t.Run("Non Numeric Counter Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&awsdynamodb.UpdateItemOutput{
			Attributes: map[string]types.AttributeValue{
				"seq": &types.AttributeValueMemberS{Value: "not-a-number"},
			},
		}, nil)

		_, err := store.Next(context.Background(), "clients")
		assert.Error(t, err)
	})
}
