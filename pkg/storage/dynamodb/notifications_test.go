package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage/dynamodb/mocks"
)

func TestOpenNotification(t *testing.T) {
	t.Run("Stamps Pending Status And Timestamps", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(entity_id)"
		})).Return(&awsdynamodb.PutItemOutput{}, nil)

		n := &models.PendingNotification{EntityID: "e1", RoleID: 10, LevelID: 1}
		err := store.OpenNotification(context.Background(), n)

		assert.NoError(t, err)
		assert.Equal(t, models.NotificationPending, n.Status)
		assert.False(t, n.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Second Open For Same Entity Collides", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.OpenNotification(context.Background(), &models.PendingNotification{EntityID: "e1"})

		var dupErr *apperrors.DuplicateError
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestRetargetNotification(t *testing.T) {
	t.Run("Updates In Place While Pending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :pending"
		})).Return(&awsdynamodb.UpdateItemOutput{}, nil)

		err := store.RetargetNotification(context.Background(), "e1", 2, 20, 1)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Closed Record Is Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.RetargetNotification(context.Background(), "e1", 2, 20, 1)

		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestListOpenForRole(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	stored := models.PendingNotification{EntityID: "e1", RoleID: 10, LevelID: 1, Status: models.NotificationPending}
	item, _ := attributevalue.MarshalMap(stored)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.QueryInput) bool {
		return *input.IndexName == roleStatusGSI
	})).Return(&awsdynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil)

	notifications, err := store.ListOpenForRole(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, "e1", notifications[0].EntityID)
}

func TestCountOpenForRole(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.QueryInput) bool {
		return input.Select == types.SelectCount
	})).Return(&awsdynamodb.QueryOutput{Count: 7}, nil)

	count, err := store.CountOpenForRole(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}
