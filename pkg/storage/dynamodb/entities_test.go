package dynamodb

import (
	"context"
	"errors"
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

func testStore(client DynamoDBAPI) *Store {
	return New(client, TableNamesFromPrefix("erp-test"))
}

func TestCreateEntity(t *testing.T) {
	client := &models.Client{
		ApprovalState: models.ApprovalState{ID: "c1", Status: models.StatusVerification, LevelID: 1},
		Code:          "SC001",
		Name:          "Acme",
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.PutItemInput) bool {
			return *input.TableName == "erp-test-clients" && *input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&awsdynamodb.PutItemOutput{}, nil)

		err := store.CreateEntity(context.Background(), client)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Collision Becomes Duplicate", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CreateEntity(context.Background(), client)

		var dupErr *apperrors.DuplicateError
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestGetEntity(t *testing.T) {
	t.Run("Unmarshals Into Concrete Type", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		stored := &models.Loan{
			ApprovalState: models.ApprovalState{ID: "l1", Status: models.StatusVerification, LevelID: 1},
			Name:          "Term Loan",
			Mode:          models.LoanModeExisting,
			LoanAmount:    500,
		}
		item, _ := attributevalue.MarshalMap(stored)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: item}, nil)

		entity, err := store.GetEntity(context.Background(), models.EntityTypeLoan, "l1")

		assert.NoError(t, err)
		loan, ok := entity.(*models.Loan)
		assert.True(t, ok)
		assert.Equal(t, models.LoanModeExisting, loan.Mode)
		assert.Equal(t, int64(500), loan.LoanAmount)
	})

	t.Run("Missing Item Is Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{}, nil)

		_, err := store.GetEntity(context.Background(), models.EntityTypeLoan, "missing")

		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestGetForVerification(t *testing.T) {
	t.Run("Terminal Entity Is Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		approved := &models.Client{
			ApprovalState: models.ApprovalState{ID: "c1", Status: models.StatusApproved, LevelID: 2},
			Name:          "Acme",
		}
		item, _ := attributevalue.MarshalMap(approved)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: item}, nil)

		_, err := store.GetForVerification(context.Background(), models.EntityTypeClient, "c1")

		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("Pending Entity Comes Back", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		pending := &models.Client{
			ApprovalState: models.ApprovalState{ID: "c1", Status: models.StatusVerification, LevelID: 1},
			Name:          "Acme",
		}
		item, _ := attributevalue.MarshalMap(pending)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: item}, nil)

		entity, err := store.GetForVerification(context.Background(), models.EntityTypeClient, "c1")

		assert.NoError(t, err)
		assert.Equal(t, 1, entity.Approval().LevelID)
	})
}

func TestAdvanceLevel(t *testing.T) {
	t.Run("Pins Expected Status And Level", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :verification AND level_id = :from"
		})).Return(&awsdynamodb.UpdateItemOutput{}, nil)

		err := store.AdvanceLevel(context.Background(), models.EntityTypeClient, "c1", 1)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failed Condition Is Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.AdvanceLevel(context.Background(), models.EntityTypeClient, "c1", 1)

		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestCommitTerminal(t *testing.T) {
	t.Run("Updates Entity And Notification Together", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			entity := input.TransactItems[0].Update
			notification := input.TransactItems[1].Update
			return *entity.TableName == "erp-test-clients" && *notification.TableName == "erp-test-notifications"
		})).Return(&awsdynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CommitTerminal(context.Background(), models.EntityTypeClient, "c1", 2, models.StatusApproved)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Cancelled Transaction Is Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		code := "ConditionalCheckFailed"
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: &code}},
		})

		err := store.CommitTerminal(context.Background(), models.EntityTypeClient, "c1", 2, models.StatusApproved)

		var nfErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("Other Failures Propagate", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := store.CommitTerminal(context.Background(), models.EntityTypeClient, "c1", 2, models.StatusRejected)

		assert.Error(t, err)
		var nfErr *apperrors.NotFoundError
		assert.False(t, errors.As(err, &nfErr))
	})
}

func TestSetPOStatus(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
		return *input.TableName == "erp-test-client-pos"
	})).Return(&awsdynamodb.UpdateItemOutput{}, nil)

	err := store.SetPOStatus(context.Background(), "po1", models.POStatusApproved)

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}
