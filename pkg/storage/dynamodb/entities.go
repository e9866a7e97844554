package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
)

// CreateEntity persists a new entity record. The conditional put prevents a
// code or id collision from silently overwriting an existing record.
func (s *Store) CreateEntity(ctx context.Context, e models.Approvable) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", e.EntityType(), err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.entityTable(e.EntityType())),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.Duplicate("%s %s already exists", e.EntityType(), e.EntityID())
		}
		return fmt.Errorf("failed to create %s in DynamoDB: %w", e.EntityType(), err)
	}

	return nil
}

// GetEntity retrieves an entity regardless of its approval status.
func (s *Store) GetEntity(ctx context.Context, t models.EntityType, id string) (models.Approvable, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.entityTable(t)),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from DynamoDB: %w", t, err)
	}
	if result.Item == nil {
		return nil, apperrors.NotFound(string(t), id)
	}

	entity, ok := models.NewApprovable(t)
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", t)
	}
	if err := attributevalue.UnmarshalMap(result.Item, entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", t, err)
	}

	return entity, nil
}

// GetForVerification retrieves an entity only while it is still in the
// Verification state. Terminal entities surface as not found, which is what
// makes retried terminal transitions fail instead of double-running.
func (s *Store) GetForVerification(ctx context.Context, t models.EntityType, id string) (models.Approvable, error) {
	entity, err := s.GetEntity(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if entity.Approval().Status != models.StatusVerification {
		return nil, apperrors.NotFound(string(t), id)
	}
	return entity, nil
}

// ListVerification retrieves the given entities that are still in
// Verification at one of the given levels, preserving the order of ids.
func (s *Store) ListVerification(ctx context.Context, t models.EntityType, ids []string, levels []int) ([]models.Approvable, error) {
	allowed := make(map[int]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}

	entities := make([]models.Approvable, 0, len(ids))
	for _, id := range ids {
		entity, err := s.GetForVerification(ctx, t, id)
		if err != nil {
			var notFound *apperrors.NotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return nil, err
		}
		if len(levels) == 0 || allowed[entity.Approval().LevelID] {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}

// AdvanceLevel moves an entity up one approval level. The condition pins the
// expected (status, level) pre-state so a racing approver loses cleanly.
func (s *Store) AdvanceLevel(ctx context.Context, t models.EntityType, id string, fromLevel int) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.entityTable(t)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET level_id = :next, updated_at = :now"),
		ConditionExpression: aws.String("#status = :verification AND level_id = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next":         &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromLevel+1)},
			":from":         &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromLevel)},
			":verification": &types.AttributeValueMemberS{Value: string(models.StatusVerification)},
			":now":          nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.NotFound(string(t), id)
		}
		return fmt.Errorf("failed to advance %s level: %w", t, err)
	}

	return nil
}

// CommitTerminal atomically moves an entity from Verification at fromLevel to
// a terminal status and closes its pending notification in the same write.
// Either both records change or neither does; a concurrent writer that
// already processed the entity cancels the whole transaction.
func (s *Store) CommitTerminal(ctx context.Context, t models.EntityType, id string, fromLevel int, status models.ApprovalStatus) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	final := models.NotificationApproved
	if status == models.StatusRejected {
		final = models.NotificationRejected
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: move the entity to its terminal status.
				Update: &types.Update{
					TableName: aws.String(s.entityTable(t)),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET #status = :terminal, updated_at = :now"),
					ConditionExpression: aws.String("#status = :verification AND level_id = :from"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":terminal":     &types.AttributeValueMemberS{Value: string(status)},
						":verification": &types.AttributeValueMemberS{Value: string(models.StatusVerification)},
						":from":         &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", fromLevel)},
						":now":          nowAV,
					},
				},
			},
			{
				// Operation 2: close the single open pending notification.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Notifications),
					Key: map[string]types.AttributeValue{
						"entity_id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET #status = :final, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":final":   &types.AttributeValueMemberS{Value: string(final)},
						":pending": &types.AttributeValueMemberS{Value: string(models.NotificationPending)},
						":now":     nowAV,
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return apperrors.NotFound(string(t), id)
				}
			}
		}
		return fmt.Errorf("failed to commit terminal status for %s %s: %w", t, id, err)
	}

	return nil
}

// SetPOStatus mirrors a client PO's workflow position into its user-facing
// status field.
func (s *Store) SetPOStatus(ctx context.Context, id string, status models.POStatus) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.entityTable(models.EntityTypeClientPO)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET po_status = :status"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.NotFound(string(models.EntityTypeClientPO), id)
		}
		return fmt.Errorf("failed to set PO status: %w", err)
	}

	return nil
}
