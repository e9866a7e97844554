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

const roleStatusGSI = "role_id-status-index"

// OpenNotification creates the pending-action record for a freshly created
// entity. The table is keyed by entity_id, so the one-open-record-per-entity
// invariant is structural: a second open attempt collides.
func (s *Store) OpenNotification(ctx context.Context, n *models.PendingNotification) error {
	now := time.Now()
	n.Status = models.NotificationPending
	n.CreatedAt = now
	n.UpdatedAt = now

	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Notifications),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(entity_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.Duplicate("notification for entity %s already exists", n.EntityID)
		}
		return fmt.Errorf("failed to open notification: %w", err)
	}

	return nil
}

// RetargetNotification points the open record at a new level/role/path. The
// record is updated in place, never duplicated.
func (s *Store) RetargetNotification(ctx context.Context, entityID string, levelID, roleID, pathID int) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Notifications),
		Key: map[string]types.AttributeValue{
			"entity_id": &types.AttributeValueMemberS{Value: entityID},
		},
		UpdateExpression:    aws.String("SET level_id = :level, role_id = :role, path_id = :path, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":level":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", levelID)},
			":role":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", roleID)},
			":path":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", pathID)},
			":pending": &types.AttributeValueMemberS{Value: string(models.NotificationPending)},
			":now":     nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.NotFound("notification", entityID)
		}
		return fmt.Errorf("failed to retarget notification: %w", err)
	}

	return nil
}

// ListOpenForRole returns all pending records addressed to a role.
func (s *Store) ListOpenForRole(ctx context.Context, roleID int) ([]models.PendingNotification, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Notifications),
		IndexName:              aws.String(roleStatusGSI),
		KeyConditionExpression: aws.String("role_id = :role AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", roleID)},
			":pending": &types.AttributeValueMemberS{Value: string(models.NotificationPending)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for role %d: %w", roleID, err)
	}

	var notifications []models.PendingNotification
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}

	return notifications, nil
}

// CountOpenForRole recomputes the authoritative pending count for a role from
// stored rows. The emitted signal stream is only a hint.
func (s *Store) CountOpenForRole(ctx context.Context, roleID int) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Notifications),
		IndexName:              aws.String(roleStatusGSI),
		KeyConditionExpression: aws.String("role_id = :role AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", roleID)},
			":pending": &types.AttributeValueMemberS{Value: string(models.NotificationPending)},
		},
		Select: types.SelectCount,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications for role %d: %w", roleID, err)
	}

	return int(result.Count), nil
}

const staleNotificationGSI = "status-updated_at-index"

// ListStale returns pending records untouched for longer than maxAge. The
// reminder sweep re-signals the addressed roles.
func (s *Store) ListStale(ctx context.Context, maxAge time.Duration) ([]models.PendingNotification, error) {
	cutoff := time.Now().Add(-maxAge)
	cutoffStr, err := cutoff.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Notifications),
		IndexName:              aws.String(staleNotificationGSI),
		KeyConditionExpression: aws.String("#status = :pending AND updated_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.NotificationPending)},
			":cutoff":  &types.AttributeValueMemberS{Value: string(cutoffStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale notifications: %w", err)
	}

	var notifications []models.PendingNotification
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale notifications: %w", err)
	}

	return notifications, nil
}
