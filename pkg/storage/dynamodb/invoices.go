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

const invoiceSubClientGSI = "sub_client_id-index"

// CreateInvoice persists one derived invoice. Invoice numbers are the table
// key, so a collision aborts the write rather than silently renumbering.
func (s *Store) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	item, err := attributevalue.MarshalMap(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Invoices),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(invoice_number)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return apperrors.Duplicate("invoice %s already exists", inv.InvoiceNumber)
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// ListInvoicesBySubClient returns the invoices raised for a sub-client.
func (s *Store) ListInvoicesBySubClient(ctx context.Context, subClientID string) ([]models.Invoice, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Invoices),
		IndexName:              aws.String(invoiceSubClientGSI),
		KeyConditionExpression: aws.String("sub_client_id = :sc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sc": &types.AttributeValueMemberS{Value: subClientID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for sub-client %s: %w", subClientID, err)
	}

	var invoices []models.Invoice
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &invoices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invoices: %w", err)
	}

	return invoices, nil
}
