package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Declared as an interface so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// TableNames holds the physical table name for each collection.
type TableNames struct {
	Entities      map[models.EntityType]string
	Routing       string
	Notifications string
	Signatures    string
	Ledger        string
	Invoices      string
	Sequences     string
	CostCentres   string
	WSConnections string
}

// TableNamesFromPrefix derives the conventional table names from a single
// deployment prefix, e.g. "erp-prod" -> "erp-prod-clients".
func TableNamesFromPrefix(prefix string) TableNames {
	entities := make(map[models.EntityType]string)
	for _, t := range []models.EntityType{
		models.EntityTypeClient,
		models.EntityTypeSubClient,
		models.EntityTypeBankAccount,
		models.EntityTypeLoan,
		models.EntityTypeGeneralLedger,
		models.EntityTypeClientPO,
		models.EntityTypeAccountGroup,
	} {
		entities[t] = prefix + "-" + string(t)
	}
	return TableNames{
		Entities:      entities,
		Routing:       prefix + "-routing",
		Notifications: prefix + "-notifications",
		Signatures:    prefix + "-signatures",
		Ledger:        prefix + "-accounts-ledger",
		Invoices:      prefix + "-invoices",
		Sequences:     prefix + "-sequences",
		CostCentres:   prefix + "-cost-centres",
		WSConnections: prefix + "-ws-connections",
	}
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables TableNames
}

// New creates a new Store.
func New(client DynamoDBAPI, tables TableNames) *Store {
	return &Store{Client: client, Tables: tables}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) entityTable(t models.EntityType) string {
	return s.Tables.Entities[t]
}
