package repository

import (
	"context"

	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEmailsTableName = "emails"

// EmailDynamoRepository persists captured emails with the same raw-record
// conventions as CustomerDynamoRepository. The table is append-only.
//
// Table requirements:
//   - PK: id (string)

type EmailDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmailRepository = (*EmailDynamoRepository)(nil)

func NewEmailDynamoRepository(ddb *dynamodb.Client) *EmailDynamoRepository {
	return &EmailDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMAILS_TABLE", defaultEmailsTableName),
	}
}

func (r *EmailDynamoRepository) List(ctx context.Context) ([]map[string]any, error) {
	return scanRaw(ctx, r.ddb, r.tableName)
}

func (r *EmailDynamoRepository) GetByID(ctx context.Context, id string) (map[string]any, error) {
	return getRawByID(ctx, r.ddb, r.tableName, id)
}

func (r *EmailDynamoRepository) Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return createRaw(ctx, r.ddb, r.tableName, id, payload)
}
