package repository

import (
	"context"

	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultActionItemsTableName = "action_items"

// ActionItemDynamoRepository persists action-item records with the same
// raw-record conventions as CustomerDynamoRepository.
//
// Table requirements:
//   - PK: id (string)

type ActionItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActionItemRepository = (*ActionItemDynamoRepository)(nil)

func NewActionItemDynamoRepository(ddb *dynamodb.Client) *ActionItemDynamoRepository {
	return &ActionItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTION_ITEMS_TABLE", defaultActionItemsTableName),
	}
}

func (r *ActionItemDynamoRepository) List(ctx context.Context) ([]map[string]any, error) {
	return scanRaw(ctx, r.ddb, r.tableName)
}

func (r *ActionItemDynamoRepository) GetByID(ctx context.Context, id string) (map[string]any, error) {
	return getRawByID(ctx, r.ddb, r.tableName, id)
}

func (r *ActionItemDynamoRepository) Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return createRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *ActionItemDynamoRepository) Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return updateRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *ActionItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteRaw(ctx, r.ddb, r.tableName, id)
}
