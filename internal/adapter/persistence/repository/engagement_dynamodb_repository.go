package repository

import (
	"context"

	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEngagementsTableName = "engagements"

// EngagementDynamoRepository persists engagement records with the same
// raw-record conventions as CustomerDynamoRepository.
//
// Table requirements:
//   - PK: id (string)

type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func (r *EngagementDynamoRepository) List(ctx context.Context) ([]map[string]any, error) {
	return scanRaw(ctx, r.ddb, r.tableName)
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (map[string]any, error) {
	return getRawByID(ctx, r.ddb, r.tableName, id)
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return createRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *EngagementDynamoRepository) Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return updateRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *EngagementDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteRaw(ctx, r.ddb, r.tableName, id)
}

// AppendContractDocument attaches an uploaded document path to the msa or sow
// document list. Legacy items may lack the contract attribute entirely or
// carry it in a non-map shape, so this is a read-modify-write rather than a
// nested-path UpdateItem, which would fail on a missing parent.
func (r *EngagementDynamoRepository) AppendContractDocument(ctx context.Context, id, fileType, reference string) (map[string]any, error) {
	raw, err := getRawByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	contract, _ := raw[fileType].(map[string]any)
	if contract == nil {
		contract = make(map[string]any)
	}
	docs, _ := contract["documents"].([]any)
	contract["documents"] = append(docs, reference)
	raw[fileType] = contract

	av, err := attributevalue.MarshalMap(raw)
	if err != nil {
		return nil, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}
