package repository

import (
	"context"
	"errors"

	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

// CustomerDynamoRepository persists customer records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The migration job that imported the legacy MongoDB collection set the PK
// from the Mongo object id but left the rest of each item untouched, so reads
// surface raw shape-variable records. Only writes issued by this service use
// the canonical attribute names.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]map[string]any, error) {
	return scanRaw(ctx, r.ddb, r.tableName)
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (map[string]any, error) {
	return getRawByID(ctx, r.ddb, r.tableName, id)
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return createRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	return updateRaw(ctx, r.ddb, r.tableName, id, payload)
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteRaw(ctx, r.ddb, r.tableName, id)
}

// scanRaw pages through the whole table. Collections here are dashboard
// sized; filtering happens in the query engine after normalization.
func scanRaw(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]any, error) {
	raws := make([]map[string]any, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			raw, err := rawFromItem(item)
			if err != nil {
				return nil, err
			}
			raws = append(raws, raw)
		}
		if out.LastEvaluatedKey == nil {
			return raws, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func getRawByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (map[string]any, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return rawFromItem(out.Item)
}

func createRaw(ctx context.Context, ddb *dynamodb.Client, tableName, id string, payload map[string]any) (map[string]any, error) {
	item := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		item[k] = v
	}
	item["id"] = id

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}

	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func updateRaw(ctx context.Context, ddb *dynamodb.Client, tableName, id string, payload map[string]any) (map[string]any, error) {
	if len(payload) == 0 {
		return getRawByID(ctx, ddb, tableName, id)
	}

	expr, values, names, err := buildSetExpression(payload)
	if err != nil {
		return nil, err
	}

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return rawFromItem(out.Attributes)
}

func deleteRaw(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}
