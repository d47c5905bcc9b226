package repository

import (
	"context"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	ID           string `dynamodbav:"id"`
	EngagementID string `dynamodbav:"engagement_id"`
	Filename     string `dynamodbav:"filename"`
	ContentType  string `dynamodbav:"content_type"`
	FileType     string `dynamodbav:"file_type"`
	Path         string `dynamodbav:"path"`
	Size         int64  `dynamodbav:"size"`
	UploadedAt   string `dynamodbav:"uploaded_at"`
}

// DocumentDynamoRepository persists uploaded-document metadata. This table is
// native to the service, so items are typed rather than raw.
//
// Table requirements:
//   - PK: id (string)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, doc entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
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

func (r *DocumentDynamoRepository) ListByEngagement(ctx context.Context, engagementID string) ([]entities.Document, error) {
	docs := make([]entities.Document, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#eid = :eid"),
			ExpressionAttributeNames: map[string]string{
				"#eid": "engagement_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: engagementID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it documentItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			docs = append(docs, fromDocumentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return docs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:           d.ID,
		EngagementID: d.EngagementID,
		Filename:     d.Filename,
		ContentType:  d.ContentType,
		FileType:     string(d.FileType),
		Path:         d.Path,
		Size:         d.Size,
		UploadedAt:   d.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.Document{
		ID:           it.ID,
		EngagementID: it.EngagementID,
		Filename:     it.Filename,
		ContentType:  it.ContentType,
		FileType:     entities.DocumentFileType(it.FileType),
		Path:         it.Path,
		Size:         it.Size,
		UploadedAt:   uploadedAt,
	}
}
