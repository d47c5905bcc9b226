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

const defaultUsersTableName = "users"

type userItem struct {
	AzureID   string   `dynamodbav:"azure_id"`
	Username  string   `dynamodbav:"username"`
	Email     string   `dynamodbav:"email"`
	FullName  string   `dynamodbav:"full_name"`
	Roles     []string `dynamodbav:"roles"`
	LastLogin string   `dynamodbav:"last_login"`
}

// UserDynamoRepository persists dashboard users.
//
// Table requirements:
//   - PK: azure_id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByAzureID(ctx context.Context, azureID string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"azure_id": &types.AttributeValueMemberS{Value: azureID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, user entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(user))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		AzureID:   u.AzureID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     u.Roles,
		LastLogin: u.LastLogin.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	lastLogin, _ := time.Parse(time.RFC3339Nano, it.LastLogin)
	return entities.User{
		AzureID:   it.AzureID,
		Username:  it.Username,
		Email:     it.Email,
		FullName:  it.FullName,
		Roles:     it.Roles,
		LastLogin: lastLogin,
	}
}
