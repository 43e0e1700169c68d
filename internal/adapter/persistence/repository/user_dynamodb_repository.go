package repository

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID              string `dynamodbav:"id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// UserDynamoRepository reads operator users. The rows are written by the
// tenant creation transaction in EstablishmentDynamoRepository.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: establishment_id-index

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

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
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

func (r *UserDynamoRepository) ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.User, error) {
	users := make([]entities.User, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(establishmentIDIndex),
		KeyConditionExpression: aws.String("establishment_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: establishmentID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:              u.ID,
		EstablishmentID: u.EstablishmentID,
		Name:            u.Name,
		Email:           u.Email,
		CreatedAt:       formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:              it.ID,
		EstablishmentID: it.EstablishmentID,
		Name:            it.Name,
		Email:           it.Email,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
