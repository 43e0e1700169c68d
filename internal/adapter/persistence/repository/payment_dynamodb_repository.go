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

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	PaymentDate     string `dynamodbav:"payment_date"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists subscription payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: establishment_id-index
//
// Confirm writes the payment row and the new subscription_valid_until on the
// establishment in one transaction so the access window and its proof never
// diverge.

type PaymentDynamoRepository struct {
	ddb                     *dynamodb.Client
	tableName               string
	establishmentsTableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:                     ddb,
		tableName:               getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		establishmentsTableName: getenvDefault("ESTABLISHMENTS_TABLE", defaultEstablishmentsTableName),
	}
}

func (r *PaymentDynamoRepository) Confirm(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.establishmentsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.EstablishmentID},
					},
					UpdateExpression:    aws.String("SET subscription_valid_until = :valid"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":valid": &types.AttributeValueMemberS{Value: formatTime(p.ValidUntil())},
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailed(err) {
			return entities.SubscriptionPayment{}, nil
		}
		return entities.SubscriptionPayment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.SubscriptionPayment, error) {
	payments := make([]entities.SubscriptionPayment, 0)
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
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}
	}
	return payments, nil
}

func toPaymentItem(p entities.SubscriptionPayment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		EstablishmentID: p.EstablishmentID,
		PaymentDate:     formatTime(p.PaymentDate),
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.SubscriptionPayment {
	return entities.SubscriptionPayment{
		ID:              it.ID,
		EstablishmentID: it.EstablishmentID,
		PaymentDate:     parseTime(it.PaymentDate),
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
