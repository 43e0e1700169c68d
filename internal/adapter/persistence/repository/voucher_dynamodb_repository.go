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

type voucherItem struct {
	ID              string `dynamodbav:"id"`
	CardID          string `dynamodbav:"card_id"`
	ClientID        string `dynamodbav:"client_id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	UserID          string `dynamodbav:"user_id"`
	Message         string `dynamodbav:"message"`
	Phone           string `dynamodbav:"phone"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// VoucherDynamoRepository reads issued vouchers. Writes happen inside the
// redemption transaction in LedgerDynamoRepository.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: card_id-index, establishment_id-index

type VoucherDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVoucherRepository = (*VoucherDynamoRepository)(nil)

func NewVoucherDynamoRepository(ddb *dynamodb.Client) *VoucherDynamoRepository {
	return &VoucherDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
	}
}

func (r *VoucherDynamoRepository) ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.Voucher, error) {
	return r.list(ctx, establishmentIDIndex, "establishment_id", establishmentID)
}

func (r *VoucherDynamoRepository) ListByCardID(ctx context.Context, cardID string) ([]entities.Voucher, error) {
	return r.list(ctx, cardIDIndex, "card_id", cardID)
}

func (r *VoucherDynamoRepository) list(ctx context.Context, index, keyAttr, keyValue string) ([]entities.Voucher, error) {
	vouchers := make([]entities.Voucher, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it voucherItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vouchers = append(vouchers, fromVoucherItem(it))
		}
	}
	return vouchers, nil
}

func toVoucherItem(v entities.Voucher) voucherItem {
	return voucherItem{
		ID:              v.ID,
		CardID:          v.CardID,
		ClientID:        v.ClientID,
		EstablishmentID: v.EstablishmentID,
		UserID:          v.UserID,
		Message:         v.Message,
		Phone:           v.Phone,
		Status:          string(v.Status),
		CreatedAt:       formatTime(v.CreatedAt),
	}
}

func fromVoucherItem(it voucherItem) entities.Voucher {
	return entities.Voucher{
		ID:              it.ID,
		CardID:          it.CardID,
		ClientID:        it.ClientID,
		EstablishmentID: it.EstablishmentID,
		UserID:          it.UserID,
		Message:         it.Message,
		Phone:           it.Phone,
		Status:          entities.VoucherStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
