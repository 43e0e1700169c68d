package repository

import (
	"context"
	"strconv"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type movementItem struct {
	ID              string `dynamodbav:"id"`
	CardID          string `dynamodbav:"card_id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	Type            string `dynamodbav:"type"`
	Points          int    `dynamodbav:"points"`
	Description     string `dynamodbav:"description,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// LedgerDynamoRepository owns the card points counter.
//
// Table requirements:
//   - movements: PK id, GSI card_id-index
//   - cards:     PK id (counter lives here)
//
// Every write pairs a movement Put with the counter Update inside one
// TransactWriteItems call; a movement without its counter change (or the
// reverse) is never observable. TransactWriteItems returns no attributes, so
// the updated card is re-read with a consistent GetItem after commit.

type LedgerDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	cardsTableName    string
	vouchersTableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("MOVEMENTS_TABLE", defaultMovementsTableName),
		cardsTableName:    getenvDefault("CARDS_TABLE", defaultCardsTableName),
		vouchersTableName: getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
	}
}

func (r *LedgerDynamoRepository) Credit(ctx context.Context, card entities.Card, mov entities.Movement) (entities.Movement, entities.Card, error) {
	movAV, err := attributevalue.MarshalMap(toMovementItem(mov))
	if err != nil {
		return entities.Movement{}, entities.Card{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                movAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.cardsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: card.ID},
					},
					UpdateExpression:    aws.String("SET last_points_at = :now ADD points :n"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":n":   &types.AttributeValueMemberN{Value: strconv.Itoa(mov.Points)},
						":now": &types.AttributeValueMemberS{Value: formatTime(mov.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailed(err) {
			return entities.Movement{}, entities.Card{}, nil
		}
		return entities.Movement{}, entities.Card{}, err
	}

	updated, err := r.getCard(ctx, card.ID)
	if err != nil {
		return entities.Movement{}, entities.Card{}, err
	}
	return mov, updated, nil
}

func (r *LedgerDynamoRepository) Redeem(ctx context.Context, card entities.Card, mov entities.Movement, voucher entities.Voucher, threshold int) (entities.Voucher, entities.Card, error) {
	movAV, err := attributevalue.MarshalMap(toMovementItem(mov))
	if err != nil {
		return entities.Voucher{}, entities.Card{}, err
	}
	voucherAV, err := attributevalue.MarshalMap(toVoucherItem(voucher))
	if err != nil {
		return entities.Voucher{}, entities.Card{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.vouchersTableName),
					Item:                voucherAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                movAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.cardsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: card.ID},
					},
					// The condition is what guarantees at most one of two
					// concurrent redemptions past the same balance commits.
					UpdateExpression:    aws.String("SET points = points - :t"),
					ConditionExpression: aws.String("attribute_exists(id) AND points >= :t"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":t": &types.AttributeValueMemberN{Value: strconv.Itoa(threshold)},
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailed(err) {
			return entities.Voucher{}, entities.Card{}, nil
		}
		return entities.Voucher{}, entities.Card{}, err
	}

	updated, err := r.getCard(ctx, card.ID)
	if err != nil {
		return entities.Voucher{}, entities.Card{}, err
	}
	return voucher, updated, nil
}

func (r *LedgerDynamoRepository) ListByCardID(ctx context.Context, cardID string) ([]entities.Movement, error) {
	movements := make([]entities.Movement, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cardIDIndex),
		KeyConditionExpression: aws.String("card_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cardID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it movementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			movements = append(movements, fromMovementItem(it))
		}
	}
	return movements, nil
}

func (r *LedgerDynamoRepository) SumByCardID(ctx context.Context, cardID string) (int, error) {
	movements, err := r.ListByCardID(ctx, cardID)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, m := range movements {
		sum += m.Points
	}
	return sum, nil
}

func (r *LedgerDynamoRepository) SetCardPoints(ctx context.Context, cardID string, points int) (entities.Card, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.cardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cardID},
		},
		UpdateExpression:    aws.String("SET points = :p"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberN{Value: strconv.Itoa(points)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Card{}, err
	}
	var it cardItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Card{}, err
	}
	return fromCardItem(it), nil
}

func (r *LedgerDynamoRepository) getCard(ctx context.Context, cardID string) (entities.Card, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.cardsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cardID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Card{}, err
	}
	if len(out.Item) == 0 {
		return entities.Card{}, nil
	}
	var it cardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Card{}, err
	}
	return fromCardItem(it), nil
}

func toMovementItem(m entities.Movement) movementItem {
	return movementItem{
		ID:              m.ID,
		CardID:          m.CardID,
		EstablishmentID: m.EstablishmentID,
		Type:            string(m.Type),
		Points:          m.Points,
		Description:     m.Description,
		CreatedAt:       formatTime(m.CreatedAt),
	}
}

func fromMovementItem(it movementItem) entities.Movement {
	return entities.Movement{
		ID:              it.ID,
		CardID:          it.CardID,
		EstablishmentID: it.EstablishmentID,
		Type:            entities.MovementType(it.Type),
		Points:          it.Points,
		Description:     it.Description,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
