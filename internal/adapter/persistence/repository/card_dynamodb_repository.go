package repository

import (
	"context"
	"log"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type cardItem struct {
	ID              string `dynamodbav:"id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	ClientID        string `dynamodbav:"client_id"`
	ClientName      string `dynamodbav:"client_name"`
	Phone           string `dynamodbav:"phone"`
	Code            string `dynamodbav:"code"`
	Points          int    `dynamodbav:"points"`
	CreatedAt       string `dynamodbav:"created_at"`
	LastPointsAt    string `dynamodbav:"last_points_at,omitempty"`
}

type clientItem struct {
	ID              string `dynamodbav:"id"`
	EstablishmentID string `dynamodbav:"establishment_id"`
	Name            string `dynamodbav:"name"`
	Phone           string `dynamodbav:"phone"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// CardDynamoRepository persists Client + Card pairs in DynamoDB.
//
// Table requirements:
//   - cards:   PK id, GSI establishment_id-index, GSI client_id-index
//   - clients: PK id, GSI establishment_id-index
//
// Phone lookups filter a query on establishment_id-index; the normalized phone
// is denormalized onto the card item exactly for this.

type CardDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	clientsTableName   string
	movementsTableName string
	vouchersTableName  string
}

var _ interfaces.ICardRepository = (*CardDynamoRepository)(nil)

func NewCardDynamoRepository(ddb *dynamodb.Client) *CardDynamoRepository {
	return &CardDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("CARDS_TABLE", defaultCardsTableName),
		clientsTableName:   getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		movementsTableName: getenvDefault("MOVEMENTS_TABLE", defaultMovementsTableName),
		vouchersTableName:  getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
	}
}

// CreateWithClient writes the client, the card, a phone guard marker and the
// optional opening credit in one transaction. The guard Put conditions on
// attribute_not_exists for the (establishment, phone) key, so two concurrent
// registrations of the same phone cannot both commit; the loser gets a
// zero-value card back and re-resolves by phone.
func (r *CardDynamoRepository) CreateWithClient(ctx context.Context, client entities.Client, card entities.Card, initial *entities.Movement) (entities.Card, error) {
	clientAV, err := attributevalue.MarshalMap(toClientItem(client))
	if err != nil {
		return entities.Card{}, err
	}
	cardAV, err := attributevalue.MarshalMap(toCardItem(card))
	if err != nil {
		return entities.Card{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.clientsTableName),
				Item:                clientAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.clientsTableName),
				Item: map[string]types.AttributeValue{
					"id":      &types.AttributeValueMemberS{Value: phoneGuardID(card.EstablishmentID, card.Phone)},
					"card_id": &types.AttributeValueMemberS{Value: card.ID},
				},
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                cardAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}
	if initial != nil {
		movAV, err := attributevalue.MarshalMap(toMovementItem(*initial))
		if err != nil {
			return entities.Card{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.movementsTableName),
				Item:                movAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactConditionFailed(err) {
			log.Printf("[card][repository] create lost phone guard establishment_id=%s", card.EstablishmentID)
			return entities.Card{}, nil
		}
		return entities.Card{}, err
	}
	return card, nil
}

func (r *CardDynamoRepository) GetByID(ctx context.Context, id string) (entities.Card, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
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

func (r *CardDynamoRepository) GetByEstablishmentAndPhone(ctx context.Context, establishmentID, phone string) (entities.Card, error) {
	return r.queryOneByFilter(ctx, establishmentID, "phone", phone)
}

func (r *CardDynamoRepository) GetByEstablishmentAndCode(ctx context.Context, establishmentID, code string) (entities.Card, error) {
	return r.queryOneByFilter(ctx, establishmentID, "code", code)
}

func (r *CardDynamoRepository) queryOneByFilter(ctx context.Context, establishmentID, attr, value string) (entities.Card, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(establishmentIDIndex),
		KeyConditionExpression: aws.String("establishment_id = :eid"),
		FilterExpression:       aws.String("#attr = :v"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: establishmentID},
			":v":   &types.AttributeValueMemberS{Value: value},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return entities.Card{}, err
		}
		if len(page.Items) == 0 {
			continue
		}
		var it cardItem
		if err := attributevalue.UnmarshalMap(page.Items[0], &it); err != nil {
			return entities.Card{}, err
		}
		return fromCardItem(it), nil
	}
	return entities.Card{}, nil
}

func (r *CardDynamoRepository) ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.Card, error) {
	cards := make([]entities.Card, 0)
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
			var it cardItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			cards = append(cards, fromCardItem(it))
		}
	}
	return cards, nil
}

// DeleteCascade removes the card's movements and vouchers, the card, and the
// owning client when this card was its last one.
func (r *CardDynamoRepository) DeleteCascade(ctx context.Context, card entities.Card) error {
	var items []types.TransactWriteItem

	movementIDs, err := r.collectByCardID(ctx, r.movementsTableName, card.ID)
	if err != nil {
		return err
	}
	for _, id := range movementIDs {
		items = append(items, deleteTransactItem(r.movementsTableName, id))
	}

	voucherIDs, err := r.collectByCardID(ctx, r.vouchersTableName, card.ID)
	if err != nil {
		return err
	}
	for _, id := range voucherIDs {
		items = append(items, deleteTransactItem(r.vouchersTableName, id))
	}

	items = append(items, deleteTransactItem(r.tableName, card.ID))
	if card.Phone != "" {
		items = append(items, deleteTransactItem(r.clientsTableName, phoneGuardID(card.EstablishmentID, card.Phone)))
	}

	if card.ClientID != "" {
		last, err := r.isLastCardOfClient(ctx, card)
		if err != nil {
			return err
		}
		if last {
			items = append(items, deleteTransactItem(r.clientsTableName, card.ClientID))
		}
	}

	log.Printf("[card][repository] cascade delete card_id=%s records=%d", card.ID, len(items))
	return transactDeleteAll(ctx, r.ddb, items)
}

func (r *CardDynamoRepository) isLastCardOfClient(ctx context.Context, card entities.Card) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: card.ClientID},
		},
		ProjectionExpression: aws.String("id"),
	})
	if err != nil {
		return false, err
	}
	for _, raw := range out.Items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return false, err
		}
		if it.ID != card.ID {
			return false, nil
		}
	}
	return true, nil
}

func (r *CardDynamoRepository) collectByCardID(ctx context.Context, table, cardID string) ([]string, error) {
	var ids []string
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(cardIDIndex),
		KeyConditionExpression: aws.String("card_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cardID},
		},
		ProjectionExpression: aws.String("id"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

func toCardItem(c entities.Card) cardItem {
	return cardItem{
		ID:              c.ID,
		EstablishmentID: c.EstablishmentID,
		ClientID:        c.ClientID,
		ClientName:      c.ClientName,
		Phone:           c.Phone,
		Code:            c.Code,
		Points:          c.Points,
		CreatedAt:       formatTime(c.CreatedAt),
		LastPointsAt:    formatTime(c.LastPointsAt),
	}
}

func fromCardItem(it cardItem) entities.Card {
	return entities.Card{
		ID:              it.ID,
		EstablishmentID: it.EstablishmentID,
		ClientID:        it.ClientID,
		ClientName:      it.ClientName,
		Phone:           it.Phone,
		Code:            it.Code,
		Points:          it.Points,
		CreatedAt:       parseTime(it.CreatedAt),
		LastPointsAt:    parseTime(it.LastPointsAt),
	}
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:              c.ID,
		EstablishmentID: c.EstablishmentID,
		Name:            c.Name,
		Phone:           c.Phone,
		CreatedAt:       formatTime(c.CreatedAt),
	}
}
