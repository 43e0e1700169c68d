package repository

import (
	"context"
	"errors"
	"log"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type establishmentItem struct {
	ID                     string `dynamodbav:"id"`
	Name                   string `dynamodbav:"name"`
	Email                  string `dynamodbav:"email"`
	Phone                  string `dynamodbav:"phone"`
	Slug                   string `dynamodbav:"slug"`
	PointsForVoucher       int    `dynamodbav:"points_for_voucher"`
	VoucherMessageTemplate string `dynamodbav:"voucher_message_template,omitempty"`
	LogoKey                string `dynamodbav:"logo_key"`
	SubscriptionValidUntil string `dynamodbav:"subscription_valid_until,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
}

// EstablishmentDynamoRepository persists Establishment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
//
// The repository also owns the tenant cascade, so it knows every table of the
// aggregate. Deletes run child-first and chunked; the establishment row goes
// last so an interrupted cascade can simply be retried.

type EstablishmentDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	usersTableName     string
	clientsTableName   string
	cardsTableName     string
	movementsTableName string
	vouchersTableName  string
	paymentsTableName  string
}

var _ interfaces.IEstablishmentRepository = (*EstablishmentDynamoRepository)(nil)

func NewEstablishmentDynamoRepository(ddb *dynamodb.Client) *EstablishmentDynamoRepository {
	return &EstablishmentDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("ESTABLISHMENTS_TABLE", defaultEstablishmentsTableName),
		usersTableName:     getenvDefault("USERS_TABLE", defaultUsersTableName),
		clientsTableName:   getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		cardsTableName:     getenvDefault("CARDS_TABLE", defaultCardsTableName),
		movementsTableName: getenvDefault("MOVEMENTS_TABLE", defaultMovementsTableName),
		vouchersTableName:  getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
		paymentsTableName:  getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

// Create puts the establishment and its owner user in one TransactWriteItems,
// so a failed owner write can never leave an orphan tenant row behind.
func (r *EstablishmentDynamoRepository) Create(ctx context.Context, e entities.Establishment, owner entities.User) (entities.Establishment, entities.User, error) {
	estAV, err := attributevalue.MarshalMap(toEstablishmentItem(e))
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}
	ownerAV, err := attributevalue.MarshalMap(toUserItem(owner))
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                estAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.usersTableName),
					Item:                ownerAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	})
	if err != nil {
		return entities.Establishment{}, entities.User{}, err
	}
	return e, owner, nil
}

func (r *EstablishmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Establishment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Establishment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Establishment{}, nil
	}

	var it establishmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Establishment{}, err
	}
	return fromEstablishmentItem(it), nil
}

func (r *EstablishmentDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Establishment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(slugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Establishment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Establishment{}, nil
	}

	var it establishmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Establishment{}, err
	}
	return fromEstablishmentItem(it), nil
}

// DeleteCascade fans out over every owned record. Order satisfies the logical
// FK dependencies: movements -> vouchers -> cards -> clients -> payments ->
// users -> establishment.
func (r *EstablishmentDynamoRepository) DeleteCascade(ctx context.Context, establishmentID string) error {
	cardIDs, clientIDs, phones, err := r.collectCards(ctx, establishmentID)
	if err != nil {
		return err
	}

	var items []types.TransactWriteItem
	for _, cardID := range cardIDs {
		movementIDs, err := r.collectByCardID(ctx, r.movementsTableName, cardID)
		if err != nil {
			return err
		}
		for _, id := range movementIDs {
			items = append(items, deleteTransactItem(r.movementsTableName, id))
		}
	}
	for _, cardID := range cardIDs {
		voucherIDs, err := r.collectByCardID(ctx, r.vouchersTableName, cardID)
		if err != nil {
			return err
		}
		for _, id := range voucherIDs {
			items = append(items, deleteTransactItem(r.vouchersTableName, id))
		}
	}
	for _, id := range cardIDs {
		items = append(items, deleteTransactItem(r.cardsTableName, id))
	}
	for _, id := range clientIDs {
		items = append(items, deleteTransactItem(r.clientsTableName, id))
	}
	for _, phone := range phones {
		items = append(items, deleteTransactItem(r.clientsTableName, phoneGuardID(establishmentID, phone)))
	}

	paymentIDs, err := r.collectByEstablishmentID(ctx, r.paymentsTableName, establishmentID)
	if err != nil {
		return err
	}
	for _, id := range paymentIDs {
		items = append(items, deleteTransactItem(r.paymentsTableName, id))
	}

	userIDs, err := r.collectByEstablishmentID(ctx, r.usersTableName, establishmentID)
	if err != nil {
		return err
	}
	for _, id := range userIDs {
		items = append(items, deleteTransactItem(r.usersTableName, id))
	}

	items = append(items, deleteTransactItem(r.tableName, establishmentID))

	log.Printf("[establishment][repository] cascade delete establishment_id=%s records=%d", establishmentID, len(items))
	return transactDeleteAll(ctx, r.ddb, items)
}

func (r *EstablishmentDynamoRepository) collectCards(ctx context.Context, establishmentID string) (cardIDs, clientIDs, phones []string, err error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.cardsTableName),
		IndexName:              aws.String(establishmentIDIndex),
		KeyConditionExpression: aws.String("establishment_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: establishmentID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, raw := range page.Items {
			var it struct {
				ID       string `dynamodbav:"id"`
				ClientID string `dynamodbav:"client_id"`
				Phone    string `dynamodbav:"phone"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, nil, nil, err
			}
			cardIDs = append(cardIDs, it.ID)
			if it.ClientID != "" {
				clientIDs = append(clientIDs, it.ClientID)
			}
			if it.Phone != "" {
				phones = append(phones, it.Phone)
			}
		}
	}
	return cardIDs, clientIDs, phones, nil
}

func (r *EstablishmentDynamoRepository) collectByEstablishmentID(ctx context.Context, table, establishmentID string) ([]string, error) {
	return r.collectIDs(ctx, table, establishmentIDIndex, "establishment_id", establishmentID)
}

func (r *EstablishmentDynamoRepository) collectByCardID(ctx context.Context, table, cardID string) ([]string, error) {
	return r.collectIDs(ctx, table, cardIDIndex, "card_id", cardID)
}

func (r *EstablishmentDynamoRepository) collectIDs(ctx context.Context, table, index, keyAttr, keyValue string) ([]string, error) {
	if table == "" {
		return nil, errors.New("table name not configured")
	}
	var ids []string
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
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

func toEstablishmentItem(e entities.Establishment) establishmentItem {
	return establishmentItem{
		ID:                     e.ID,
		Name:                   e.Name,
		Email:                  e.Email,
		Phone:                  e.Phone,
		Slug:                   e.Slug,
		PointsForVoucher:       e.PointsForVoucher,
		VoucherMessageTemplate: e.VoucherMessageTemplate,
		LogoKey:                e.LogoKey,
		SubscriptionValidUntil: formatTime(e.SubscriptionValidUntil),
		CreatedAt:              formatTime(e.CreatedAt),
	}
}

func fromEstablishmentItem(it establishmentItem) entities.Establishment {
	return entities.Establishment{
		ID:                     it.ID,
		Name:                   it.Name,
		Email:                  it.Email,
		Phone:                  it.Phone,
		Slug:                   it.Slug,
		PointsForVoucher:       it.PointsForVoucher,
		VoucherMessageTemplate: it.VoucherMessageTemplate,
		LogoKey:                it.LogoKey,
		SubscriptionValidUntil: parseTime(it.SubscriptionValidUntil),
		CreatedAt:              parseTime(it.CreatedAt),
	}
}
