package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstablishmentsTableName = "establishments"
	defaultUsersTableName          = "users"
	defaultClientsTableName        = "clients"
	defaultCardsTableName          = "cards"
	defaultMovementsTableName      = "movements"
	defaultVouchersTableName       = "vouchers"
	defaultPaymentsTableName       = "payments"

	slugIndex            = "slug-index"
	establishmentIDIndex = "establishment_id-index"
	cardIDIndex          = "card_id-index"
	clientIDIndex        = "client_id-index"

	// DynamoDB TransactWriteItems limit.
	maxTransactItems = 100
)

// phoneGuardID keys the uniqueness marker row for one (establishment, phone)
// pair. The marker lives in the clients table and carries no GSI attributes,
// so it never shows up in establishment or client queries.
func phoneGuardID(establishmentID, phone string) string {
	return "phone#" + establishmentID + "#" + phone
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// isTransactConditionFailed reports whether a TransactWriteItems call was
// cancelled because one of its condition expressions failed, as opposed to a
// transport or throttling error.
func isTransactConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func deleteTransactItem(table, id string) types.TransactWriteItem {
	t := table
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: &t,
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		},
	}
}

// transactDeleteAll runs the deletes in order, chunked at the TransactWriteItems
// limit. Each chunk is atomic; callers order items so that a failure between
// chunks leaves the data retryable (parent rows deleted last).
func transactDeleteAll(ctx context.Context, ddb *dynamodb.Client, items []types.TransactWriteItem) error {
	for start := 0; start < len(items); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(items) {
			end = len(items)
		}
		_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}
