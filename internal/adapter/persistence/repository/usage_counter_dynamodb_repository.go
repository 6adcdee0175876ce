package repository

import (
	"context"
	"strconv"
	"time"

	"quotelock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// usageRetention is how long a month's counter outlives the month itself.
const usageRetention = 31 * 24 * time.Hour

// UsageCounterDynamoRepository keeps monthly creation counters in the rate limit table
// under keys of the form usage#<user_id>#<year-month>.
type UsageCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsageCounterRepository = (*UsageCounterDynamoRepository)(nil)

func NewUsageCounterDynamoRepository(ddb *dynamodb.Client) *UsageCounterDynamoRepository {
	return &UsageCounterDynamoRepository{
		ddb:       ddb,
		tableName: RateLimitsTableName(),
	}
}

func (r *UsageCounterDynamoRepository) Current(ctx context.Context, userID, period string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            usageItemKey(userID, period),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	return countAttribute(out.Item)
}

func (r *UsageCounterDynamoRepository) Increment(ctx context.Context, userID, period string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              usageItemKey(userID, period),
		UpdateExpression: aws.String("ADD #count :one SET #expires_at = :expires_at"),
		ExpressionAttributeNames: map[string]string{
			"#count":      "count",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(usageExpiry(period).Unix(), 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return countAttribute(out.Attributes)
}

func usageItemKey(userID, period string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: "usage#" + userID + "#" + period},
	}
}

// usageExpiry is the end of period plus usageRetention. Unparseable periods keep the
// counter for a year.
func usageExpiry(period string) time.Time {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Now().AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0).Add(usageRetention)
}

func countAttribute(item map[string]types.AttributeValue) (int64, error) {
	n, ok := item["count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
