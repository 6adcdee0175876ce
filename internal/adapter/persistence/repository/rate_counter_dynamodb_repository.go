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

// RateCounterDynamoRepository keeps fixed-window counters.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (number, epoch seconds)
type RateCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateCounterRepository = (*RateCounterDynamoRepository)(nil)

func NewRateCounterDynamoRepository(ddb *dynamodb.Client) *RateCounterDynamoRepository {
	return &RateCounterDynamoRepository{
		ddb:       ddb,
		tableName: RateLimitsTableName(),
	}
}

func (r *RateCounterDynamoRepository) Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #count :one SET #expires_at = :expires_at"),
		ExpressionAttributeNames: map[string]string{
			"#count":      "count",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(expiresAt.Unix(), 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return countAttribute(out.Attributes)
}
