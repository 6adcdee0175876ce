package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBTables names the tables the service needs.
type DynamoDBTables struct {
	Agreements  string
	AuditEvents string
	RateLimits  string
}

// TableDefinitions returns the CreateTable inputs for every table, using on-demand billing.
func (t DynamoDBTables) TableDefinitions() []*dynamodb.CreateTableInput {
	str := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	rng := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
	}
	all := &types.Projection{ProjectionType: types.ProjectionTypeAll}

	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Agreements),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("id"), str("public_slug"), str("user_id"), str("created_at")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{IndexName: aws.String("public_slug-index"), KeySchema: []types.KeySchemaElement{hash("public_slug")}, Projection: all},
				{IndexName: aws.String("user_id-index"), KeySchema: []types.KeySchemaElement{hash("user_id"), rng("created_at")}, Projection: all},
			},
		},
		{
			TableName:            aws.String(t.AuditEvents),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("agreement_id"), str("sk")},
			KeySchema:            []types.KeySchemaElement{hash("agreement_id"), rng("sk")},
		},
		{
			TableName:            aws.String(t.RateLimits),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{str("key")},
			KeySchema:            []types.KeySchemaElement{hash("key")},
		},
	}
}

// EnsureDynamoDBTables creates missing tables, waits for them to become active and
// enables TTL on the rate limit table.
func EnsureDynamoDBTables(ctx context.Context, client *dynamodb.Client, tables DynamoDBTables) error {
	for _, def := range tables.TableDefinitions() {
		name := aws.ToString(def.TableName)
		_, err := client.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Printf("[database][dynamodb] table exists name=%s", name)
			continue
		case err != nil:
			return fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Printf("[database][dynamodb] table created name=%s", name)
	}

	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(tables.RateLimits),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("expires_at"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		// Already-enabled TTL is reported as a validation error; the table is still usable.
		log.Printf("[database][dynamodb] ttl not updated name=%s err=%v", tables.RateLimits, err)
	}
	return nil
}
