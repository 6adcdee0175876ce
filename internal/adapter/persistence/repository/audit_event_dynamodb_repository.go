package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type auditEventItem struct {
	AgreementID  string  `dynamodbav:"agreement_id"`
	SK           string  `dynamodbav:"sk"`
	ID           string  `dynamodbav:"id"`
	Actor        string  `dynamodbav:"actor"`
	Type         string  `dynamodbav:"type"`
	MetadataJSON string  `dynamodbav:"metadata_json,omitempty"`
	IPAddress    *string `dynamodbav:"ip_address,omitempty"`
	UserAgent    *string `dynamodbav:"user_agent,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// AuditEventDynamoRepository stores the append-only agreement timeline.
//
// Table requirements:
//   - PK: agreement_id (string)
//   - SK: sk (string) = created_at#id
//
// Items are written with attribute_not_exists so an event can never be overwritten.
type AuditEventDynamoRepository struct {
	ddb                 *dynamodb.Client
	tableName           string
	agreementsTableName string
}

var _ interfaces.IAuditEventRepository = (*AuditEventDynamoRepository)(nil)

func NewAuditEventDynamoRepository(ddb *dynamodb.Client) *AuditEventDynamoRepository {
	return &AuditEventDynamoRepository{
		ddb:                 ddb,
		tableName:           AuditEventsTableName(),
		agreementsTableName: AgreementsTableName(),
	}
}

// Append inserts e only while its agreement exists.
func (r *AuditEventDynamoRepository) Append(ctx context.Context, e entities.AuditEvent) error {
	put, err := eventPut(r.tableName, e)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{ConditionCheck: &types.ConditionCheck{
				TableName: aws.String(r.agreementsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: e.AgreementID},
				},
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: put},
		},
	})
	if err != nil {
		return fmt.Errorf("append audit event %s: %w", e.ID, transactionError(err, 0))
	}
	return nil
}

func (r *AuditEventDynamoRepository) ListByAgreementID(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#agreement_id = :agreement_id"),
		ExpressionAttributeNames: map[string]string{
			"#agreement_id": "agreement_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":agreement_id": &types.AttributeValueMemberS{Value: agreementID},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(limit <= 0),
	}

	var items []auditEventItem
	paginator := dynamodb.NewQueryPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var pageItems []auditEventItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
		if limit > 0 && len(items) >= limit {
			items = items[:limit]
			break
		}
	}

	out := make([]entities.AuditEvent, len(items))
	for i, it := range items {
		e, err := fromAuditEventItem(it)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	if limit > 0 {
		// Most recent first from the query; flip back to ascending.
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// eventPut builds the insert-only Put for an audit event.
func eventPut(tableName string, e entities.AuditEvent) (*types.Put, error) {
	it, err := toAuditEventItem(e)
	if err != nil {
		return nil, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{"#sk": "sk"},
	}, nil
}

func toAuditEventItem(e entities.AuditEvent) (auditEventItem, error) {
	createdAt := formatTime(e.CreatedAt)
	it := auditEventItem{
		AgreementID: e.AgreementID,
		SK:          createdAt + "#" + e.ID,
		ID:          e.ID,
		Actor:       string(e.Actor),
		Type:        string(e.Type),
		IPAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		CreatedAt:   createdAt,
	}
	if len(e.Metadata) > 0 {
		raw, err := json.Marshal(e.Metadata)
		if err != nil {
			return auditEventItem{}, fmt.Errorf("encode metadata: %w", err)
		}
		it.MetadataJSON = string(raw)
	}
	return it, nil
}

func fromAuditEventItem(it auditEventItem) (entities.AuditEvent, error) {
	e := entities.AuditEvent{
		ID:          it.ID,
		AgreementID: it.AgreementID,
		Actor:       entities.AuditActor(it.Actor),
		Type:        entities.AuditEventType(it.Type),
		IPAddress:   it.IPAddress,
		UserAgent:   it.UserAgent,
		CreatedAt:   parseTime(it.CreatedAt),
	}
	if it.MetadataJSON != "" {
		if err := json.Unmarshal([]byte(it.MetadataJSON), &e.Metadata); err != nil {
			return entities.AuditEvent{}, fmt.Errorf("decode metadata of event %s: %w", it.ID, err)
		}
	}
	return e, nil
}
