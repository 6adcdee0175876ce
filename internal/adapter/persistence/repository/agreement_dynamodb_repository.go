package repository

import (
	"context"
	"fmt"
	"strings"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type agreementItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	PublicSlug string `dynamodbav:"public_slug"`

	Title       string  `dynamodbav:"title"`
	ClientName  *string `dynamodbav:"client_name,omitempty"`
	ClientEmail *string `dynamodbav:"client_email,omitempty"`

	WorkIncluded  string `dynamodbav:"work_included"`
	WorkExcluded  string `dynamodbav:"work_excluded"`
	TotalPrice    string `dynamodbav:"total_price"`
	DepositAmount string `dynamodbav:"deposit_amount"`
	BalanceDue    string `dynamodbav:"balance_due"`
	Currency      string `dynamodbav:"currency"`

	ExpiresAt           *string `dynamodbav:"expires_at,omitempty"`
	PaymentInstructions string  `dynamodbav:"payment_instructions"`
	ExternalPaymentLink *string `dynamodbav:"external_payment_link,omitempty"`
	CancellationTerms   string  `dynamodbav:"cancellation_terms"`
	GoverningCountry    string  `dynamodbav:"governing_country"`

	Status   string  `dynamodbav:"status"`
	LockedAt *string `dynamodbav:"locked_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists Agreement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI public_slug-index: public_slug (string)
//   - GSI user_id-index: user_id (string), created_at (string)
//
// Every mutation is a TransactWriteItems call that also inserts the audit event, so the
// agreement row and its timeline can never disagree.
type AgreementDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	eventsTableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:             ddb,
		tableName:       AgreementsTableName(),
		eventsTableName: AuditEventsTableName(),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement, created entities.AuditEvent) (entities.Agreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
	}
	createdPut, err := eventPut(r.eventsTableName, created)
	if err != nil {
		return entities.Agreement{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: createdPut},
		},
	})
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("create agreement %s: %w", a.ID, transactionError(err, -1))
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) GetByPublicSlug(ctx context.Context, slug string) (entities.Agreement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(publicSlugIndexName),
		KeyConditionExpression: aws.String("#slug = :slug"),
		ExpressionAttributeNames: map[string]string{
			"#slug": "public_slug",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Items) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Agreement{}, err
	}
	// GSIs are eventually consistent; re-read the base row so callers see the latest status.
	return r.GetByID(ctx, it.ID)
}

func (r *AgreementDynamoRepository) ListByUserID(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames["#status"] = "status"
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out := make([]entities.Agreement, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []agreementItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAgreementItem(it))
		}
	}
	return out, nil
}

func (r *AgreementDynamoRepository) ApplyTransition(ctx context.Context, cmd interfaces.TransitionCommand) (entities.Agreement, error) {
	sets := []string{"#status = :to", "#updated_at = :now"}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(cmd.From)},
		":to":   &types.AttributeValueMemberS{Value: string(cmd.To)},
		":now":  &types.AttributeValueMemberS{Value: formatTime(cmd.Now)},
	}
	if cmd.LockAt != nil {
		sets = append(sets, "#locked_at = if_not_exists(#locked_at, :locked_at)")
		names["#locked_at"] = "locked_at"
		values[":locked_at"] = &types.AttributeValueMemberS{Value: formatTime(*cmd.LockAt)}
	}
	if cmd.ClientName != nil {
		sets = append(sets, "#client_name = :client_name")
		names["#client_name"] = "client_name"
		values[":client_name"] = &types.AttributeValueMemberS{Value: *cmd.ClientName}
	}
	if cmd.ClientEmail != nil {
		sets = append(sets, "#client_email = :client_email")
		names["#client_email"] = "client_email"
		values[":client_email"] = &types.AttributeValueMemberS{Value: *cmd.ClientEmail}
	}

	update := &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cmd.AgreementID},
		},
		UpdateExpression:                    aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
	return r.writeWithEvent(ctx, cmd.AgreementID, update, cmd.Event)
}

func (r *AgreementDynamoRepository) ApplyUpdate(ctx context.Context, cmd interfaces.UpdateCommand) (entities.Agreement, error) {
	b := newChangeExpression()
	c := cmd.Changes
	b.setString("title", c.Title)
	b.setOptional("client_name", c.ClientName)
	b.setOptional("client_email", c.ClientEmail)
	b.setString("work_included", c.WorkIncluded)
	b.setString("work_excluded", c.WorkExcluded)
	if c.TotalPrice != nil {
		b.set("total_price", &types.AttributeValueMemberS{Value: c.TotalPrice.String()})
	}
	if c.DepositAmount != nil {
		b.set("deposit_amount", &types.AttributeValueMemberS{Value: c.DepositAmount.String()})
	}
	if c.BalanceDue != nil {
		b.set("balance_due", &types.AttributeValueMemberS{Value: c.BalanceDue.String()})
	}
	b.setString("currency", c.Currency)
	if c.ExpiresAt != nil {
		if c.ExpiresAt.IsZero() {
			b.remove("expires_at")
		} else {
			b.set("expires_at", &types.AttributeValueMemberS{Value: formatTime(*c.ExpiresAt)})
		}
	}
	b.setString("payment_instructions", c.PaymentInstructions)
	b.setOptional("external_payment_link", c.ExternalPaymentLink)
	b.setString("cancellation_terms", c.CancellationTerms)
	b.setString("governing_country", c.GoverningCountry)
	b.set("updated_at", &types.AttributeValueMemberS{Value: formatTime(cmd.Now)})

	lockCond := "attribute_not_exists(#locked_at)"
	if cmd.ExpectedLocked {
		lockCond = "attribute_exists(#locked_at)"
	}
	b.names["#id"] = "id"
	b.names["#status"] = "status"
	b.names["#locked_at"] = "locked_at"
	b.values[":expected_status"] = &types.AttributeValueMemberS{Value: string(cmd.ExpectedStatus)}

	update := &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cmd.AgreementID},
		},
		UpdateExpression:                    aws.String(b.expression()),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected_status AND " + lockCond),
		ExpressionAttributeNames:            b.names,
		ExpressionAttributeValues:           b.values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
	return r.writeWithEvent(ctx, cmd.AgreementID, update, cmd.Event)
}

func (r *AgreementDynamoRepository) writeWithEvent(ctx context.Context, id string, update *types.Update, e entities.AuditEvent) (entities.Agreement, error) {
	put, err := eventPut(r.eventsTableName, e)
	if err != nil {
		return entities.Agreement{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: update},
			{Put: put},
		},
	})
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("write agreement %s: %w", id, transactionError(err, 0))
	}
	return r.GetByID(ctx, id)
}

// changeExpression accumulates SET and REMOVE clauses for a partial update.
type changeExpression struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newChangeExpression() *changeExpression {
	return &changeExpression{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (b *changeExpression) set(attr string, v types.AttributeValue) {
	b.sets = append(b.sets, fmt.Sprintf("#%s = :%s", attr, attr))
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
}

func (b *changeExpression) setString(attr string, v *string) {
	if v != nil {
		b.set(attr, &types.AttributeValueMemberS{Value: *v})
	}
}

// setOptional removes the attribute when v points to an empty string.
func (b *changeExpression) setOptional(attr string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		b.remove(attr)
		return
	}
	b.set(attr, &types.AttributeValueMemberS{Value: *v})
}

func (b *changeExpression) remove(attr string) {
	b.removes = append(b.removes, "#"+attr)
	b.names["#"+attr] = attr
}

func (b *changeExpression) expression() string {
	expr := "SET " + strings.Join(b.sets, ", ")
	if len(b.removes) > 0 {
		expr += " REMOVE " + strings.Join(b.removes, ", ")
	}
	return expr
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		ID:                  a.ID,
		UserID:              a.UserID,
		PublicSlug:          a.PublicSlug,
		Title:               a.Title,
		ClientName:          a.ClientName,
		ClientEmail:         a.ClientEmail,
		WorkIncluded:        a.WorkIncluded,
		WorkExcluded:        a.WorkExcluded,
		TotalPrice:          a.TotalPrice.String(),
		DepositAmount:       a.DepositAmount.String(),
		BalanceDue:          a.BalanceDue.String(),
		Currency:            a.Currency,
		ExpiresAt:           formatTimePtr(a.ExpiresAt),
		PaymentInstructions: a.PaymentInstructions,
		ExternalPaymentLink: a.ExternalPaymentLink,
		CancellationTerms:   a.CancellationTerms,
		GoverningCountry:    a.GoverningCountry,
		Status:              string(a.Status),
		LockedAt:            formatTimePtr(a.LockedAt),
		CreatedAt:           formatTime(a.CreatedAt),
		UpdatedAt:           formatTime(a.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		ID:                  it.ID,
		UserID:              it.UserID,
		PublicSlug:          it.PublicSlug,
		Title:               it.Title,
		ClientName:          it.ClientName,
		ClientEmail:         it.ClientEmail,
		WorkIncluded:        it.WorkIncluded,
		WorkExcluded:        it.WorkExcluded,
		TotalPrice:          parseDecimal(it.TotalPrice),
		DepositAmount:       parseDecimal(it.DepositAmount),
		BalanceDue:          parseDecimal(it.BalanceDue),
		Currency:            it.Currency,
		ExpiresAt:           parseTimePtr(it.ExpiresAt),
		PaymentInstructions: it.PaymentInstructions,
		ExternalPaymentLink: it.ExternalPaymentLink,
		CancellationTerms:   it.CancellationTerms,
		GoverningCountry:    it.GoverningCountry,
		Status:              entities.AgreementStatus(it.Status),
		LockedAt:            parseTimePtr(it.LockedAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
