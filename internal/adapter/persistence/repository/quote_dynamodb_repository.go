package repository

import (
	"context"
	"fmt"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteLineItem struct {
	Name       string  `dynamodbav:"name"`
	Category   string  `dynamodbav:"category"`
	Quantity   float64 `dynamodbav:"quantity"`
	Unit       string  `dynamodbav:"unit,omitempty"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
	TotalPrice float64 `dynamodbav:"total_price"`
}

type quoteItem struct {
	ID          string          `dynamodbav:"id"`
	ProjectID   string          `dynamodbav:"project_id"`
	Items       []quoteLineItem `dynamodbav:"items"`
	TotalAmount float64         `dynamodbav:"total_amount"`
	Version     int             `dynamodbav:"version"`
	Status      string          `dynamodbav:"status"`
	ValidUntil  string          `dynamodbav:"valid_until"`
	DocumentURL string          `dynamodbav:"document_url,omitempty"`
	Rationale   string          `dynamodbav:"rationale,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// One current quote per project: regeneration goes through Update, never a
// second Create for the same project.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return decodeQuote(out.Item)
}

func (r *QuoteDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesProjectIndex),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}
	// The index is eventually consistent; re-read the base item.
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote, expectedVersion int) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	cond := "attribute_exists(#id)"
	names := map[string]string{"#id": "id"}
	var values map[string]types.AttributeValue
	if expectedVersion > 0 {
		cond += " AND #version = :expected_version"
		names["#version"] = "version"
		values = map[string]types.AttributeValue{
			":expected_version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Quote{}, err
		}
		current, gerr := r.GetByID(ctx, q.ID)
		if gerr != nil {
			return entities.Quote{}, gerr
		}
		if current.ID == "" {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, interfaces.ErrVersionMismatch
	}
	return q, nil
}

func (r *QuoteDynamoRepository) UpdateDocument(ctx context.Context, id string, documentURL string) (entities.Quote, error) {
	// updated_at is left alone: it is the issue date printed on the document.
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, "id", id, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #document_url = :document_url"
		vals := map[string]types.AttributeValue{
			":document_url": &types.AttributeValueMemberS{Value: documentURL},
		}
		names := map[string]string{
			"#document_url": "document_url",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return decodeQuote(attrs)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, "id", id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return decodeQuote(attrs)
}

func decodeQuote(attrs map[string]types.AttributeValue) (entities.Quote, error) {
	if len(attrs) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, len(q.Items))
	for i, it := range q.Items {
		lines[i] = quoteLineItem(it)
	}
	return quoteItem{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		Items:       lines,
		TotalAmount: q.TotalAmount,
		Version:     q.Version,
		Status:      string(q.Status),
		ValidUntil:  formatTime(q.ValidUntil),
		DocumentURL: q.DocumentURL,
		Rationale:   q.Rationale,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, len(it.Items))
	for i, l := range it.Items {
		items[i] = entities.QuoteItem(l)
	}
	return entities.Quote{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Items:       items,
		TotalAmount: it.TotalAmount,
		Version:     it.Version,
		Status:      entities.QuoteStatus(it.Status),
		ValidUntil:  parseTime(it.ValidUntil),
		DocumentURL: it.DocumentURL,
		Rationale:   it.Rationale,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
