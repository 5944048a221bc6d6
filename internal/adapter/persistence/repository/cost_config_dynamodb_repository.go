package repository

import (
	"context"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type costConfigItem struct {
	ItemType         string  `dynamodbav:"item_type"`
	ID               string  `dynamodbav:"id"`
	Category         string  `dynamodbav:"category"`
	BasePrice        float64 `dynamodbav:"base_price"`
	Unit             string  `dynamodbav:"unit"`
	LaborCostPerUnit float64 `dynamodbav:"labor_cost_per_unit"`
	IsActive         bool    `dynamodbav:"is_active"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// CostConfigDynamoRepository stores the pricing catalog.
//
// Table requirements:
//   - PK: item_type (string), which makes item type the unique key.
//
// The catalog is small, so reads are full scans.

type CostConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostConfigRepository = (*CostConfigDynamoRepository)(nil)

func NewCostConfigDynamoRepository(ddb *dynamodb.Client, tableName string) *CostConfigDynamoRepository {
	return &CostConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CostConfigDynamoRepository) ListActive(ctx context.Context) ([]entities.CostConfig, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#is_active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
}

func (r *CostConfigDynamoRepository) ListAll(ctx context.Context) ([]entities.CostConfig, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

// Upsert writes c keyed by item type. An existing entry keeps its id.
func (r *CostConfigDynamoRepository) Upsert(ctx context.Context, c entities.CostConfig) (entities.CostConfig, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(costConfigsHashName, c.ItemType),
		UpdateExpression: aws.String("SET #id = if_not_exists(#id, :id), #category = :category, #base_price = :base_price, " +
			"#unit = :unit, #labor = :labor, #is_active = :is_active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#category":   "category",
			"#base_price": "base_price",
			"#unit":       "unit",
			"#labor":      "labor_cost_per_unit",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":         &types.AttributeValueMemberS{Value: c.ID},
			":category":   &types.AttributeValueMemberS{Value: c.Category},
			":base_price": &types.AttributeValueMemberN{Value: floatToString(c.BasePrice)},
			":unit":       &types.AttributeValueMemberS{Value: c.Unit},
			":labor":      &types.AttributeValueMemberN{Value: floatToString(c.LaborCostPerUnit)},
			":is_active":  &types.AttributeValueMemberBOOL{Value: c.IsActive},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.CostConfig{}, err
	}
	var it costConfigItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CostConfig{}, err
	}
	return fromCostConfigItem(it), nil
}

func (r *CostConfigDynamoRepository) InsertIfAbsent(ctx context.Context, c entities.CostConfig) (bool, error) {
	av, err := attributevalue.MarshalMap(toCostConfigItem(c))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#item_type)"),
		ExpressionAttributeNames: map[string]string{
			"#item_type": costConfigsHashName,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *CostConfigDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.CostConfig, error) {
	p := dynamodb.NewScanPaginator(r.ddb, in)
	res := make([]entities.CostConfig, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []costConfigItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			res = append(res, fromCostConfigItem(it))
		}
	}
	return res, nil
}

func toCostConfigItem(c entities.CostConfig) costConfigItem {
	return costConfigItem{
		ItemType:         c.ItemType,
		ID:               c.ID,
		Category:         c.Category,
		BasePrice:        c.BasePrice,
		Unit:             c.Unit,
		LaborCostPerUnit: c.LaborCostPerUnit,
		IsActive:         c.IsActive,
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromCostConfigItem(it costConfigItem) entities.CostConfig {
	return entities.CostConfig{
		ID:               it.ID,
		Category:         it.Category,
		ItemType:         it.ItemType,
		BasePrice:        it.BasePrice,
		Unit:             it.Unit,
		LaborCostPerUnit: it.LaborCostPerUnit,
		IsActive:         it.IsActive,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
