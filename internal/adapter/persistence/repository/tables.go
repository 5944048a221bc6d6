package repository

import (
	"interiorquote/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	quotesProjectIndex  = "project_id-index"
	projectsOwnerIndex  = "owner_id-index"
	costConfigsHashName = "item_type"
)

// DynamoTableDefinitions describes the tables the DynamoDB repositories
// expect, for local bootstrap.
//
//   - quotes: PK id, GSI project_id-index
//   - projects: PK id, GSI owner_id-index
//   - cost_configs: PK item_type
func DynamoTableDefinitions(cfg config.StoreConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableWithIndex(cfg.QuotesTable, "project_id", quotesProjectIndex),
		tableWithIndex(cfg.ProjectsTable, "owner_id", projectsOwnerIndex),
		{
			TableName:   aws.String(cfg.CostConfigsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(costConfigsHashName), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(costConfigsHashName), KeyType: types.KeyTypeHash},
			},
		},
	}
}

func tableWithIndex(table, indexAttr, indexName string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(indexAttr), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(indexName),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(indexAttr), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}
