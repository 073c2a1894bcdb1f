package repository

import (
	"chromaprint/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableDefinitions describes every table the repositories expect, for
// bootstrapping local environments. All tables use on-demand billing.
func TableDefinitions(cfg config.DynamoDBConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(cfg.PrintersTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id")},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
		},
		{
			TableName:   aws.String(cfg.QuotesTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"), stringAttr("email"), stringAttr("created_at"),
			},
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(quotesEmailIndex),
				KeySchema:  []types.KeySchemaElement{hashKey("email"), rangeKey("created_at")},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		},
		{
			TableName:            aws.String(cfg.UsersTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("email")},
			KeySchema:            []types.KeySchemaElement{hashKey("email")},
		},
		{
			TableName:   aws.String(cfg.PaymentsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"), stringAttr("quote_id"),
			},
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(paymentsQuoteIDIndex),
				KeySchema:  []types.KeySchemaElement{hashKey("quote_id")},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		},
	}
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func rangeKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
}
