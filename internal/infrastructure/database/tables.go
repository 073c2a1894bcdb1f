package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableActiveTimeout = 2 * time.Minute

// EnsureTables creates every missing table and waits for it to become
// active. Existing tables are left untouched, schema drift is not detected.
func EnsureTables(ctx context.Context, api TableAPI, defs []*dynamodb.CreateTableInput, log *zap.Logger) (created []string, err error) {
	const operation = "database.EnsureTables"

	existing, err := ListTableNames(ctx, api)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		have[name] = struct{}{}
	}

	for _, def := range defs {
		name := aws.ToString(def.TableName)
		if _, ok := have[name]; ok {
			continue
		}

		log.Info("Creating DynamoDB table", zap.String("table", name))
		if _, err := api.CreateTable(ctx, def); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("%s: create table %s: %w", operation, name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return created, fmt.Errorf("%s: wait table %s: %w", operation, name, err)
		}
		created = append(created, name)
	}
	return created, nil
}

// ListTableNames returns every table name visible to the client.
func ListTableNames(ctx context.Context, api dynamodb.ListTablesAPIClient) ([]string, error) {
	var names []string
	p := dynamodb.NewListTablesPaginator(api, &dynamodb.ListTablesInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, page.TableNames...)
	}
	return names, nil
}
