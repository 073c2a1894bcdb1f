package repository

import (
	"context"
	"fmt"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v4"
)

// DynamoDB accepts at most 25 put requests per BatchWriteItem call.
const batchWriteLimit = 25

type printerItem struct {
	ID        string            `dynamodbav:"id"`
	Title     string            `dynamodbav:"title"`
	Brand     string            `dynamodbav:"brand"`
	PriceINR  int64             `dynamodbav:"price_inr"`
	Image     string            `dynamodbav:"image"`
	Features  []string          `dynamodbav:"features"`
	Specs     map[string]string `dynamodbav:"specs"`
	CreatedAt string            `dynamodbav:"created_at,omitempty"`
}

// PrinterDynamoRepository persists the printer catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog holds a handful of items, List and Count scan the table.

type PrinterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPrinterRepository = (*PrinterDynamoRepository)(nil)

func NewPrinterDynamoRepository(ddb DynamoAPI, tableName string) *PrinterDynamoRepository {
	return &PrinterDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PrinterDynamoRepository) List(ctx context.Context) ([]entities.Printer, error) {
	printers := []entities.Printer{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems(page.Items, fromPrinterItem)
		if err != nil {
			return nil, err
		}
		printers = append(printers, items...)
	}
	return printers, nil
}

func (r *PrinterDynamoRepository) Count(ctx context.Context) (int, error) {
	total := 0
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

// CreateMany writes printers in batches, resubmitting unprocessed items with
// exponential backoff. It returns how many printers were written.
func (r *PrinterDynamoRepository) CreateMany(ctx context.Context, printers []entities.Printer) (int, error) {
	written := 0
	for start := 0; start < len(printers); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(printers))

		requests := make([]types.WriteRequest, 0, end-start)
		for _, p := range printers[start:end] {
			av, err := attributevalue.MarshalMap(toPrinterItem(p))
			if err != nil {
				return written, err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		n, err := r.batchWrite(ctx, requests)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (r *PrinterDynamoRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) (int, error) {
	pending := requests
	op := func() error {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return backoff.Permanent(err)
		}
		pending = out.UnprocessedItems[r.tableName]
		if len(pending) > 0 {
			return fmt.Errorf("%d unprocessed items", len(pending))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, 5), ctx))
	return len(requests) - len(pending), err
}

func toPrinterItem(p entities.Printer) printerItem {
	return printerItem{
		ID:        p.ID,
		Title:     p.Title,
		Brand:     p.Brand,
		PriceINR:  p.PriceINR,
		Image:     p.Image,
		Features:  p.Features,
		Specs:     p.Specs,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPrinterItem(it printerItem) entities.Printer {
	return entities.Printer{
		ID:        it.ID,
		Title:     it.Title,
		Brand:     it.Brand,
		PriceINR:  it.PriceINR,
		Image:     it.Image,
		Features:  it.Features,
		Specs:     it.Specs,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
