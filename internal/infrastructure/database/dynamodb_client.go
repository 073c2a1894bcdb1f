package database

import (
	"context"
	"fmt"
	"time"

	"chromaprint/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// TableAPI is the subset of the DynamoDB client used to bootstrap and probe
// tables. *dynamodb.Client satisfies it.
type TableAPI interface {
	dynamodb.ListTablesAPIClient
	dynamodb.DescribeTableAPIClient
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// ConnectDynamoDB creates a DynamoDB client and waits until the endpoint
// answers, retrying with exponential backoff up to cfg.ConnectTimeout.
//
// Supported env vars (local-friendly), see config.DynamoDBConfig:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig, log *zap.Logger) (*dynamodb.Client, error) {
	const operation = "database.ConnectDynamoDB"

	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create dynamodb config: %w", operation, err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	if err := WaitReady(ctx, client, cfg.ConnectTimeout, log); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	log.Info("DynamoDB connection established",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint),
	)
	return client, nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// WaitReady polls ListTables until it succeeds or timeout elapses.
func WaitReady(ctx context.Context, api dynamodb.ListTablesAPIClient, timeout time.Duration, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = timeout

	probe := func() error {
		_, err := api.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
		return err
	}
	notify := func(err error, next time.Duration) {
		log.Warn("DynamoDB not ready, retrying", zap.Error(err), zap.Duration("next_attempt_in", next))
	}

	if err := backoff.RetryNotify(probe, backoff.WithContext(policy, ctx), notify); err != nil {
		return fmt.Errorf("dynamodb not reachable after %s: %w", timeout, err)
	}
	return nil
}
