package routes

import (
	"context"
	"fmt"

	"chromaprint/internal/adapter/persistence/repository"
	"chromaprint/internal/infrastructure/cache"
	"chromaprint/internal/infrastructure/config"
	"chromaprint/internal/infrastructure/database"
	"chromaprint/internal/infrastructure/payments"
	"chromaprint/internal/usecase"
	"chromaprint/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Stores groups the repositories backed by the document store. Every field
// is nil when the process runs without one.
type Stores struct {
	Printers interfaces.IPrinterRepository
	Quotes   interfaces.IQuoteRepository
	Users    interfaces.IUserRepository
	Payments interfaces.IQuotePaymentRepository
	Probe    interfaces.IStoreProbe
}

// OpenStores connects to DynamoDB when enabled and creates missing tables
// when DYNAMODB_CREATE_TABLES is set. A disabled store yields empty Stores
// whose probe reports the store as unavailable.
func OpenStores(ctx context.Context, cfg config.DynamoDBConfig, log *zap.Logger) (Stores, error) {
	if !cfg.Enabled {
		log.Warn("Document store disabled, running with sample catalog and simulated quotes")
		return Stores{Probe: database.NewStoreProbe(nil, cfg.Region, cfg.Endpoint)}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg, log)
	if err != nil {
		return Stores{}, err
	}

	if cfg.CreateTables {
		created, err := database.EnsureTables(ctx, ddb, repository.TableDefinitions(cfg), log)
		if err != nil {
			return Stores{}, fmt.Errorf("routes.OpenStores: %w", err)
		}
		if len(created) > 0 {
			log.Info("DynamoDB tables created", zap.Strings("tables", created))
		}
	}

	return Stores{
		Printers: repository.NewPrinterDynamoRepository(ddb, cfg.PrintersTable),
		Quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
		Users:    repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
		Payments: repository.NewQuotePaymentDynamoRepository(ddb, cfg.PaymentsTable),
		Probe:    database.NewStoreProbe(ddb, cfg.Region, cfg.Endpoint),
	}, nil
}

// Build assembles the HTTP dependencies from cfg. The returned cleanup
// releases the cache connection.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (Dependencies, func(), error) {
	stores, err := OpenStores(ctx, cfg.DynamoDB, log)
	if err != nil {
		return Dependencies{}, nil, err
	}

	catalogCache, closeCache := cache.New(ctx, cfg.Cache, log)
	cleanup := func() {
		if err := closeCache(); err != nil {
			log.Warn("close catalog cache", zap.Error(err))
		}
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
		if err != nil {
			log.Warn("Mercado Pago gateway not configured", zap.Error(err))
		} else {
			gateway = mp
		}
	}

	return Dependencies{
		Estimate: usecase.NewEstimateUseCase(log),
		Auth: usecase.NewAuthUseCase(usecase.DemoAccount{
			Email:    cfg.Demo.Email,
			Password: cfg.Demo.Password,
			Token:    cfg.Demo.Token,
			Name:     cfg.Demo.UserName,
		}, stores.Users, log),
		Printers: usecase.NewPrinterUseCase(stores.Printers, catalogCache, log),
		Quotes:   usecase.NewQuoteUseCase(stores.Quotes, cfg.OrdersLimit, log),
		Payments: usecase.NewQuotePaymentUseCase(stores.Payments, stores.Quotes, gateway, usecase.PaymentOptions{
			Mock:           cfg.Payments.Mock,
			AccessToken:    cfg.Payments.AccessToken,
			TestPayerEmail: cfg.Payments.TestPayerEmail,
			DefaultMethod:  cfg.Payments.DefaultMethod,
		}, log),
		Probe:   stores.Probe,
		Limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
		Log:     log,
	}, cleanup, nil
}
