package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	request "chromaprint/internal/adapter/http/dto/request"
	"chromaprint/internal/adapter/http/handlers"
	"chromaprint/internal/adapter/http/middleware"
	"chromaprint/internal/infrastructure/config"
	appLogger "chromaprint/internal/infrastructure/logger"
	"chromaprint/internal/usecase"
	"chromaprint/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases and collaborators served over HTTP.
type Dependencies struct {
	Estimate usecase.IEstimateUseCase
	Auth     usecase.IAuthUseCase
	Printers usecase.IPrinterUseCase
	Quotes   usecase.IQuoteUseCase
	Payments usecase.IQuotePaymentUseCase
	Probe    interfaces.IStoreProbe
	Limiter  *rate.Limiter
	Log      *zap.Logger
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := appLogger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
	defer cleanup()

	if err := serve(ctx, cfg.Addr(), NewRouter(deps), logger); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}

// NewRouter registers every route and the shared middleware.
func NewRouter(deps Dependencies) *gin.Engine {
	request.RegisterValidation()
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.CORS(),
		middleware.RequestID(),
		middleware.Metrics(),
	)
	if deps.Limiter != nil {
		router.Use(middleware.RateLimit(deps.Limiter))
	}
	router.Use(middleware.AccessLog(log))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	addStatusRoutes(router, api, handlers.NewStatusHandler(deps.Probe))
	addStorefrontRoutes(api, storefrontHandlers{
		estimate: handlers.NewEstimateHandler(deps.Estimate, log),
		auth:     handlers.NewAuthHandler(deps.Auth, log),
		printers: handlers.NewPrinterHandler(deps.Printers, log),
		quotes:   handlers.NewQuoteHandler(deps.Quotes, log),
		payments: handlers.NewQuotePaymentHandler(deps.Payments, log),
	}, middleware.DemoAuth(deps.Auth))

	return router
}

func serve(ctx context.Context, addr string, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("HTTP server stopped gracefully")
	return nil
}
