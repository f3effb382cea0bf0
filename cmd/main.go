package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	directoryapp "github.com/muhammadheryan/supply-chain/application/directory"
	orderapp "github.com/muhammadheryan/supply-chain/application/order"
	statsapp "github.com/muhammadheryan/supply-chain/application/stats"
	stockapp "github.com/muhammadheryan/supply-chain/application/stock"
	userapp "github.com/muhammadheryan/supply-chain/application/user"
	"github.com/muhammadheryan/supply-chain/cmd/config"
	redisclient "github.com/muhammadheryan/supply-chain/cmd/redis"
	_ "github.com/muhammadheryan/supply-chain/docs"
	directoryRepo "github.com/muhammadheryan/supply-chain/repository/directory"
	ledgerRepo "github.com/muhammadheryan/supply-chain/repository/ledger"
	orderRepo "github.com/muhammadheryan/supply-chain/repository/order"
	redisRepo "github.com/muhammadheryan/supply-chain/repository/redis"
	stockRepo "github.com/muhammadheryan/supply-chain/repository/stock"
	txRepo "github.com/muhammadheryan/supply-chain/repository/tx"
	userRepo "github.com/muhammadheryan/supply-chain/repository/user"
	"github.com/muhammadheryan/supply-chain/thirdparty/rabbitmq"
	"github.com/muhammadheryan/supply-chain/transport"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
)

// @title SUPPLY-CHAIN API
// @version 1.0
// @description Retail supply-chain API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher schedules pending-order expiration checks. The
	// server still runs without it; orders just never auto-expire.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	StockRepo := stockRepo.NewStockRepository(db)
	LedgerRepo := ledgerRepo.NewLedgerRepository(db)
	DirectoryRepo := directoryRepo.NewDirectoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	StockApp := stockapp.NewStockApp(TxRepo, StockRepo, LedgerRepo, DirectoryRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, DirectoryRepo, StockApp, publisher)
	StatsApp := statsapp.NewStatsApp(StockApp, DirectoryRepo)
	DirectoryApp := directoryapp.NewDirectoryApp(TxRepo, DirectoryRepo, StockRepo)

	// Expiration consumer calls back into the internal expire endpoint
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Error("err connect rabbitmq consumer", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(consumerCtx); err != nil {
			logger.Error("err start rabbitmq consumer", zap.Error(err))
		}
	}

	httpTransport := transport.NewTransport(UserApp, OrderApp, StockApp, StatsApp, DirectoryApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
