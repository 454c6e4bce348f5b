package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/refiscope/refiscope-backend/internal/adapter/cache"
	grpcadapter "github.com/refiscope/refiscope-backend/internal/adapter/grpc"
	"github.com/refiscope/refiscope-backend/internal/adapter/provider"
	"github.com/refiscope/refiscope-backend/internal/config"
	"github.com/refiscope/refiscope-backend/internal/domain"
	"github.com/refiscope/refiscope-backend/internal/usecase/advisor"
)

func main() {
	// 1. Setup Logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// 3. Initialize Market Data Provider
	var marketProvider domain.MarketDataProvider
	if cfg.MarketFeedURL != "" {
		marketProvider = provider.NewFeedProvider(cfg.MarketFeedURL, logger)
		logger.WithField("url", cfg.MarketFeedURL).Info("Using live market data feed")
	} else {
		marketProvider = provider.NewStaticProvider()
		logger.Info("MARKET_FEED_URL not set, using built-in market data")
	}

	// Wrap the provider in a Redis-backed cache when an address is configured
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.MarketCacheTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			cancel()
			logger.Fatalf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		cancel()
		marketProvider = provider.NewCachedProvider(marketProvider, redisCache, logger)
		logger.WithField("addr", cfg.RedisAddr).Info("Caching market snapshots in Redis")
	}

	// 4. Initialize Services (Use Cases)
	advisorService := advisor.NewService(marketProvider, logger)

	// 5. Start gRPC Server
	// Create gRPC server with logging and auth interceptors
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	// Register RefiAdvisorServiceServer
	grpcAdapter := grpcadapter.NewServer(advisorService)
	grpcadapter.RegisterRefiAdvisorServiceServer(grpcServer, grpcAdapter)

	// Register gRPC health check
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("refiscope", healthpb.HealthCheckResponse_SERVING)

	// Only enable reflection when GRPC_REFLECTION=true
	if cfg.GRPCReflection {
		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Fatalf("Failed to listen on %s: %v", cfg.Addr(), err)
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("gRPC server listening on %s", cfg.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, logger *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Infof("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
