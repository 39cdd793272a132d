package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lynossweets/storefront-server/internal/api/http/handler"
	"github.com/lynossweets/storefront-server/internal/api/http/middleware"
	"github.com/lynossweets/storefront-server/internal/api/http/router"
	httpServer "github.com/lynossweets/storefront-server/internal/api/http/server"
	"github.com/lynossweets/storefront-server/internal/config"
	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/repository/postgres"
	"github.com/lynossweets/storefront-server/internal/server"
	"github.com/lynossweets/storefront-server/internal/service"
	storage "github.com/lynossweets/storefront-server/internal/storage/minio"
	"github.com/lynossweets/storefront-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := service.NewBcryptHasher()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, tokenManager, hasher, logger)
	productService := service.NewProduct(productRepo, storageClient, logger)
	categoryService := service.NewCategory(categoryRepo, logger)
	userService := service.NewUser(userRepo, hasher, logger)
	saleService := service.NewSale(saleRepo, productRepo, logger)
	statsService := service.NewStats(productRepo, saleRepo, userRepo, logger)

	r := router.New(
		middleware.NewLogging(logger),
		middleware.NewAuthenticate(authService, logger),
		handler.NewAuth(authService, logger),
		handler.NewProduct(productService, logger),
		handler.NewCategory(categoryService, logger),
		handler.NewUser(userService, logger),
		handler.NewSale(saleService, logger),
		handler.NewStats(statsService, logger),
		handler.NewHealth(db, logger),
	)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
