package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mycloudhq/mycloud/internal/account"
	"github.com/mycloudhq/mycloud/internal/config"
	"github.com/mycloudhq/mycloud/internal/hierarchy"
	"github.com/mycloudhq/mycloud/internal/logger"
	"github.com/mycloudhq/mycloud/internal/server"
	"github.com/mycloudhq/mycloud/internal/upload"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logg, err := logger.Init()
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer logg.Sync()

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	accountRepo := account.NewRepository()
	accountService := account.NewService(accountRepo, cfg.Session)

	hierarchyRepo := hierarchy.NewRepository()
	hierarchyService := hierarchy.NewService(hierarchyRepo, accountService)

	uploadService := upload.NewService(accountService, hierarchyService, cfg.Upload.TickInterval, cfg.Upload.TickStep)

	router := server.NewRouter(server.Dependencies{
		Config:           cfg,
		Logger:           logg,
		AccountService:   accountService,
		HierarchyService: hierarchyService,
		UploadService:    uploadService,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logg.Info("MyCloud API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logg.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", zap.Error(err))
	}
}
