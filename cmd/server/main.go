package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	expenseapp "github.com/expensetracker/backend/internal/application/expense"
	reportapp "github.com/expensetracker/backend/internal/application/report"
	"github.com/expensetracker/backend/internal/infrastructure/config"
	"github.com/expensetracker/backend/internal/infrastructure/logger"
	"github.com/expensetracker/backend/internal/infrastructure/migration"
	"github.com/expensetracker/backend/internal/infrastructure/notice"
	"github.com/expensetracker/backend/internal/infrastructure/persistence"
	"github.com/expensetracker/backend/internal/interfaces/http/handler"
	"github.com/expensetracker/backend/internal/interfaces/http/middleware"
	"github.com/expensetracker/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting expense tracker backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database opened", zap.String("path", cfg.Database.Path))

	if err := runMigrations(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	noticeStore, err := notice.NewStoreFactory(cfg.Redis, notice.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create notice store", zap.Error(err))
	}
	defer func() {
		if err := noticeStore.Close(); err != nil {
			log.Error("Error closing notice store", zap.Error(err))
		}
	}()

	// Repositories and services
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	expenseService := expenseapp.NewExpenseService(expenseRepo)
	dashboardService := reportapp.NewDashboardService(expenseRepo, reportapp.NewAggregationService())

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	r := router.NewRouter(engine)
	r.Register(handler.NewExpenseHandler(expenseService, noticeStore, cfg.Notice.TTL)).
		Register(handler.NewDashboardHandler(dashboardService)).
		Register(handler.NewNoticeHandler(noticeStore)).
		Register(handler.NewSystemHandler(db))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runMigrations applies pending schema migrations on startup so a fresh
// database file is usable immediately
func runMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	m, err := migration.New(sqlDB, migrationsPath, log)
	if err != nil {
		return err
	}

	// The migrator shares gorm's connection pool; closing it here would
	// close the database out from under the server.
	return m.Up()
}
