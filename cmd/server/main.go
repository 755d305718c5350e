// Package main initializes and starts the EduFeed API server, setting up
// configuration, logging, the document store, repositories, services,
// handlers and routing.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/EduFeed/internal/config"
	"github.com/atinyakov/EduFeed/internal/db"
	"github.com/atinyakov/EduFeed/internal/logger"
	"github.com/atinyakov/EduFeed/internal/repository"
	"github.com/atinyakov/EduFeed/internal/server/handler/http"
	"github.com/atinyakov/EduFeed/internal/service"
	"github.com/atinyakov/EduFeed/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	latency := options.ParseLatency(service.DefaultLatency)

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Pick the store backend: PostgreSQL when a DSN is configured,
	// otherwise JSON files under the data directory.
	var store storage.Store
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer postgresDB.Close()
		store = storage.NewPostgresStore(postgresDB)
		zapLogger.Info("using postgres document store")
	} else {
		fileStore, err := storage.NewFileStore(options.DataDir)
		if err != nil {
			zapLogger.Fatal("cannot init file store", zap.Error(err))
		}
		store = fileStore
		zapLogger.Info("using file document store", zap.String("dir", options.DataDir))
	}

	// Initialize the collection repository and seed first-use defaults.
	repo := repository.New(store)
	if err := repo.Init(context.Background()); err != nil {
		zapLogger.Fatal("cannot seed collections", zap.Error(err))
	}

	// Initialize business-logic services.
	authService := service.NewAuthService(repo, latency)
	postService := service.NewPostService(repo, latency)
	commentService := service.NewCommentService(repo, latency)
	notificationService := service.NewNotificationService(repo, latency)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	postHandler := &http.PostHandler{PostService: postService}
	commentHandler := &http.CommentHandler{CommentService: commentService}
	materialsHandler := &http.MaterialsHandler{NotificationService: notificationService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, postHandler, commentHandler, materialsHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Addr),
		zap.Duration("latency", latency),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
