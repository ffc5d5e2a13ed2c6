// Package main is the entry point for the Meibeichi dashboard server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BlackZ36/Meibeichi/internal/auth"
	"github.com/BlackZ36/Meibeichi/internal/config"
	"github.com/BlackZ36/Meibeichi/internal/database"
	"github.com/BlackZ36/Meibeichi/internal/handlers"
	"github.com/BlackZ36/Meibeichi/internal/router"
	"github.com/BlackZ36/Meibeichi/internal/session"
	"github.com/BlackZ36/Meibeichi/internal/storage"
	"github.com/BlackZ36/Meibeichi/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed starter data (no-op if the catalog already has rows).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// In non-development environments, mark session cookies HTTPS-only.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(redisClient, secureCookies)

	productStore := store.NewProductStore(db)
	categoryStore := store.NewCategoryStore(db)
	chatStore := store.NewChatStore(db)

	// Image storage is optional: without it the dashboard still works,
	// uploads just return 503.
	var uploader storage.Uploader
	switch cfg.StorageProvider {
	case "s3":
		s3Client, err := storage.NewS3(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize s3 storage", "error", err)
			os.Exit(1)
		}
		uploader = s3Client
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	case "cloudinary":
		cldClient, err := storage.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			slog.Error("failed to initialize cloudinary storage", "error", err)
			os.Exit(1)
		}
		uploader = cldClient
		slog.Info("cloudinary storage connected")
	default:
		slog.Warn("no storage provider configured, image uploads disabled")
	}

	accounts, err := auth.New(map[string]string{
		cfg.AdminUser: cfg.AdminPassword,
		cfg.ShopUser:  cfg.ShopPassword,
	})
	if err != nil {
		slog.Error("failed to initialize accounts", "error", err)
		os.Exit(1)
	}

	api := handlers.New(sessionStore, accounts, productStore, categoryStore, chatStore, uploader)
	r := router.New(sessionStore, api)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
