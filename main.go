package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"

	"github.com/nitroxskg-dev/Real-Estate/config"
	"github.com/nitroxskg-dev/Real-Estate/handlers"
	"github.com/nitroxskg-dev/Real-Estate/notify"
	"github.com/nitroxskg-dev/Real-Estate/routes"
	"github.com/nitroxskg-dev/Real-Estate/store"
	"github.com/nitroxskg-dev/Real-Estate/utils"
)

const cacheTTL = 60 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		slog.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("failed to disconnect mongo", "error", err)
		}
	}()

	db := store.NewMongoStore(client.Database(cfg.Mongo.DBName))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	cache := utils.NewCache(redisClient, cacheTTL)

	var mailer notify.Mailer
	if cfg.Email.APIKey != "" {
		mailer = notify.NewResendMailer(cfg.Email.APIKey)
	}
	notifier := notify.NewNotifier(mailer, cfg.Email.SenderEmail, cfg.Email.NotificationEmail)
	defer notifier.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowCredentials: true,
	}))

	pc := handlers.NewPropertyController(db, cache)
	ic := handlers.NewInquiryController(db, notifier)
	sc := handlers.NewSeedController(db, cache)
	routes.RegisterRoutes(e, pc, ic, sc)

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
	})
	slog.SetDefault(slog.New(handler))
}
