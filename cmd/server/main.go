package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/avesong/go-api-skeleton/docs" // generated swagger docs
	"github.com/avesong/go-api-skeleton/internal/config"
	"github.com/avesong/go-api-skeleton/internal/database"
	"github.com/avesong/go-api-skeleton/internal/handler"
	"github.com/avesong/go-api-skeleton/internal/logger"
	"github.com/avesong/go-api-skeleton/internal/middleware"
	"github.com/avesong/go-api-skeleton/internal/router"
)

//	@title			Go API Skeleton
//	@version		1.0
//	@description	Minimal backend service skeleton: validated configuration, MongoDB bootstrap, uniform response envelope, global rate limiting and system endpoints.
//	@BasePath		/
func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	rlCfg := config.LoadRateLimitConfig()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg)
	if err != nil {
		zlog.Fatal("mongodb connect failed", zap.Error(err))
	}
	zlog.Info("connected to mongodb", zap.String("database", cfg.MongoDB))

	rdb := config.NewRedisClient()
	if rdb != nil {
		zlog.Info("redis available, rate limiter state is shared", zap.String("addr", rdb.Options().Addr))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(zlog)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zlog))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.NewGlobalRateLimiter(rlCfg, rdb, zlog))

	system := handler.NewSystemHandler(cfg, mongoClient)
	router.RegisterRoutes(e, system)

	go func() {
		addr := ":" + cfg.Port
		zlog.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("http shutdown", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx, mongoClient); err != nil {
		zlog.Error("mongodb disconnect", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
