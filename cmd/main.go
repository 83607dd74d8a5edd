package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/config"
	"github.com/oksasatya/gudimart-store/internal/container"
	"github.com/oksasatya/gudimart-store/internal/infrastructure/ai"
	"github.com/oksasatya/gudimart-store/internal/infrastructure/memory"
	"github.com/oksasatya/gudimart-store/internal/router"
	"github.com/oksasatya/gudimart-store/pkg/helpers"
	"github.com/oksasatya/gudimart-store/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	store := memory.NewStore()
	if cfg.SeedSampleData {
		if err := memory.Seed(store); err != nil {
			log.Fatalf("seed sample data: %v", err)
		}
		logger.WithField("tables", store.Counts()).Info("sample data loaded")
	}

	c := &container.Container{Config: cfg, Logger: logger, Store: store}

	// Redis backs rate limiting only; without it the limiters pass through.
	if cfg.RateLimitEnabled {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		rdb, err := helpers.NewRedisClient(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			logger.WithError(err).Warn("redis unreachable; rate limits fail open until it recovers")
		}
		defer func() { _ = rdb.Close() }()
		c.Redis = rdb
	}

	if cfg.NotifyEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; content notifications disabled")
		} else {
			defer pub.Close()
			c.Rabbit = pub
		}
	}

	if cfg.OpenAIAPIKey != "" {
		c.AI = ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set; chat replies fall back and content generation is unavailable")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewEngine(c),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := serve(srv, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("server exited properly")
}

// serve runs srv until SIGINT or SIGTERM, then drains in-flight requests
// for up to ten seconds.
func serve(srv *http.Server, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Infof("server starting on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
