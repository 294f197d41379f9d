package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/neumorstudio/plantillas-api/internal/config"
	"github.com/neumorstudio/plantillas-api/internal/email"
	"github.com/neumorstudio/plantillas-api/internal/repository/postgres"
	"github.com/neumorstudio/plantillas-api/internal/service/notification"
	internalworker "github.com/neumorstudio/plantillas-api/internal/worker"
	"github.com/neumorstudio/plantillas-api/pkg/logger"
	"github.com/neumorstudio/plantillas-api/pkg/messaging/redis"
	"github.com/neumorstudio/plantillas-api/pkg/metrics"
	"github.com/neumorstudio/plantillas-api/pkg/worker"
)

// workerConfig is read straight from the environment; the worker runs
// in containers where a config file is not mounted.
type workerConfig struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	RedisURL    string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"1025"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"no-reply@plantillas.local"`

	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	HealthPort   int           `envconfig:"HEALTH_PORT" default:"8081"`
}

func main() {
	var cfg workerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load worker configuration")
	}

	l := logger.NewLogger(nil)

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		l.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(redis.Config{URL: cfg.RedisURL}, l.Zerolog())
	if err != nil {
		l.Fatal(err, "failed to connect to Redis")
	}
	defer broker.Close()

	outboxRepo := postgres.NewOutboxRepository(db)

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.OutboxProcessorConfig{
			BatchSize:    cfg.BatchSize,
			PollInterval: cfg.PollInterval,
		},
		l,
		metrics.NewMetrics("plantillas", "worker"),
	)

	sender := email.NewSMTPSender(config.EmailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	notifier := internalworker.NewNotifier(broker, notification.NewService(sender, l), l)

	setupHealthCheck(cfg.HealthPort, l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		l.Info("shutting down worker")
		cancel()
	}()

	go func() {
		if err := notifier.Start(ctx); err != nil {
			l.Fatal(err, "notifier failed")
		}
	}()

	processor.Start(ctx)
}

func setupHealthCheck(port int, l *logger.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
			l.Error(err, "health check server failed")
		}
	}()
}
