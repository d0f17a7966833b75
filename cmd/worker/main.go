package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/app"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/cache"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/config"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/database"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/events"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/logger"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/telemetry"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
	invEvents "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	svcs := appsvcs.New(a)
	topics := []string{invEvents.TopicChemicalAdded, invEvents.TopicUsageLogged}

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleInventoryChanged(a, svcs, topic))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleInventoryChanged returns a handler that recomputes and warms the
// derived snapshot after any write to the catalog or the ledger.
// Handlers must be idempotent — EventBus retries up to 3× on failure, and
// recomputing the snapshot twice converges on the same result.
func handleInventoryChanged(a *app.Application, svcs *appsvcs.Services, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		// Only the envelope metadata matters here; decode for logging.
		var meta struct {
			EventID      string `json:"event_id"`
			Name         string `json:"name"`
			ChemicalName string `json:"chemical_name"`
		}
		if err := json.Unmarshal(msg.Payload, &meta); err != nil {
			return err
		}
		chemical := meta.Name
		if chemical == "" {
			chemical = meta.ChemicalName
		}

		snap, err := svcs.Inventory.RefreshSnapshot(ctx)
		if err != nil {
			// Snapshot warming is best-effort; the API recomputes on a cache
			// miss, so log and succeed rather than churn through retries.
			a.Logger.WarnContext(ctx, "snapshot refresh failed",
				"topic", topic, "event_id", meta.EventID, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "snapshot cache warmed",
			"topic", topic,
			"event_id", meta.EventID,
			"chemical", chemical,
			"rows", len(snap.Rows),
			"red_alerts", len(snap.Alerts.Red),
			"yellow_alerts", len(snap.Alerts.Yellow),
		)
		return nil
	}
}
