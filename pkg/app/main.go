package app

import (
	"github.com/ilonagrl/chemical-inventory-manager/pkg/cache"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/database"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/events"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service BookRoutes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler, so use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "logging usage", "chemical", name)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
