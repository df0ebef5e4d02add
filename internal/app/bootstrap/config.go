// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for teamboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, activity_log, etc.
//   - Environment variables: TEAMBOARD_MONGO_URI, TEAMBOARD_ACTIVITY_LOG, etc.
//   - Command-line flags: --mongo_uri, --activity_log, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "teamboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Activity logging
	{Name: "activity_log", Default: "all", Desc: "Task activity logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Task list cache
	{Name: "task_cache_ttl", Default: "30s", Desc: "Team task-list cache TTL (0 disables the cache)"},

	// Handler timeouts
	{Name: "timeout_short", Default: "", Desc: "Override for short handler timeout (e.g., 5s)"},
	{Name: "timeout_medium", Default: "", Desc: "Override for medium handler timeout (e.g., 10s)"},
	{Name: "timeout_long", Default: "", Desc: "Override for long handler timeout (e.g., 30s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TEAMBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ActivityLogMode: appValues.String("activity_log"),

		TaskCacheTTL: appValues.Duration("task_cache_ttl", 30*time.Second),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
		TimeoutLong:   appValues.Duration("timeout_long", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// teamboard validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and rejects unknown
// activity logging modes so a typo cannot silently disable the audit
// trail.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.ActivityLogMode {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("activity_log must be 'all', 'db', 'log', or 'off' (got %q)", appCfg.ActivityLogMode)
	}

	return nil
}
