// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body limits). AppConfig is everything specific to
// this service: the Mongo connection, activity logging mode, cache TTL,
// and handler timeout overrides.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Activity logging mode: "all" (db+log), "db", "log", or "off"
	ActivityLogMode string

	// Team task-list cache TTL; zero disables the cache
	TaskCacheTTL time.Duration

	// Handler timeout overrides (zero keeps defaults)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
