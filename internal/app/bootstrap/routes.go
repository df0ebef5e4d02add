// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	activityfeature "github.com/teamboard/teamboard/internal/app/features/activity"
	healthfeature "github.com/teamboard/teamboard/internal/app/features/health"
	tasksfeature "github.com/teamboard/teamboard/internal/app/features/tasks"
	teamsfeature "github.com/teamboard/teamboard/internal/app/features/teams"
	activitystore "github.com/teamboard/teamboard/internal/app/store/activitylogs"
	"github.com/teamboard/teamboard/internal/app/system/auditlog"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/taskcache"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup, and
// Startup have completed. Identity resolution is global middleware: the
// upstream gateway authenticates and forwards the user id, and every
// feature below reads the resulting principal from context.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	activityLogger := auditlog.New(
		activitystore.New(deps.MongoDatabase),
		logger,
		auditlog.Config{Mode: appCfg.ActivityLogMode},
	)
	cache := taskcache.New(appCfg.TaskCacheTTL)

	r := chi.NewRouter()
	r.Use(identity.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Team summary
	teamsHandler := teamsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/teams/{teamID}", teamsfeature.Routes(teamsHandler))

	// Team task management
	tasksHandler := tasksfeature.NewHandler(deps.MongoDatabase, activityLogger, cache, logger)
	r.Mount("/teams/{teamID}/tasks", tasksfeature.Routes(tasksHandler))

	// Team activity feed
	activityHandler := activityfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/teams/{teamID}/activity", activityfeature.Routes(activityHandler))

	return r, nil
}
