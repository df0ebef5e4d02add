// internal/app/features/tasks/handler.go
package tasks

import (
	membershipstore "github.com/teamboard/teamboard/internal/app/store/memberships"
	taskstore "github.com/teamboard/teamboard/internal/app/store/tasks"
	"github.com/teamboard/teamboard/internal/app/system/auditlog"
	"github.com/teamboard/teamboard/internal/app/system/taskcache"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the JSON handlers for team task management.
type Handler struct {
	DB          *mongo.Database
	Tasks       *taskstore.Store
	Memberships *membershipstore.Store
	Activity    *auditlog.Logger
	Cache       *taskcache.Cache
	Log         *zap.Logger
}

// NewHandler creates a tasks Handler. The activity logger may be nil in
// tests; mutations then skip audit recording.
func NewHandler(db *mongo.Database, activity *auditlog.Logger, cache *taskcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Tasks:       taskstore.New(db),
		Memberships: membershipstore.New(db),
		Activity:    activity,
		Cache:       cache,
		Log:         logger,
	}
}
