// internal/app/features/activity/handler.go
package activity

import (
	activitystore "github.com/teamboard/teamboard/internal/app/store/activitylogs"
	membershipstore "github.com/teamboard/teamboard/internal/app/store/memberships"
	userstore "github.com/teamboard/teamboard/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the team activity feed.
type Handler struct {
	DB          *mongo.Database
	Logs        *activitystore.Store
	Memberships *membershipstore.Store
	Users       *userstore.Store
	Log         *zap.Logger
}

// NewHandler creates an activity Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Logs:        activitystore.New(db),
		Memberships: membershipstore.New(db),
		Users:       userstore.New(db),
		Log:         logger,
	}
}
