// internal/app/features/teams/handler.go
package teams

import (
	membershipstore "github.com/teamboard/teamboard/internal/app/store/memberships"
	taskstore "github.com/teamboard/teamboard/internal/app/store/tasks"
	teamstore "github.com/teamboard/teamboard/internal/app/store/teams"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves team summary reads.
type Handler struct {
	DB          *mongo.Database
	Teams       *teamstore.Store
	Tasks       *taskstore.Store
	Memberships *membershipstore.Store
	Log         *zap.Logger
}

// NewHandler creates a teams Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Teams:       teamstore.New(db),
		Tasks:       taskstore.New(db),
		Memberships: membershipstore.New(db),
		Log:         logger,
	}
}
