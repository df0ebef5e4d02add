// internal/domain/models/activitylog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity action types. One entry is written per mutating task operation.
const (
	ActionCreateTask = "create_task"
	ActionUpdateTask = "update_task"
	ActionDeleteTask = "delete_task"
)

// ActivityLog is an append-only audit record owned by the team. Entries
// are never updated or deleted by this service.
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID    primitive.ObjectID `bson:"team_id" json:"team_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Action    string             `bson:"action" json:"action"`
	IPAddress string             `bson:"ip_address" json:"ip_address"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
