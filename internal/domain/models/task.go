// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses. A task is either open (pending) or done (completed);
// there is no in-between state and no soft delete.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// MaxTaskTitleLen bounds the title length after sanitization.
const MaxTaskTitleLen = 200

// Task is a unit of work scoped to a single team.
//
// NOTE:
//   - TeamID never changes after creation; moving a task between teams
//     is not a supported operation.
//   - Deletion is physical. There is no deleted_at.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID      primitive.ObjectID `bson:"team_id" json:"team_id"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"created_by"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"` // pending | completed

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidTaskStatus reports whether s is one of the task status values.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}
