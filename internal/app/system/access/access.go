// Package access centralizes the team-scoping and role check that gates
// every task mutation. Keeping it in one place means every mutating entry
// point enforces the same rules, and cross-team task leakage has a single
// spot where tests can catch it.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamboard/teamboard/internal/app/policy/taskpolicy"
	membershipstore "github.com/teamboard/teamboard/internal/app/store/memberships"
	taskstore "github.com/teamboard/teamboard/internal/app/store/tasks"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Failure taxonomy. Handlers match these with errors.Is; anything else is
// a data-store failure.
var (
	// ErrTaskNotFound: no task exists for the id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTeamMismatch: the task exists but belongs to a different team
	// than the caller claimed. Blocks cross-team access on guessed ids.
	ErrTeamMismatch = errors.New("task does not belong to this team")
	// ErrForbidden: the caller's role on the team does not permit
	// managing tasks.
	ErrForbidden = errors.New("insufficient permission to manage tasks")
)

// ValidateTaskAccess confirms the task exists, belongs to the stated team,
// and that the user's role on that team permits mutation. On success it
// returns both the loaded task and the membership so callers avoid a
// second lookup. The membership may be nil only on failure paths; absence
// of a membership is reported as ErrForbidden, not as its own error.
//
// Read-only: no side effects.
func ValidateTaskAccess(
	ctx context.Context,
	tasks *taskstore.Store,
	memberships *membershipstore.Store,
	taskID, userID, teamID primitive.ObjectID,
) (models.Task, *models.TeamMember, error) {
	member, err := memberships.Find(ctx, userID, teamID)
	if err != nil {
		return models.Task{}, nil, fmt.Errorf("load membership: %w", err)
	}

	task, err := tasks.GetByID(ctx, taskID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, nil, ErrTaskNotFound
		}
		return models.Task{}, nil, fmt.Errorf("load task: %w", err)
	}

	if task.TeamID != teamID {
		return models.Task{}, nil, ErrTeamMismatch
	}

	if !taskpolicy.CanManageTasks(member) {
		return models.Task{}, nil, ErrForbidden
	}

	return task, member, nil
}
