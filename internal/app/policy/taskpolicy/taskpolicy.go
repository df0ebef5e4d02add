// Package taskpolicy provides the authorization predicates for task
// operations.
//
// Authorization rules:
//   - Owners can create tasks and manage (update/delete/toggle) them
//   - Members can manage tasks but cannot create them
//   - Viewers and users with no membership can do neither
//
// Creation is deliberately more restrictive than management: only the
// team owner originates tasks.
package taskpolicy

import (
	"github.com/teamboard/teamboard/internal/domain/models"
)

// CanManageTasks reports whether the membership permits updating,
// toggling, or deleting tasks on its team. A nil membership (user not on
// the team) never can.
func CanManageTasks(m *models.TeamMember) bool {
	if m == nil {
		return false
	}
	switch m.Role {
	case models.RoleOwner, models.RoleMember:
		return true
	case models.RoleViewer, models.RoleNone:
		return false
	default:
		return false
	}
}

// CanCreateTasks reports whether the membership permits creating tasks on
// its team. Owner only.
func CanCreateTasks(m *models.TeamMember) bool {
	if m == nil {
		return false
	}
	switch m.Role {
	case models.RoleOwner:
		return true
	case models.RoleMember, models.RoleViewer, models.RoleNone:
		return false
	default:
		return false
	}
}
