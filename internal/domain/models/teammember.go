// internal/domain/models/teammember.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a team member's permission level. It is a closed enumeration:
// the zero value RoleNone stands for "no membership at all", which keeps
// absent-member handling explicit instead of leaning on an undefined role
// behaving like a viewer.
type Role string

const (
	RoleNone   Role = ""
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// ParseRole maps a stored role string onto the closed enum. Unknown or
// empty strings collapse to RoleNone so a garbled document can never grant
// permissions.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner
	case RoleMember:
		return RoleMember
	case RoleViewer:
		return RoleViewer
	default:
		return RoleNone
	}
}

// TeamMember is the authoritative join between users and teams.
// Exactly one document per (user_id, team_id); the role determines the
// user's permission level for every task operation on that team.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	TeamID    primitive.ObjectID `bson:"team_id" json:"team_id"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
