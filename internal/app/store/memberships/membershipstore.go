// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_members")}
}

var errBadRole = errors.New(`role must be "owner", "member", or "viewer"`)

var ErrDuplicateMembership = errors.New("user is already a member of this team")

// EnsureIndexes enforces one membership document per (user, team).
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "team_id", Value: 1}},
			Options: options.Index().SetName("idx_members_user_team").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "team_id", Value: 1}},
			Options: options.Index().SetName("idx_members_team"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Find returns the membership for (userID, teamID), or nil when the user
// is not on the team. Absence is not an error: permission predicates treat
// a nil membership as "no permission".
func (s *Store) Find(ctx context.Context, userID, teamID primitive.ObjectID) (*models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "team_id": teamID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Add creates a membership with the given role.
func (s *Store) Add(ctx context.Context, userID, teamID primitive.ObjectID, role models.Role) (models.TeamMember, error) {
	switch role {
	case models.RoleOwner, models.RoleMember, models.RoleViewer:
	default:
		return models.TeamMember{}, errBadRole
	}

	m := models.TeamMember{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TeamID:    teamID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.TeamMember{}, ErrDuplicateMembership
		}
		return models.TeamMember{}, err
	}
	return m, nil
}

// Remove deletes the membership document for (userID, teamID).
func (s *Store) Remove(ctx context.Context, userID, teamID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID, "team_id": teamID})
	return err
}

// ListByTeam returns all memberships for a team.
func (s *Store) ListByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMember, error) {
	cur, err := s.c.Find(ctx, bson.M{"team_id": teamID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CountByTeam returns the count of memberships for a team, optionally
// filtered by role. RoleNone counts all memberships.
func (s *Store) CountByTeam(ctx context.Context, teamID primitive.ObjectID, role models.Role) (int64, error) {
	filter := bson.M{"team_id": teamID}
	if role != models.RoleNone {
		filter["role"] = role
	}
	return s.c.CountDocuments(ctx, filter)
}
