package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeam creates a test team with the given name.
func (f *Fixtures) CreateTeam(ctx context.Context, name string) models.Team {
	f.t.Helper()

	now := time.Now().UTC()
	team := models.Team{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// CreateUser creates a test user with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateMember adds a user to a team with the given role.
func (f *Fixtures) CreateMember(ctx context.Context, userID, teamID primitive.ObjectID, role models.Role) models.TeamMember {
	f.t.Helper()

	member := models.TeamMember{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TeamID:    teamID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("team_members").InsertOne(ctx, member); err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return member
}

// CreateOwner adds a user to a team as its owner.
func (f *Fixtures) CreateOwner(ctx context.Context, userID, teamID primitive.ObjectID) models.TeamMember {
	return f.CreateMember(ctx, userID, teamID, models.RoleOwner)
}

// CreateTask creates a pending task on the given team.
func (f *Fixtures) CreateTask(ctx context.Context, teamID, createdBy primitive.ObjectID, title string) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:        primitive.NewObjectID(),
		TeamID:    teamID,
		CreatedBy: createdBy,
		Title:     title,
		Status:    models.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTaskWithStatus creates a task with an explicit status.
func (f *Fixtures) CreateTaskWithStatus(ctx context.Context, teamID, createdBy primitive.ObjectID, title, status string) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:        primitive.NewObjectID(),
		TeamID:    teamID,
		CreatedBy: createdBy,
		Title:     title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateActivity appends an activity log entry for a team.
func (f *Fixtures) CreateActivity(ctx context.Context, teamID, userID primitive.ObjectID, action string) models.ActivityLog {
	f.t.Helper()

	entry := models.ActivityLog{
		ID:        primitive.NewObjectID(),
		TeamID:    teamID,
		UserID:    userID,
		Action:    action,
		IPAddress: "127.0.0.1",
		Timestamp: time.Now().UTC(),
	}

	if _, err := f.db.Collection("activity_logs").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("failed to create test activity entry: %v", err)
	}
	return entry
}
