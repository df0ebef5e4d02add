package tasks_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/features/tasks"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/taskcache"
	"github.com/teamboard/teamboard/internal/domain/models"
	"github.com/teamboard/teamboard/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// newTestServer mounts the task routes the way the app router does, so
// tests exercise routing, URL params, and the auth gate together.
func newTestServer(t *testing.T, cache *taskcache.Cache) (*chi.Mux, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := tasks.NewHandler(db, nil, cache, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/teams/{teamID}/tasks", tasks.Routes(handler))

	return r, testutil.NewFixtures(t, db)
}

func doJSON(t *testing.T, r http.Handler, method, path string, userID primitive.ObjectID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = identity.WithTestPrincipal(req, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func tasksPath(teamID primitive.ObjectID) string {
	return fmt.Sprintf("/teams/%s/tasks", teamID.Hex())
}

func taskPath(teamID, taskID primitive.ObjectID) string {
	return fmt.Sprintf("/teams/%s/tasks/%s", teamID.Hex(), taskID.Hex())
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) models.Task {
	t.Helper()
	var task models.Task
	if err := json.NewDecoder(rec.Body).Decode(&task); err != nil {
		t.Fatalf("failed to decode task response: %v", err)
	}
	return task
}

func TestCreate_OwnerSuccess(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID,
		`{"title":"Welcome Task","description":"First steps"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	task := decodeTask(t, rec)
	if task.Title != "Welcome Task" {
		t.Errorf("Title: got %q, want %q", task.Title, "Welcome Task")
	}
	if task.Status != models.TaskStatusPending {
		t.Errorf("Status: got %q, want %q", task.Status, models.TaskStatusPending)
	}
	if task.TeamID != team.ID {
		t.Errorf("TeamID: got %v, want %v", task.TeamID, team.ID)
	}
	if task.CreatedBy != owner.ID {
		t.Errorf("CreatedBy: got %v, want %v", task.CreatedBy, owner.ID)
	}
}

func TestCreate_IgnoresStatusInBody(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID,
		`{"title":"Sneaky","status":"completed"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if task := decodeTask(t, rec); task.Status != models.TaskStatusPending {
		t.Errorf("Status: got %q, want %q", task.Status, models.TaskStatusPending)
	}
}

func TestCreate_MemberForbidden(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	member := fixtures.CreateUser(ctx, "Member", "member@acme.test")
	fixtures.CreateMember(ctx, member.ID, team.ID, models.RoleMember)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), member.ID, `{"title":"Nope"}`)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCreate_NonMemberForbidden(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")

	rec := doJSON(t, r, "POST", tasksPath(team.ID), primitive.NewObjectID(), `{"title":"Nope"}`)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCreate_TitleRequired(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID, `{"title":"   "}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreate_TitleTooLong(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	long := strings.Repeat("x", models.MaxTaskTitleLen+1)
	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID,
		fmt.Sprintf(`{"title":"%s"}`, long))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreate_SanitizesTitle(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID,
		`{"title":"<b>Ship it</b><script>alert(1)</script>"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if task := decodeTask(t, rec); task.Title != "Ship it" {
		t.Errorf("Title: got %q, want %q", task.Title, "Ship it")
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")

	req := httptest.NewRequest("POST", tasksPath(team.ID), strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestList_EmptyTeamIsEmptyArray(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")

	rec := doJSON(t, r, "GET", tasksPath(team.ID), primitive.NewObjectID(), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body: got %q, want %q", body, "[]")
	}
}

func TestList_NewestFirst(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	// Create through the API so created_at ordering comes from the store.
	for _, title := range []string{"first", "second"} {
		rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID,
			fmt.Sprintf(`{"title":"%s"}`, title))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %q failed with %d", title, rec.Code)
		}
		time.Sleep(5 * time.Millisecond)
	}

	rec := doJSON(t, r, "GET", tasksPath(team.ID), owner.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var list []models.Task
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if list[0].Title != "second" || list[1].Title != "first" {
		t.Errorf("wrong order: got [%s %s]", list[0].Title, list[1].Title)
	}
}

func TestList_MalformedTeamID(t *testing.T) {
	r, _ := newTestServer(t, nil)

	rec := doJSON(t, r, "GET", "/teams/not-an-id/tasks", primitive.NewObjectID(), "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestList_CacheInvalidatedByCreate(t *testing.T) {
	r, fixtures := newTestServer(t, taskcache.New(time.Minute))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	// Prime the cache with the empty list.
	if rec := doJSON(t, r, "GET", tasksPath(team.ID), owner.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("list failed with %d", rec.Code)
	}

	if rec := doJSON(t, r, "POST", tasksPath(team.ID), owner.ID, `{"title":"fresh"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create failed with %d", rec.Code)
	}

	rec := doJSON(t, r, "GET", tasksPath(team.ID), owner.ID, "")
	var list []models.Task
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "fresh" {
		t.Errorf("expected the new task after invalidation, got %+v", list)
	}
}

func TestUpdate_ToggleStatusTwice(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	member := fixtures.CreateUser(ctx, "Member", "member@acme.test")
	fixtures.CreateMember(ctx, member.ID, team.ID, models.RoleMember)
	task := fixtures.CreateTask(ctx, team.ID, member.ID, "toggle me")

	rec := doJSON(t, r, "PATCH", taskPath(team.ID, task.ID), member.ID, `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first toggle: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	first := decodeTask(t, rec)
	if first.Status != models.TaskStatusCompleted {
		t.Errorf("Status: got %q, want %q", first.Status, models.TaskStatusCompleted)
	}
	if !first.UpdatedAt.After(task.UpdatedAt) {
		t.Errorf("UpdatedAt not newer after first toggle: %v vs %v", first.UpdatedAt, task.UpdatedAt)
	}

	time.Sleep(5 * time.Millisecond)

	rec = doJSON(t, r, "PATCH", taskPath(team.ID, task.ID), member.ID, `{"status":"pending"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second toggle: got %d", rec.Code)
	}
	second := decodeTask(t, rec)
	if second.Status != models.TaskStatusPending {
		t.Errorf("Status: got %q, want %q", second.Status, models.TaskStatusPending)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Errorf("UpdatedAt not newer after second toggle: %v vs %v", second.UpdatedAt, first.UpdatedAt)
	}
}

func TestUpdate_CrossTeamMismatch(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teamA := fixtures.CreateTeam(ctx, "Team A")
	teamB := fixtures.CreateTeam(ctx, "Team B")
	intruder := fixtures.CreateUser(ctx, "Intruder", "intruder@a.test")
	fixtures.CreateOwner(ctx, intruder.ID, teamA.ID)
	task := fixtures.CreateTask(ctx, teamB.ID, primitive.NewObjectID(), "team B's task")

	rec := doJSON(t, r, "PATCH", taskPath(teamA.ID, task.ID), intruder.ID, `{"status":"completed"}`)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	if !strings.Contains(rec.Body.String(), "does not belong") {
		t.Errorf("expected team-mismatch message, got %s", rec.Body.String())
	}
}

func TestUpdate_NotFound(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "PATCH", taskPath(team.ID, primitive.NewObjectID()), owner.ID, `{"status":"completed"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdate_ViewerForbidden(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	viewer := fixtures.CreateUser(ctx, "Viewer", "viewer@acme.test")
	fixtures.CreateMember(ctx, viewer.ID, team.ID, models.RoleViewer)
	task := fixtures.CreateTask(ctx, team.ID, primitive.NewObjectID(), "look, don't touch")

	rec := doJSON(t, r, "PATCH", taskPath(team.ID, task.ID), viewer.ID, `{"status":"completed"}`)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)
	task := fixtures.CreateTask(ctx, team.ID, owner.ID, "status check")

	rec := doJSON(t, r, "PATCH", taskPath(team.ID, task.ID), owner.ID, `{"status":"archived"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdate_EmptyTitleRejected(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)
	task := fixtures.CreateTask(ctx, team.ID, owner.ID, "has a title")

	rec := doJSON(t, r, "PATCH", taskPath(team.ID, task.ID), owner.ID, `{"title":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDelete_ThenListEmpty(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	member := fixtures.CreateUser(ctx, "Member", "member@acme.test")
	fixtures.CreateMember(ctx, member.ID, team.ID, models.RoleMember)
	task := fixtures.CreateTask(ctx, team.ID, member.ID, "short-lived")

	rec := doJSON(t, r, "DELETE", taskPath(team.ID, task.ID), member.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"deleted":true`) {
		t.Errorf("expected deleted:true, got %s", rec.Body.String())
	}

	rec = doJSON(t, r, "GET", tasksPath(team.ID), member.ID, "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty list after delete, got %q", body)
	}
}

func TestDelete_NotFound(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := fixtures.CreateTeam(ctx, "Acme")
	owner := fixtures.CreateUser(ctx, "Owner", "owner@acme.test")
	fixtures.CreateOwner(ctx, owner.ID, team.ID)

	rec := doJSON(t, r, "DELETE", taskPath(team.ID, primitive.NewObjectID()), owner.ID, "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDelete_CrossTeamMismatch(t *testing.T) {
	r, fixtures := newTestServer(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teamA := fixtures.CreateTeam(ctx, "Team A")
	teamB := fixtures.CreateTeam(ctx, "Team B")
	intruder := fixtures.CreateUser(ctx, "Intruder", "intruder@a.test")
	fixtures.CreateOwner(ctx, intruder.ID, teamA.ID)
	task := fixtures.CreateTask(ctx, teamB.ID, primitive.NewObjectID(), "protected")

	rec := doJSON(t, r, "DELETE", taskPath(teamA.ID, task.ID), intruder.ID, "")

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}

	// The task must still exist.
	count, err := fixtures.DB().Collection("tasks").CountDocuments(ctx, bson.M{"_id": task.ID})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected task to survive, count=%d", count)
	}
}
