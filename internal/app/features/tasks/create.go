// internal/app/features/tasks/create.go
package tasks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/teamboard/teamboard/internal/app/policy/taskpolicy"
	"github.com/teamboard/teamboard/internal/app/system/htmlsanitize"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate serves POST /teams/{teamID}/tasks.
//
// Owner-only: creation is deliberately more restrictive than management.
// The new task always starts pending regardless of anything the caller
// sends; the request type has no status field at all.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.CurrentPrincipal(r)

	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title := htmlsanitize.Plain(req.Title)
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(title) > models.MaxTaskTitleLen {
		writeError(w, http.StatusBadRequest, "title is too long")
		return
	}
	description := htmlsanitize.Sanitize(req.Description)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	member, err := h.Memberships.Find(ctx, principal.UserID, teamID)
	if err != nil {
		h.Log.Error("create task: membership lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operation failed")
		return
	}
	if !taskpolicy.CanCreateTasks(member) {
		writeError(w, http.StatusForbidden, "only the team owner can create tasks")
		return
	}

	task, err := h.Tasks.Create(ctx, models.Task{
		TeamID:      teamID,
		CreatedBy:   principal.UserID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		h.Log.Error("create task failed", zap.String("team_id", teamID.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operation failed")
		return
	}

	h.Activity.Record(ctx, r, teamID, principal.UserID, models.ActionCreateTask)
	h.Cache.Invalidate(teamID)

	writeJSON(w, http.StatusCreated, task)
}
