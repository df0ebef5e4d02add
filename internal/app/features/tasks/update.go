// internal/app/features/tasks/update.go
package tasks

import (
	"context"
	"encoding/json"
	"net/http"

	taskstore "github.com/teamboard/teamboard/internal/app/store/tasks"
	"github.com/teamboard/teamboard/internal/app/system/access"
	"github.com/teamboard/teamboard/internal/app/system/htmlsanitize"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUpdate serves PATCH /teams/{teamID}/tasks/{taskID}.
//
// Applies only the supplied fields (title, description, status) and always
// refreshes the updated timestamp. Owners and members of the task's team
// may update; the access validator enforces existence, team scope, and
// role before anything is written.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.CurrentPrincipal(r)

	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := taskstore.Patch{}
	if req.Title != nil {
		title := htmlsanitize.Plain(*req.Title)
		if title == "" {
			writeError(w, http.StatusBadRequest, "title cannot be empty")
			return
		}
		if len(title) > models.MaxTaskTitleLen {
			writeError(w, http.StatusBadRequest, "title is too long")
			return
		}
		patch.Title = &title
	}
	if req.Description != nil {
		description := htmlsanitize.Sanitize(*req.Description)
		patch.Description = &description
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			writeError(w, http.StatusBadRequest, `status must be "pending" or "completed"`)
			return
		}
		patch.Status = req.Status
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, _, err := access.ValidateTaskAccess(ctx, h.Tasks, h.Memberships, taskID, principal.UserID, teamID); err != nil {
		h.writeAccessError(w, "update", err)
		return
	}

	task, err := h.Tasks.Update(ctx, taskID, patch)
	if err != nil {
		h.Log.Error("update task failed", zap.String("task_id", taskID.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operation failed")
		return
	}

	h.Activity.Record(ctx, r, teamID, principal.UserID, models.ActionUpdateTask)
	h.Cache.Invalidate(teamID)

	writeJSON(w, http.StatusOK, task)
}
