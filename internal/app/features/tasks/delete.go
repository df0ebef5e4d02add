// internal/app/features/tasks/delete.go
package tasks

import (
	"context"
	"net/http"

	"github.com/teamboard/teamboard/internal/app/system/access"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.uber.org/zap"
)

// HandleDelete serves DELETE /teams/{teamID}/tasks/{taskID}.
//
// Physical removal; there is no soft delete. Owners and members of the
// task's team may delete. Deleting a nonexistent id answers 404 and
// mutates nothing.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.CurrentPrincipal(r)

	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, _, err := access.ValidateTaskAccess(ctx, h.Tasks, h.Memberships, taskID, principal.UserID, teamID); err != nil {
		h.writeAccessError(w, "delete", err)
		return
	}

	if _, err := h.Tasks.Delete(ctx, taskID); err != nil {
		h.Log.Error("delete task failed", zap.String("task_id", taskID.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operation failed")
		return
	}

	h.Activity.Record(ctx, r, teamID, principal.UserID, models.ActionDeleteTask)
	h.Cache.Invalidate(teamID)

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: true})
}
