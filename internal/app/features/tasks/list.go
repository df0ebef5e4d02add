// internal/app/features/tasks/list.go
package tasks

import (
	"context"
	"net/http"

	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleList serves GET /teams/{teamID}/tasks.
//
// Returns every task for the team, most recently created first. Full team
// scope only: no pagination and no status filter. A team with zero tasks
// answers 200 with an empty array. Reads are not role-gated; any
// authenticated principal may list.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	if cached, ok := h.Cache.Get(teamID); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Tasks.ListByTeam(ctx, teamID)
	if err != nil {
		h.Log.Error("list tasks failed", zap.String("team_id", teamID.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	h.Cache.Set(teamID, list)
	writeJSON(w, http.StatusOK, list)
}
