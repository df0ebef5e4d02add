// internal/app/features/teams/summary.go
package teams

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// summaryResponse backs the team header on the dashboard.
type summaryResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        models.Role `json:"role"`
	MemberCount int64       `json:"member_count"`
	TaskCount   int64       `json:"task_count"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HandleSummary serves GET /teams/{teamID}.
//
// The team document plus member and task counts and the caller's role.
// Any role on the team may read; nonexistent teams answer 404 before the
// membership check so a member of a deleted team is not told 403.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.CurrentPrincipal(r)

	teamID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "teamID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	team, err := h.Teams.GetByID(ctx, teamID)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	if err != nil {
		h.Log.Error("team summary: team load failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch team")
		return
	}

	member, err := h.Memberships.Find(ctx, principal.UserID, teamID)
	if err != nil {
		h.Log.Error("team summary: membership lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch team")
		return
	}
	if member == nil {
		writeError(w, http.StatusForbidden, "not a member of this team")
		return
	}

	memberCount, err := h.Memberships.CountByTeam(ctx, teamID, models.RoleNone)
	if err != nil {
		h.Log.Error("team summary: member count failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch team")
		return
	}
	taskCount, err := h.Tasks.CountByTeam(ctx, teamID)
	if err != nil {
		h.Log.Error("team summary: task count failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch team")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaryResponse{
		ID:          team.ID.Hex(),
		Name:        team.Name,
		Role:        member.Role,
		MemberCount: memberCount,
		TaskCount:   taskCount,
		CreatedAt:   team.CreatedAt,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
