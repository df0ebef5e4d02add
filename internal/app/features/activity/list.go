// internal/app/features/activity/list.go
package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// feedItem is one activity entry with the actor's name resolved.
type feedItem struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
}

// HandleList serves GET /teams/{teamID}/activity.
//
// Recent entries for the team, newest first, with actor names joined from
// the users collection. Any role on the team — including viewer — may
// read the feed; non-members get 403.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	principal, _ := identity.CurrentPrincipal(r)

	teamID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "teamID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	limit := int64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n > maxLimit {
			n = maxLimit
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Memberships.Find(ctx, principal.UserID, teamID)
	if err != nil {
		h.Log.Error("activity feed: membership lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch activity")
		return
	}
	if member == nil {
		writeError(w, http.StatusForbidden, "not a member of this team")
		return
	}

	entries, err := h.Logs.RecentByTeam(ctx, teamID, limit)
	if err != nil {
		h.Log.Error("activity feed: query failed", zap.String("team_id", teamID.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch activity")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	seen := make(map[primitive.ObjectID]bool, len(entries))
	for _, e := range entries {
		if !seen[e.UserID] {
			seen[e.UserID] = true
			ids = append(ids, e.UserID)
		}
	}
	names, err := h.Users.NamesByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("activity feed: name join failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch activity")
		return
	}

	items := make([]feedItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, feedItem{
			ID:        e.ID.Hex(),
			Action:    e.Action,
			UserID:    e.UserID.Hex(),
			UserName:  names[e.UserID],
			IPAddress: e.IPAddress,
			Timestamp: e.Timestamp,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
