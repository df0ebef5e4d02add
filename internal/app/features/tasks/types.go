// internal/app/features/tasks/types.go
package tasks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/internal/app/system/access"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createRequest is the body for POST /teams/{teamID}/tasks. Create does
// not accept a status: new tasks are always pending.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// updateRequest is the body for PATCH /teams/{teamID}/tasks/{taskID}.
// Absent fields are left unchanged.
type updateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// deleteResponse is the body for DELETE /teams/{teamID}/tasks/{taskID}.
type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeAccessError maps the access-validation taxonomy onto HTTP statuses.
// Unknown errors are store failures: the cause is logged and the caller
// gets a generic operation-failed response.
func (h *Handler) writeAccessError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, access.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, access.ErrTaskNotFound.Error())
	case errors.Is(err, access.ErrTeamMismatch):
		writeError(w, http.StatusForbidden, access.ErrTeamMismatch.Error())
	case errors.Is(err, access.ErrForbidden):
		writeError(w, http.StatusForbidden, access.ErrForbidden.Error())
	default:
		h.Log.Error("task operation failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operation failed")
	}
}

// teamIDParam parses the {teamID} route parameter. A malformed id answers
// 404 and returns ok=false.
func teamIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "teamID"))
	if err != nil {
		http.NotFound(w, r)
		return primitive.NilObjectID, false
	}
	return id, true
}

// taskIDParam parses the {taskID} route parameter.
func taskIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "taskID"))
	if err != nil {
		http.NotFound(w, r)
		return primitive.NilObjectID, false
	}
	return id, true
}
