// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strings"

	activitylogs "github.com/teamboard/teamboard/internal/app/store/activitylogs"
	"github.com/teamboard/teamboard/internal/app/system/identity"
	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Config holds activity logging configuration.
type Config struct {
	// Mode controls where task activity entries go.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only),
	// "off" (disabled).
	Mode string
}

// Logger records team activity entries. It is fire-and-forget: Record
// never returns an error and a failed write can never fail or roll back
// the task operation that triggered it.
type Logger struct {
	store  *activitylogs.Store
	zapLog *zap.Logger
	config Config
}

// New creates an activity Logger.
func New(store *activitylogs.Store, zapLog *zap.Logger, config Config) *Logger {
	if config.Mode == "" {
		config.Mode = "all"
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// ClientIP resolves a best-effort source IP for the request: the first
// X-Forwarded-For hop, then X-Real-IP, then a loopback default. The
// loopback fallback matches direct (unproxied) local calls.
func ClientIP(r *http.Request) string {
	if r != nil {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if i := strings.IndexByte(xff, ','); i >= 0 {
				return strings.TrimSpace(xff[:i])
			}
			return strings.TrimSpace(xff)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}
	return "127.0.0.1"
}

// Record writes one activity entry for a mutating task operation. Nil
// loggers are a no-op so tests can pass nil. Any internal failure is
// logged and discarded.
func (l *Logger) Record(ctx context.Context, r *http.Request, teamID, userID primitive.ObjectID, action string) {
	if l == nil || l.config.Mode == "off" {
		return
	}

	entry := models.ActivityLog{
		TeamID:    teamID,
		UserID:    userID,
		Action:    action,
		IPAddress: ClientIP(r),
		RequestID: identity.RequestID(r),
	}

	if l.config.Mode == "all" || l.config.Mode == "log" {
		l.zapLog.Info("activity",
			zap.String("action", entry.Action),
			zap.String("team_id", teamID.Hex()),
			zap.String("user_id", userID.Hex()),
			zap.String("ip", entry.IPAddress),
			zap.String("request_id", entry.RequestID),
		)
	}

	if l.config.Mode == "all" || l.config.Mode == "db" {
		if err := l.store.Append(ctx, entry); err != nil {
			l.zapLog.Error("failed to store activity entry",
				zap.Error(err),
				zap.String("action", action),
			)
		}
	}
}
