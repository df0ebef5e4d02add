// Package identity resolves the current request's principal. Session
// verification is owned by an upstream gateway; it forwards the
// authenticated user id in the X-User-ID header and this package turns it
// into an explicit context value. Handlers never consult ambient state —
// they read the principal from the request context.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userIDHeader    = "X-User-ID"
	requestIDHeader = "X-Request-ID"
)

// Principal is the authenticated caller of the current request.
type Principal struct {
	UserID primitive.ObjectID
}

type ctxKey int

const (
	principalKey ctxKey = iota
	requestIDKey
)

// CurrentPrincipal returns the principal and a found flag.
func CurrentPrincipal(r *http.Request) (Principal, bool) {
	p, ok := r.Context().Value(principalKey).(Principal)
	return p, ok
}

// RequestID returns the correlation id assigned by the middleware, or ""
// when the request never passed through it (nil-safe for tests).
func RequestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// WithTestPrincipal injects a principal directly, for handler tests.
func WithTestPrincipal(r *http.Request, userID primitive.ObjectID) *http.Request {
	ctx := context.WithValue(r.Context(), principalKey, Principal{UserID: userID})
	return r.WithContext(ctx)
}

// Middleware assigns a request correlation id and, when the upstream
// gateway forwarded a user id, loads the principal into context. It does
// not reject requests; use RequireUser for that.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)

		if hex := r.Header.Get(userIDHeader); hex != "" {
			if uid, err := primitive.ObjectIDFromHex(hex); err == nil {
				ctx = context.WithValue(ctx, principalKey, Principal{UserID: uid})
			}
			// A malformed id is treated the same as no id: fail closed
			// at RequireUser rather than trusting a corrupt header.
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser ensures a principal is present, answering 401 otherwise.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentPrincipal(r); !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
