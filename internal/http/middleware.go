package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
)

// SessionCookieName carries the session id issued by the web tier.
const SessionCookieName = "offboard.sid"

type contextKey string

const identityKey contextKey = "identity"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// sessionPayload is the slice of the session JSON this layer reads. The
// session is established and authenticated upstream; only the tenant id is
// needed here.
type sessionPayload struct {
	TenantID string `json:"tenantId"`
}

// RequireIdentity resolves the caller's tenant/session identity from the
// session cookie and the session store, and injects it into the request
// context. Requests without a resolvable identity get 401.
func RequireIdentity(sessions core.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, ErrorParams{
					Code: http.StatusUnauthorized, ErrCode: "unauthorized",
					Err: errors.New("missing session"),
				})
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, data.ErrSessionNotFound) {
					WriteError(w, ErrorParams{
						Code: http.StatusUnauthorized, ErrCode: "unauthorized",
						Err: errors.New("session expired or unknown"),
					})
					return
				}
				WriteAppError(w, err)
				return
			}

			var payload sessionPayload
			if unmarshalErr := json.Unmarshal(sess.Data, &payload); unmarshalErr != nil || payload.TenantID == "" {
				WriteError(w, ErrorParams{
					Code: http.StatusUnauthorized, ErrCode: "unauthorized",
					Err: errors.New("session has no tenant"),
				})
				return
			}

			id := core.Identity{TenantID: payload.TenantID, SessionID: sess.SID}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
		})
	}
}

func withIdentity(ctx context.Context, id core.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity injected by RequireIdentity.
func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	id, ok := ctx.Value(identityKey).(core.Identity)
	return id, ok
}
