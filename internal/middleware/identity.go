package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
)

const IdentityKey ContextKey = "identity"

// TokenCookie is read when no Authorization header is sent.
const TokenCookie = "token"

// InjectIdentity stores the caller in the request context.
func InjectIdentity(req *http.Request, id service.Identity) *http.Request {
	ctx := context.WithValue(req.Context(), IdentityKey, id)
	return req.WithContext(ctx)
}

// IdentityFrom returns the caller stored by WithIdentity, Anonymous if none.
func IdentityFrom(ctx context.Context) service.Identity {
	if id, ok := ctx.Value(IdentityKey).(service.Identity); ok && id != nil {
		return id
	}
	return service.Anonymous{}
}

// WithIdentity resolves the bearer token of the request into an Identity.
// Requests without a usable token continue as Anonymous.
func WithIdentity(auth service.AuthIface, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.Identify(r.Context(), bearerToken(r))
			if err != nil {
				logger.Error("cannot resolve identity", zap.String("request_id", RequestID(r.Context())), zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, InjectIdentity(r, id))
		})
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := service.UserIDOf(IdentityFrom(r.Context())); !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, found := strings.Cut(h, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}
