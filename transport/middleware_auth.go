package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/supply-chain/application/user"
	"github.com/muhammadheryan/supply-chain/constant"
	utilsContext "github.com/muhammadheryan/supply-chain/utils/context"
	"github.com/muhammadheryan/supply-chain/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (like /login, /register, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			authedUser, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, authedUser.ID)
			ctx = context.WithValue(ctx, constant.UserNameKey, authedUser.Name)
			ctx = context.WithValue(ctx, constant.UserRoleKey, authedUser.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}

	return false
}

// requireRole writes a forbidden response and returns false unless the
// request's role is one of the allowed ones.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...string) bool {
	role, ok := utilsContext.GetUserRole(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return false
	}
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	writeError(w, errors.SetCustomError(constant.ErrForbidden))
	return false
}
