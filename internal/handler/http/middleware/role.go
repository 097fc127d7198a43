package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole lets the request through when the token carries at least one
// of the allowed roles.
func RequireRole(allowed ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if !user.HasAnyRole(jwt.RolesFromClaims(claims), allowed...) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
