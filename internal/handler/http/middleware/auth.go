package middleware

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token. It runs after
// jwtauth.Verifier, which leaves the verification result in the context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			switch {
			case errors.Is(err, jwtauth.ErrNoTokenFound):
				response.HandleError(w, auth.ErrMissingToken)
				return
			case errors.Is(err, jwtauth.ErrExpired):
				response.HandleError(w, auth.ErrTokenExpired)
				return
			case err != nil, token == nil:
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if userID, _ := claims["user_id"].(string); userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID returns the user_id claim of the verified token, or "".
func UserID(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	userID, _ := claims["user_id"].(string)
	return userID
}
