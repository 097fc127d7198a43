package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	errorReporter
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService, recorder errorlog.Recorder) AuthHandler {
	return &AuthHandlerImpl{
		errorReporter: errorReporter{recorder: recorder},
		authService:   authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if !decodeJSON(w, r, &loginReq, false) {
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	slog.Info("User logged in", "user_id", tokenResponse.User.ID)
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// Me implements AuthHandler. It echoes the claims of the presented token.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		a.fail(w, r, auth.ErrInvalidToken)
		return
	}

	me := auth.MeResponse{Roles: []string{}}
	me.UserID, _ = claims["user_id"].(string)
	me.Email, _ = claims["email"].(string)
	for _, role := range jwt.RolesFromClaims(claims) {
		me.Roles = append(me.Roles, string(role))
	}
	switch exp := claims["exp"].(type) {
	case time.Time:
		me.ExpiresAt = exp.Unix()
	case float64:
		me.ExpiresAt = int64(exp)
	case int64:
		me.ExpiresAt = exp
	}

	response.Success(w, me)
}
