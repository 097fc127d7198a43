package jwt

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, email string, roles []user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID string, email string, roles []user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	roleClaims := make([]string, 0, len(roles))
	for _, r := range roles {
		roleClaims = append(roleClaims, string(r))
	}

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"roles":   roleClaims,
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RolesFromClaims reads the "roles" claim. Decoded tokens carry it as
// []interface{}; claims built in-process may carry []string.
func RolesFromClaims(claims map[string]interface{}) []user.Role {
	var roles []user.Role
	switch v := claims["roles"].(type) {
	case []interface{}:
		for _, r := range v {
			if s, ok := r.(string); ok {
				roles = append(roles, user.Role(s))
			}
		}
	case []string:
		for _, s := range v {
			roles = append(roles, user.Role(s))
		}
	}
	return roles
}
