package jwt

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claim names carried by access tokens.
const (
	ClaimUserID = "id"
	ClaimEmail  = "email"
	ClaimRole   = "role"
)

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	clock                     clock.Clock
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, clk clock.Clock) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		clock:                     clk,
	}
}

// GenerateAccessToken signs a token for u. There is no refresh token and no
// revocation: the token is valid until it expires.
func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, fmt.Errorf("parse access token lifetime: %w", err)
	}
	now := j.clock.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		ClaimUserID: u.ID,
		ClaimEmail:  u.Email,
		ClaimRole:   string(u.Role),
		"iat":       now.Unix(),
		"exp":       expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IdentityFromClaims builds the caller identity from verified token claims.
func IdentityFromClaims(claims map[string]interface{}) (user.Identity, bool) {
	id, _ := claims[ClaimUserID].(string)
	email, _ := claims[ClaimEmail].(string)
	role, _ := claims[ClaimRole].(string)
	if id == "" || !user.Role(role).IsValid() {
		return user.Identity{}, false
	}
	return user.Identity{UserID: id, Email: email, Role: user.Role(role)}, true
}
