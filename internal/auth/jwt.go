package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthenticator issues signed tokens instead of the static string.
// Activated when AUTH_JWT_SECRET is configured.
type JWTAuthenticator struct {
	username string
	password string
	secret   []byte
	expiry   time.Duration
}

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTAuthenticator(username, password, secret string) *JWTAuthenticator {
	return &JWTAuthenticator{
		username: username,
		password: password,
		secret:   []byte(secret),
		expiry:   24 * time.Hour,
	}
}

func (a *JWTAuthenticator) Login(username, password string) (string, error) {
	if username != a.username || password != a.password {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    "campuspulse",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token issued by Login.
func (a *JWTAuthenticator) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
