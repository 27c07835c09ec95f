package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	StaticToken   string
	JWTSecret     string // when set, login issues signed JWTs instead of the static token
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		username := os.Getenv("ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "password123"
		}
		token := os.Getenv("ADMIN_STATIC_TOKEN")
		if token == "" {
			token = "fake-admin-token"
		}
		authConfig = &AuthConfig{
			AdminUsername: username,
			AdminPassword: password,
			StaticToken:   token,
			JWTSecret:     os.Getenv("AUTH_JWT_SECRET"),
		}
	})
	return authConfig
}
