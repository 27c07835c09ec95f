package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator exchanges admin credentials for a token. The rest of the
// system only depends on this interface, so the static scheme can be
// swapped for a real session mechanism without touching handlers.
type Authenticator interface {
	Login(username, password string) (string, error)
}

// StaticAuthenticator checks a single fixed credential pair and hands
// out a fixed token. No sessions, no expiry.
type StaticAuthenticator struct {
	username string
	password string
	token    string
}

func NewStaticAuthenticator(username, password, token string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, password: password, token: token}
}

func (a *StaticAuthenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return a.token, nil
}
