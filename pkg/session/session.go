// Package session keeps the authenticated user record and its token claims.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foodhubapp/foodhub-client/internal/models"
	"github.com/foodhubapp/foodhub-client/internal/storage"
)

const userKey = "user"

var ErrNoSession = errors.New("no active session")

// Authenticator is the slice of the API client the session layer needs.
type Authenticator interface {
	Login(ctx context.Context, email, password, role string) (*models.User, error)
}

type Manager struct {
	kv  storage.Store
	api Authenticator
}

func NewManager(kv storage.Store, api Authenticator) *Manager {
	return &Manager{kv: kv, api: api}
}

// Login authenticates and persists the profile under the "user" key so the
// session survives a restart.
func (m *Manager) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	user, err := m.api.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := m.kv.Set(userKey, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return user, nil
}

// Current returns the persisted session, or ErrNoSession.
func (m *Manager) Current() (*models.User, error) {
	var user models.User
	ok, err := m.kv.Get(userKey, &user)
	if err != nil {
		return nil, err
	}
	if !ok || user.ID == "" {
		return nil, ErrNoSession
	}
	return &user, nil
}

func (m *Manager) Logout() error {
	return m.kv.Delete(userKey)
}

// Claims are the token fields the client reads. The signature belongs to
// the server; the client only inspects role and expiry.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token without verifying its signature. Only the
// server holds the signing secret; the client treats the claims as display
// data, never as an authorization decision.
func ParseClaims(token string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return &claims, nil
}

// Expired reports whether the token's exp claim has passed. A token without
// an exp claim is treated as live.
func Expired(token string, now time.Time) bool {
	claims, err := ParseClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
