package server

import (
	"context"
	"crypto/subtle"
)

// Role is the access level resolved from an API key
type Role int

const (
	RoleNone Role = iota
	RoleViewer
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	}
	return "none"
}

// Keyring maps configured API keys to roles. Higher roles satisfy lower
// requirements, so the admin key works everywhere.
type Keyring struct {
	adminKey   string
	managerKey string
	viewerKey  string
}

// NewKeyring creates a Keyring. Empty keys disable the corresponding role.
func NewKeyring(adminKey, managerKey, viewerKey string) *Keyring {
	return &Keyring{
		adminKey:   adminKey,
		managerKey: managerKey,
		viewerKey:  viewerKey,
	}
}

// Resolve returns the role for a provided key using constant-time
// comparison against every configured key.
func (k *Keyring) Resolve(providedKey string) Role {
	if providedKey == "" {
		return RoleNone
	}

	// All comparisons always run so timing does not reveal which key
	// matched.
	isAdmin := constantTimeEqual(providedKey, k.adminKey)
	isManager := constantTimeEqual(providedKey, k.managerKey)
	isViewer := constantTimeEqual(providedKey, k.viewerKey)

	switch {
	case isAdmin:
		return RoleAdmin
	case isManager:
		return RoleManager
	case isViewer:
		return RoleViewer
	}
	return RoleNone
}

func constantTimeEqual(a, b string) bool {
	if b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

type roleContextKey struct{}

// WithRole stores the resolved role in the context
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleContextKey{}, role)
}

// RoleFromContext returns the role stored by the auth middleware
func RoleFromContext(ctx context.Context) Role {
	if role, ok := ctx.Value(roleContextKey{}).(Role); ok {
		return role
	}
	return RoleNone
}
