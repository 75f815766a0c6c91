// Package auth resolves opaque bearer tokens to an authenticated identity.
package auth

import (
	"context"
	"errors"
)

const (
	RoleHO     = "ho"
	RoleOutlet = "outlet"
)

var ErrTokenNotFound = errors.New("token not found")

// Identity is what a valid token resolves to. Handlers never see the
// credential itself, only this.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (i Identity) IsHO() bool     { return i.Role == RoleHO }
func (i Identity) IsOutlet() bool { return i.Role == RoleOutlet }

type TokenStore interface {
	Issue(ctx context.Context, id Identity) (string, error)
	Resolve(ctx context.Context, token string) (*Identity, error)
	Revoke(ctx context.Context, token string) error
}
