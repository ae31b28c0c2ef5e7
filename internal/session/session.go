// Package session decides which user the user surface acts as.
//
// The demo selector stored in the key-value service stands in for real authentication;
// a login-backed CurrentUserProvider can replace it without touching pricing or admin code.
package session

import (
	"context"
	"fmt"

	"recycling_portal/internal/domain"
	"recycling_portal/internal/store"
)

// CurrentUserProvider remembers the id of the user the user surface acts as
type CurrentUserProvider interface {
	// CurrentUserID returns the remembered id, or "" when none is stored
	CurrentUserID(ctx context.Context) (string, error)
	// SetCurrentUserID remembers id; an empty id forgets the choice
	SetCurrentUserID(ctx context.Context, id string) error
}

// KVCurrentUser keeps the current user id under its own key, independent of the dataset
type KVCurrentUser struct {
	kv  store.KV
	key string
}

// NewKVCurrentUser returns a provider storing the id under key
func NewKVCurrentUser(kv store.KV, key string) *KVCurrentUser {
	if key == "" {
		key = store.DefaultCurrentUserKey
	}
	return &KVCurrentUser{kv: kv, key: key}
}

func (p *KVCurrentUser) CurrentUserID(ctx context.Context) (string, error) {
	id, _, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return "", fmt.Errorf("load current user: %w", err)
	}
	return id, nil
}

func (p *KVCurrentUser) SetCurrentUserID(ctx context.Context, id string) error {
	var err error
	if id == "" {
		err = p.kv.Delete(ctx, p.key)
	} else {
		err = p.kv.Set(ctx, p.key, id)
	}
	if err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}

// ResolveCurrentUser returns the stored user if it still exists, otherwise the first
// non-admin user in collection order, otherwise nil.
func ResolveCurrentUser(s domain.Snapshot, storedID string) *domain.User {
	if u, ok := s.User(storedID); ok {
		return &u
	}
	for _, u := range s.Users {
		if !u.IsAdmin {
			return &u
		}
	}
	return nil
}

// SelectableUsers lists the users the demo selector offers
func SelectableUsers(s domain.Snapshot) []domain.User {
	return s.NonAdmins()
}
