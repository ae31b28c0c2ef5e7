// Package portal owns the application state shared by the admin and user surfaces.
package portal

import (
	"context" // Backend calls
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping
	"sync"    // Single-writer state

	"recycling_portal/internal/domain"  // Records and transitions
	"recycling_portal/internal/session" // Current-user seam

	"github.com/sirupsen/logrus" // Structured logging
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrUnknownStructure = errors.New("pricing structure does not exist")
	ErrNoCurrentUser    = errors.New("no current user")
)

// SnapshotRepository loads and saves the whole dataset
type SnapshotRepository interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Controller holds the dataset and applies every mutation to completion, including the
// save, before any other caller can observe state.
type Controller struct {
	mu        sync.Mutex
	state     domain.Snapshot
	snapshots SnapshotRepository
	users     session.CurrentUserProvider
	newID     func() string
}

// New loads the dataset from snapshots and returns a ready controller
func New(ctx context.Context, snapshots SnapshotRepository, users session.CurrentUserProvider) (*Controller, error) {
	state, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return &Controller{
		state:     state,
		snapshots: snapshots,
		users:     users,
		newID:     domain.NewID,
	}, nil
}

// Snapshot returns a copy of the current dataset
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// commit swaps in next and persists it. A failed save keeps the in-memory state.
// Callers must hold c.mu.
func (c *Controller) commit(ctx context.Context, next domain.Snapshot, fields logrus.Fields) {
	c.state = next
	if err := c.snapshots.Save(ctx, next); err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Error("Failed to persist dataset, change kept in memory only")
		return
	}
	logrus.WithFields(fields).Info("Dataset updated")
}

// AddMetal appends a default metal price
func (c *Controller) AddMetal(ctx context.Context) domain.MetalPrice {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.newID()
	next := domain.AddMetal(c.state, id)
	c.commit(ctx, next, logrus.Fields{"op": "add_metal", "metal_id": id})
	m, _ := next.Metal(id)
	return m
}

// UpdateMetal replaces the patched fields of a metal price
func (c *Controller) UpdateMetal(ctx context.Context, id string, patch domain.MetalPatch) (domain.MetalPrice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.Metal(id); !ok {
		return domain.MetalPrice{}, ErrNotFound
	}
	next := domain.UpdateMetal(c.state, id, patch)
	c.commit(ctx, next, logrus.Fields{"op": "update_metal", "metal_id": id})
	m, _ := next.Metal(id)
	return m, nil
}

// DeleteMetal removes a metal price; unknown ids are a no-op
func (c *Controller) DeleteMetal(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commit(ctx, domain.DeleteMetal(c.state, id), logrus.Fields{"op": "delete_metal", "metal_id": id})
}

// AddStructure appends a default pricing structure
func (c *Controller) AddStructure(ctx context.Context) domain.PricingStructure {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.newID()
	next := domain.AddStructure(c.state, id)
	c.commit(ctx, next, logrus.Fields{"op": "add_structure", "structure_id": id})
	p, _ := next.Structure(id)
	return p
}

// UpdateStructure replaces the patched fields of a pricing structure
func (c *Controller) UpdateStructure(ctx context.Context, id string, patch domain.StructurePatch) (domain.PricingStructure, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.Structure(id); !ok {
		return domain.PricingStructure{}, ErrNotFound
	}
	next := domain.UpdateStructure(c.state, id, patch)
	c.commit(ctx, next, logrus.Fields{"op": "update_structure", "structure_id": id})
	p, _ := next.Structure(id)
	return p, nil
}

// DeleteStructure removes a pricing structure and clears it from every assigned user.
// It returns the ids of the users that were cleared.
func (c *Controller) DeleteStructure(ctx context.Context, id string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, cleared := domain.DeleteStructure(c.state, id)
	c.commit(ctx, next, logrus.Fields{"op": "delete_structure", "structure_id": id, "cleared_users": len(cleared)})
	return cleared
}

// AddUser appends a default user
func (c *Controller) AddUser(ctx context.Context) domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.newID()
	next := domain.AddUser(c.state, id)
	c.commit(ctx, next, logrus.Fields{"op": "add_user", "user_id": id})
	u, _ := next.User(id)
	return u
}

// UpdateUser replaces the patched fields of a user. A structure reference must resolve.
func (c *Controller) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.User(id); !ok {
		return domain.User{}, ErrNotFound
	}
	if ref := patch.PricingStructureID; ref != nil && *ref != "" {
		if _, ok := c.state.Structure(*ref); !ok {
			return domain.User{}, ErrUnknownStructure
		}
	}
	next := domain.UpdateUser(c.state, id, patch)
	c.commit(ctx, next, logrus.Fields{"op": "update_user", "user_id": id})
	u, _ := next.User(id)
	return u, nil
}

// DeleteUser removes a user; unknown ids are a no-op
func (c *Controller) DeleteUser(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commit(ctx, domain.DeleteUser(c.state, id), logrus.Fields{"op": "delete_user", "user_id": id})
}

// Admins returns the users flagged as admin
func (c *Controller) Admins() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone().Admins()
}
