package portal

import (
	"context"

	"recycling_portal/internal/domain"
	"recycling_portal/internal/pricing"
	"recycling_portal/internal/session"

	"github.com/sirupsen/logrus"
)

// PriceView is what the user surface renders for the current user
type PriceView struct {
	User    *domain.User  `json:"user"` // Nil when no user can be resolved
	Pricing pricing.Label `json:"pricing"`
	Rows    []pricing.Row `json:"rows"`
}

// currentUser resolves the current user and persists the choice when it changed.
// Callers must hold c.mu.
func (c *Controller) currentUser(ctx context.Context) *domain.User {
	stored, err := c.users.CurrentUserID(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to read current user, falling back to default")
		stored = ""
	}
	user := session.ResolveCurrentUser(c.state, stored)
	resolved := ""
	if user != nil {
		resolved = user.ID
	}
	if resolved != stored {
		c.rememberUser(ctx, resolved)
	}
	return user
}

func (c *Controller) rememberUser(ctx context.Context, id string) {
	if err := c.users.SetCurrentUserID(ctx, id); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": id,
			"error":   err.Error(),
		}).Error("Failed to persist current user")
	}
}

// CurrentUser returns the user the user surface acts as, or nil
func (c *Controller) CurrentUser(ctx context.Context) *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentUser(ctx)
}

// SelectableUsers lists the users the current-user selector offers
func (c *Controller) SelectableUsers() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return session.SelectableUsers(c.state.Clone())
}

// SelectUser switches the current user. An empty id forgets the choice so the default applies.
func (c *Controller) SelectUser(ctx context.Context, id string) (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id != "" {
		if _, ok := c.state.User(id); !ok {
			return nil, ErrNotFound
		}
	}
	c.rememberUser(ctx, id)
	logrus.WithField("user_id", id).Info("Current user switched")
	return c.currentUser(ctx), nil
}

// UpdateProfile lets the current user edit their own name and email
func (c *Controller) UpdateProfile(ctx context.Context, name, email *string) (domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user := c.currentUser(ctx)
	if user == nil {
		return domain.User{}, ErrNoCurrentUser
	}
	next := domain.UpdateUser(c.state, user.ID, domain.UserPatch{Name: name, Email: email})
	c.commit(ctx, next, logrus.Fields{"op": "update_profile", "user_id": user.ID})
	u, _ := next.User(user.ID)
	return u, nil
}

// Prices derives the adjusted price table for the current user. Without a current user
// the Standard multiplier applies.
func (c *Controller) Prices(ctx context.Context) PriceView {
	c.mu.Lock()
	defer c.mu.Unlock()
	user := c.currentUser(ctx)
	snap := c.state.Clone()
	return PriceView{
		User:    user,
		Pricing: pricing.LabelFor(pricing.StructureFor(snap, user)),
		Rows:    pricing.Rows(snap, user),
	}
}
