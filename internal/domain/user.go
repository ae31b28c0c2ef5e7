package domain

// User Model
type User struct {
	ID                 string  `json:"id"`                           // Opaque unique identifier
	Name               string  `json:"name"`                         // Display name
	Email              string  `json:"email"`                        // Contact email
	IsAdmin            bool    `json:"isAdmin"`                      // Plain flag, not a role entity
	PricingStructureID *string `json:"pricingStructureId,omitempty"` // Optional reference to a PricingStructure
}

// StructureID returns the referenced structure id, or "" when none is assigned
func (u User) StructureID() string {
	if u.PricingStructureID == nil {
		return ""
	}
	return *u.PricingStructureID
}

// UserPatch carries the fields to replace on a User.
// A non-nil empty PricingStructureID clears the assignment.
type UserPatch struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	IsAdmin            *bool   `json:"isAdmin"`
	PricingStructureID *string `json:"pricingStructureId"`
}

func (p UserPatch) apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.PricingStructureID != nil {
		u.PricingStructureID = optionalID(*p.PricingStructureID)
	}
	return u
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
