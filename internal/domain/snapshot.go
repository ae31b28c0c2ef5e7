package domain

import (
	"github.com/google/uuid"        // Record identifiers
	"github.com/shopspring/decimal" // Decimal JSON encoding
)

func init() {
	// Stored snapshots carry prices as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the full dataset and the unit of persistence
type Snapshot struct {
	MetalPrices       []MetalPrice       `json:"metalPrices"`
	PricingStructures []PricingStructure `json:"pricingStructures"`
	Users             []User             `json:"users"`
}

// Empty returns the snapshot with all three collections present and empty
func Empty() Snapshot {
	return Snapshot{
		MetalPrices:       []MetalPrice{},
		PricingStructures: []PricingStructure{},
		Users:             []User{},
	}
}

// NewID generates a fresh record identifier
func NewID() string {
	return uuid.NewString()
}

// Normalize replaces nil collections with empty ones so the encoded form always has arrays
func (s Snapshot) Normalize() Snapshot {
	if s.MetalPrices == nil {
		s.MetalPrices = []MetalPrice{}
	}
	if s.PricingStructures == nil {
		s.PricingStructures = []PricingStructure{}
	}
	if s.Users == nil {
		s.Users = []User{}
	}
	return s
}

// Clone returns a deep copy of s
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		MetalPrices:       append([]MetalPrice{}, s.MetalPrices...),
		PricingStructures: append([]PricingStructure{}, s.PricingStructures...),
		Users:             make([]User, len(s.Users)),
	}
	for i, u := range s.Users {
		if u.PricingStructureID != nil {
			u.PricingStructureID = optionalID(*u.PricingStructureID)
		}
		out.Users[i] = u
	}
	return out
}

// Metal returns the metal with the given id
func (s Snapshot) Metal(id string) (MetalPrice, bool) {
	for _, m := range s.MetalPrices {
		if m.ID == id {
			return m, true
		}
	}
	return MetalPrice{}, false
}

// Structure returns the pricing structure with the given id
func (s Snapshot) Structure(id string) (PricingStructure, bool) {
	if id == "" {
		return PricingStructure{}, false
	}
	for _, p := range s.PricingStructures {
		if p.ID == id {
			return p, true
		}
	}
	return PricingStructure{}, false
}

// User returns the user with the given id
func (s Snapshot) User(id string) (User, bool) {
	if id == "" {
		return User{}, false
	}
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Admins returns the users flagged as admin, in collection order
func (s Snapshot) Admins() []User {
	admins := []User{}
	for _, u := range s.Users {
		if u.IsAdmin {
			admins = append(admins, u)
		}
	}
	return admins
}

// NonAdmins returns the users not flagged as admin, in collection order
func (s Snapshot) NonAdmins() []User {
	users := []User{}
	for _, u := range s.Users {
		if !u.IsAdmin {
			users = append(users, u)
		}
	}
	return users
}
