package domain

import "github.com/shopspring/decimal"

// Transitions take the current snapshot and return the next one. The input is never
// modified; unknown ids leave the snapshot unchanged.

// AddMetal appends a default metal price with the given id
func AddMetal(s Snapshot, id string) Snapshot {
	next := s.Clone()
	next.MetalPrices = append(next.MetalPrices, MetalPrice{ID: id, Name: "New Metal", Unit: UnitOunce, Price: decimal.Zero})
	return next
}

// UpdateMetal replaces the patched fields of the metal with the given id in place
func UpdateMetal(s Snapshot, id string, patch MetalPatch) Snapshot {
	next := s.Clone()
	for i, m := range next.MetalPrices {
		if m.ID == id {
			next.MetalPrices[i] = patch.apply(m)
		}
	}
	return next
}

// DeleteMetal removes the metal with the given id
func DeleteMetal(s Snapshot, id string) Snapshot {
	next := s.Clone()
	kept := next.MetalPrices[:0]
	for _, m := range next.MetalPrices {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	next.MetalPrices = kept
	return next
}

// AddStructure appends a default pricing structure with multiplier 1
func AddStructure(s Snapshot, id string) Snapshot {
	next := s.Clone()
	next.PricingStructures = append(next.PricingStructures, PricingStructure{ID: id, Name: "New Structure", Multiplier: decimal.NewFromInt(1)})
	return next
}

// UpdateStructure replaces the patched fields of the structure with the given id in place
func UpdateStructure(s Snapshot, id string, patch StructurePatch) Snapshot {
	next := s.Clone()
	for i, p := range next.PricingStructures {
		if p.ID == id {
			next.PricingStructures[i] = patch.apply(p)
		}
	}
	return next
}

// DeleteStructure removes the structure with the given id and clears the reference on
// every user assigned to it. It returns the next snapshot and the ids of the cleared users.
func DeleteStructure(s Snapshot, id string) (Snapshot, []string) {
	next := s.Clone()
	kept := next.PricingStructures[:0]
	for _, p := range next.PricingStructures {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	next.PricingStructures = kept

	cleared := []string{}
	for i, u := range next.Users {
		if u.PricingStructureID != nil && *u.PricingStructureID == id {
			next.Users[i].PricingStructureID = nil
			cleared = append(cleared, u.ID)
		}
	}
	return next, cleared
}

// AddUser appends a default non-admin user with no pricing structure
func AddUser(s Snapshot, id string) Snapshot {
	next := s.Clone()
	next.Users = append(next.Users, User{ID: id, Name: "New User", Email: "", IsAdmin: false})
	return next
}

// UpdateUser replaces the patched fields of the user with the given id in place
func UpdateUser(s Snapshot, id string, patch UserPatch) Snapshot {
	next := s.Clone()
	for i, u := range next.Users {
		if u.ID == id {
			next.Users[i] = patch.apply(u)
		}
	}
	return next
}

// DeleteUser removes the user with the given id
func DeleteUser(s Snapshot, id string) Snapshot {
	next := s.Clone()
	kept := next.Users[:0]
	for _, u := range next.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	next.Users = kept
	return next
}

// DanglingReferences returns the ids of users whose structure reference does not resolve
func DanglingReferences(s Snapshot) []string {
	dangling := []string{}
	for _, u := range s.Users {
		if id := u.StructureID(); id != "" {
			if _, ok := s.Structure(id); !ok {
				dangling = append(dangling, u.ID)
			}
		}
	}
	return dangling
}
