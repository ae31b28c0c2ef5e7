package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for multipliers

// PricingStructure is a payout tier referenced by users through PricingStructureID
type PricingStructure struct {
	ID          string          `json:"id"`                    // Opaque unique identifier
	Name        string          `json:"name"`                  // e.g. Standard, Preferred Supplier
	Description string          `json:"description,omitempty"` // Optional free text
	Multiplier  decimal.Decimal `json:"multiplier"`            // Applied to base prices
}

// StructurePatch carries the fields to replace on a PricingStructure
type StructurePatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Multiplier  *decimal.Decimal `json:"multiplier"`
}

func (p StructurePatch) apply(s PricingStructure) PricingStructure {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Multiplier != nil {
		s.Multiplier = *p.Multiplier
	}
	return s
}
