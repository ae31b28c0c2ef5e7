// Package pricing derives user-facing prices from base metal prices and pricing structures.
package pricing

import (
	"recycling_portal/internal/domain"

	"github.com/shopspring/decimal"
)

// StandardName is the label used when a user has no pricing structure
const StandardName = "Standard"

// Places is the number of fractional digits an adjusted price is rounded to
const Places = 2

var one = decimal.NewFromInt(1)

// EffectiveMultiplier returns the structure's multiplier, or exactly 1 when no structure is resolved
func EffectiveMultiplier(structure *domain.PricingStructure) decimal.Decimal {
	if structure == nil {
		return one
	}
	return structure.Multiplier
}

// AdjustedPrice returns base*multiplier rounded half away from zero to two places
func AdjustedPrice(base decimal.Decimal, structure *domain.PricingStructure) decimal.Decimal {
	return base.Mul(EffectiveMultiplier(structure)).Round(Places)
}

// StructureFor resolves the pricing structure assigned to user, or nil
func StructureFor(s domain.Snapshot, user *domain.User) *domain.PricingStructure {
	if user == nil {
		return nil
	}
	p, ok := s.Structure(user.StructureID())
	if !ok {
		return nil
	}
	return &p
}

// Label describes the pricing tier applied for a structure
type Label struct {
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Standard   bool            `json:"standard"` // True when no structure is assigned
}

// LabelFor returns the tier label shown with a user's prices
func LabelFor(structure *domain.PricingStructure) Label {
	if structure == nil {
		return Label{Name: StandardName, Multiplier: one, Standard: true}
	}
	return Label{Name: structure.Name, Multiplier: structure.Multiplier}
}

// Row is one line of the user price table
type Row struct {
	MetalID       string          `json:"metalId"`
	Name          string          `json:"name"`
	Unit          domain.Unit     `json:"unit"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	AdjustedPrice decimal.Decimal `json:"adjustedPrice"`
}

// Rows derives the price table for user in metal collection order
func Rows(s domain.Snapshot, user *domain.User) []Row {
	structure := StructureFor(s, user)
	rows := make([]Row, 0, len(s.MetalPrices))
	for _, m := range s.MetalPrices {
		rows = append(rows, Row{
			MetalID:       m.ID,
			Name:          m.Name,
			Unit:          m.Unit,
			BasePrice:     m.Price,
			AdjustedPrice: AdjustedPrice(m.Price, structure),
		})
	}
	return rows
}
