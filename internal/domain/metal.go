package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for prices

// Unit is the weight unit a metal price is quoted in
type Unit string

const (
	UnitOunce Unit = "oz" // Troy ounce
	UnitGram  Unit = "g"  // Gram
)

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	return u == UnitOunce || u == UnitGram
}

// MetalPrice Model
type MetalPrice struct {
	ID    string          `json:"id"`    // Opaque unique identifier
	Name  string          `json:"name"`  // Display name, e.g. Gold
	Unit  Unit            `json:"unit"`  // Quoted unit: oz or g
	Price decimal.Decimal `json:"price"` // Base price per unit
}

// MetalPatch carries the fields to replace on a MetalPrice; nil fields are left untouched
type MetalPatch struct {
	Name  *string          `json:"name"`
	Unit  *Unit            `json:"unit"`
	Price *decimal.Decimal `json:"price"`
}

func (p MetalPatch) apply(m MetalPrice) MetalPrice {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	return m
}
