package domain

import "github.com/shopspring/decimal"

// Seed returns the dataset written on first-ever load. Ids are generated fresh on every call.
func Seed() Snapshot {
	return Snapshot{
		MetalPrices: []MetalPrice{
			{ID: NewID(), Name: "Gold", Unit: UnitOunce, Price: decimal.NewFromInt(2350)},
			{ID: NewID(), Name: "Silver", Unit: UnitOunce, Price: decimal.RequireFromString("28.2")},
			{ID: NewID(), Name: "Platinum", Unit: UnitOunce, Price: decimal.NewFromInt(960)},
			{ID: NewID(), Name: "Palladium", Unit: UnitOunce, Price: decimal.NewFromInt(1030)},
		},
		PricingStructures: []PricingStructure{
			{ID: NewID(), Name: "Standard", Multiplier: decimal.NewFromInt(1), Description: "Default pricing for general users."},
			{ID: NewID(), Name: "Preferred Supplier", Multiplier: decimal.RequireFromString("1.03"), Description: "Slight uplift for preferred partners."},
			{ID: NewID(), Name: "Bulk Volume", Multiplier: decimal.RequireFromString("1.05"), Description: "Higher payout for bulk shipments."},
		},
		Users: []User{
			{ID: NewID(), Name: "Jane Admin", Email: "jane@example.com", IsAdmin: true},
			{ID: NewID(), Name: "John Supplier", Email: "john@example.com", IsAdmin: false},
		},
	}
}
