package pricing

import (
	"testing"

	"recycling_portal/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAdjustedPrice(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		multiplier string // empty means no structure
		want       string
	}{
		{name: "no structure uses 1.0", base: "2350", want: "2350"},
		{name: "no structure rounds base", base: "28.205", want: "28.21"},
		{name: "standard", base: "960", multiplier: "1", want: "960"},
		{name: "bulk volume gold", base: "2350", multiplier: "1.05", want: "2467.5"},
		{name: "preferred silver", base: "28.2", multiplier: "1.03", want: "29.05"},
		{name: "half rounds up", base: "0.125", multiplier: "1", want: "0.13"},
		{name: "no float artifacts", base: "1.005", multiplier: "1", want: "1.01"},
		{name: "zero price", base: "0", multiplier: "1.05", want: "0"},
		{name: "fractional multiplier", base: "1030", multiplier: "0.975", want: "1004.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var structure *domain.PricingStructure
			if tt.multiplier != "" {
				structure = &domain.PricingStructure{Multiplier: d(tt.multiplier)}
			}
			got := AdjustedPrice(d(tt.base), structure)
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestAdjustedPrice_IsDeterministic(t *testing.T) {
	structure := &domain.PricingStructure{Multiplier: d("1.03")}
	first := AdjustedPrice(d("28.2"), structure)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(AdjustedPrice(d("28.2"), structure)))
	}
}

func TestRows_SeedWithBulkVolume(t *testing.T) {
	s := domain.Seed()
	bulk := s.PricingStructures[2].ID
	s = domain.UpdateUser(s, s.Users[1].ID, domain.UserPatch{PricingStructureID: &bulk})
	john, ok := s.User(s.Users[1].ID)
	require.True(t, ok)

	rows := Rows(s, &john)

	require.Len(t, rows, 4)
	assert.Equal(t, "Gold", rows[0].Name)
	assert.Equal(t, "2467.50", rows[0].AdjustedPrice.StringFixed(2))
	assert.Equal(t, "Bulk Volume", LabelFor(StructureFor(s, &john)).Name)
}

func TestRows_StructureDeletedRevertsToStandard(t *testing.T) {
	s := domain.Seed()
	bulk := s.PricingStructures[2].ID
	johnID := s.Users[1].ID
	s = domain.UpdateUser(s, johnID, domain.UserPatch{PricingStructureID: &bulk})
	s, _ = domain.DeleteStructure(s, bulk)
	john, _ := s.User(johnID)

	assert.Nil(t, john.PricingStructureID)
	assert.Nil(t, StructureFor(s, &john))
	assert.True(t, EffectiveMultiplier(StructureFor(s, &john)).Equal(decimal.NewFromInt(1)))
	assert.True(t, Rows(s, &john)[0].AdjustedPrice.Equal(d("2350")))
}

func TestRows_NoUser(t *testing.T) {
	rows := Rows(domain.Seed(), nil)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.True(t, r.BasePrice.Round(Places).Equal(r.AdjustedPrice))
	}
}

func TestLabelFor(t *testing.T) {
	std := LabelFor(nil)
	assert.Equal(t, StandardName, std.Name)
	assert.True(t, std.Standard)
	assert.Equal(t, "1.00", std.Multiplier.StringFixed(2))

	preferred := LabelFor(&domain.PricingStructure{Name: "Preferred Supplier", Multiplier: d("1.03")})
	assert.Equal(t, "Preferred Supplier", preferred.Name)
	assert.False(t, preferred.Standard)
}
