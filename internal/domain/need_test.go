package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parOf(v float64) *float64 { return &v }

func TestDeriveNeed_ParShortfall(t *testing.T) {
	entry := &LedgerEntry{ID: "FRENCH FRIES", CurrentCount: "4", Status: StatusNone}

	n := DeriveNeed(entry, parOf(10))

	assert.True(t, n.Needed)
	assert.Equal(t, 6.0, n.OrderQuantity)
}

func TestDeriveNeed_ExplicitNotNeededBeatsParMath(t *testing.T) {
	// Count sits well below par, but the explicit override wins.
	entry := &LedgerEntry{ID: "FRENCH FRIES", CurrentCount: "4", Status: StatusNotNeeded}

	n := DeriveNeed(entry, parOf(10))

	assert.False(t, n.Needed)
	assert.Equal(t, 6.0, n.OrderQuantity)
}

func TestDeriveNeed_ExplicitNeededBeatsFullStock(t *testing.T) {
	entry := &LedgerEntry{ID: "EGGS", CurrentCount: "100", Status: StatusNeeded}

	n := DeriveNeed(entry, parOf(15))

	assert.True(t, n.Needed)
	assert.Equal(t, 0.0, n.OrderQuantity)
}

func TestDeriveNeed_CountAtOrAbovePar(t *testing.T) {
	tests := []struct {
		name  string
		count string
		par   float64
		want  float64
	}{
		{"exactly at par", "10", 10, 0},
		{"above par", "12", 10, 0},
		{"fractional shortfall", "7.5", 10, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &LedgerEntry{CurrentCount: tt.count, Status: StatusNone}
			n := DeriveNeed(entry, parOf(tt.par))
			assert.Equal(t, tt.want, n.OrderQuantity)
			assert.Equal(t, tt.want > 0, n.Needed)
		})
	}
}

func TestDeriveNeed_UnparseableCountIsNoInformation(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.2.3", "NaN", "Inf"} {
		entry := &LedgerEntry{CurrentCount: raw, Status: StatusNone}
		n := DeriveNeed(entry, parOf(10))
		assert.False(t, n.Needed, "count %q should not derive need", raw)
		assert.Equal(t, 0.0, n.OrderQuantity)
	}
}

func TestDeriveNeed_NoPar(t *testing.T) {
	entry := &LedgerEntry{CurrentCount: "0", Status: StatusNone}

	n := DeriveNeed(entry, nil)

	assert.False(t, n.Needed)
	assert.Equal(t, 0.0, n.OrderQuantity)
}

func TestDeriveNeed_NoParButExplicitlyNeeded(t *testing.T) {
	entry := &LedgerEntry{Status: StatusNeeded}

	n := DeriveNeed(entry, nil)

	assert.True(t, n.Needed)
}

func TestDeriveNeed_AbsentEntry(t *testing.T) {
	n := DeriveNeed(nil, parOf(10))

	assert.False(t, n.Needed)
	assert.Equal(t, 0.0, n.OrderQuantity)
}

func TestNeededCount(t *testing.T) {
	catalog := DefaultCatalog()
	ledger := NewLedger()

	ledger.SetCount("FRENCH FRIES", "4") // par 10, shortfall
	ledger.SetCount("EGGS", "20")        // par 15, stocked
	ledger.SetStatus("MILK", StatusNeeded)
	ledger.SetCount("BACON", "2") // par 15, shortfall
	ledger.SetStatus("BACON", StatusNotNeeded)

	assert.Equal(t, 2, NeededCount(ledger, catalog))
}

func TestNeededCount_UnknownItemOnlyCountsWithExplicitStatus(t *testing.T) {
	catalog := NewCatalog()
	ledger := NewLedger()

	ledger.SetCount("NOT IN CATALOG", "0")
	assert.Equal(t, 0, NeededCount(ledger, catalog))

	ledger.SetStatus("NOT IN CATALOG", StatusNeeded)
	assert.Equal(t, 1, NeededCount(ledger, catalog))
}
